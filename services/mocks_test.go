package services

import (
	"github.com/stretchr/testify/mock"

	"recall-notes/database"
	"recall-notes/models"
)

type MockNoteRepository struct {
	mock.Mock
}

var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) Create(userID int64, folderID *int64, title, content string, isPinned bool, tagNames []string) (*models.NoteWithRelations, error) {
	args := m.Called(userID, folderID, title, content, isPinned, tagNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) GetByID(noteID int64) (*models.NoteWithRelations, error) {
	args := m.Called(noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) ListByOwner(userID int64) ([]*models.NoteWithRelations, error) {
	args := m.Called(userID)
	return args.Get(0).([]*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) ListByFolder(userID, folderID int64) ([]*models.NoteWithRelations, error) {
	args := m.Called(userID, folderID)
	return args.Get(0).([]*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) ListPinned(userID int64) ([]*models.NoteWithRelations, error) {
	args := m.Called(userID)
	return args.Get(0).([]*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) ListArchived(userID int64) ([]*models.NoteWithRelations, error) {
	args := m.Called(userID)
	return args.Get(0).([]*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) Search(userID int64, query string) ([]*models.NoteWithRelations, error) {
	args := m.Called(userID, query)
	return args.Get(0).([]*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) Update(noteID int64, upd database.NoteUpdate) (*models.NoteWithRelations, error) {
	args := m.Called(noteID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) SoftDelete(noteID, userID int64) error {
	return m.Called(noteID, userID).Error(0)
}

func (m *MockNoteRepository) Restore(noteID, userID int64) error {
	return m.Called(noteID, userID).Error(0)
}

func (m *MockNoteRepository) TogglePin(noteID int64) (*models.NoteWithRelations, error) {
	args := m.Called(noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NoteWithRelations), args.Error(1)
}

func (m *MockNoteRepository) ToggleArchive(noteID int64) (*models.NoteWithRelations, error) {
	args := m.Called(noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NoteWithRelations), args.Error(1)
}

type MockFolderRepository struct {
	mock.Mock
}

var _ FolderRepository = (*MockFolderRepository)(nil)

func (m *MockFolderRepository) Create(userID int64, name string, parentFolderID *int64, color *string) (*models.FolderWithChildren, error) {
	args := m.Called(userID, name, parentFolderID, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FolderWithChildren), args.Error(1)
}

func (m *MockFolderRepository) GetByID(folderID int64) (*models.FolderWithChildren, error) {
	args := m.Called(folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FolderWithChildren), args.Error(1)
}

func (m *MockFolderRepository) ListByOwner(userID int64) ([]*models.FolderWithChildren, error) {
	args := m.Called(userID)
	return args.Get(0).([]*models.FolderWithChildren), args.Error(1)
}

func (m *MockFolderRepository) GetTree(userID int64) ([]*models.FolderWithChildren, error) {
	args := m.Called(userID)
	return args.Get(0).([]*models.FolderWithChildren), args.Error(1)
}

func (m *MockFolderRepository) Update(folderID int64, upd database.FolderUpdate) (*models.FolderWithChildren, error) {
	args := m.Called(folderID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FolderWithChildren), args.Error(1)
}

func (m *MockFolderRepository) Delete(folderID, userID int64) error {
	return m.Called(folderID, userID).Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

var _ TagRepository = (*MockTagRepository)(nil)

func (m *MockTagRepository) Create(userID int64, name string, color *string) (*models.TagWithCount, error) {
	args := m.Called(userID, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TagWithCount), args.Error(1)
}

func (m *MockTagRepository) GetByID(tagID int64) (*models.TagWithCount, error) {
	args := m.Called(tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TagWithCount), args.Error(1)
}

func (m *MockTagRepository) ListByOwner(userID int64) ([]*models.TagWithCount, error) {
	args := m.Called(userID)
	return args.Get(0).([]*models.TagWithCount), args.Error(1)
}

func (m *MockTagRepository) Update(tagID int64, upd database.TagUpdate) (*models.TagWithCount, error) {
	args := m.Called(tagID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TagWithCount), args.Error(1)
}

func (m *MockTagRepository) Delete(tagID, userID int64) error {
	return m.Called(tagID, userID).Error(0)
}

func (m *MockTagRepository) Assign(noteID, tagID int64) error {
	return m.Called(noteID, tagID).Error(0)
}

func (m *MockTagRepository) Unassign(noteID, tagID int64) error {
	return m.Called(noteID, tagID).Error(0)
}

func (m *MockTagRepository) NotesByTag(tagID int64) ([]models.Note, error) {
	args := m.Called(tagID)
	return args.Get(0).([]models.Note), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) GetByID(userID int64) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(userID int64, upd database.ProfileUpdate) (*models.User, error) {
	args := m.Called(userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(userID int64, newPasswordHash string) error {
	return m.Called(userID, newPasswordHash).Error(0)
}
