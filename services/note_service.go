package services

import (
	"strings"

	"recall-notes/database"
	"recall-notes/export"
	"recall-notes/models"
)

// NoteService maps note commands onto the repository: input rules first,
// then delegation. No business logic lives below this point.
type NoteService struct {
	repo NoteRepository
}

func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) Create(userID int64, req *models.CreateNoteRequest) (*models.NoteWithRelations, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	return s.repo.Create(userID, req.FolderID, req.Title, req.Content, req.IsPinned, req.Tags)
}

func (s *NoteService) Get(noteID int64) (*models.NoteWithRelations, error) {
	note, err := s.repo.GetByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, database.ErrNotFound
	}
	return note, nil
}

func (s *NoteService) List(userID int64) ([]*models.NoteWithRelations, error) {
	return s.repo.ListByOwner(userID)
}

func (s *NoteService) ListByFolder(userID, folderID int64) ([]*models.NoteWithRelations, error) {
	return s.repo.ListByFolder(userID, folderID)
}

func (s *NoteService) ListPinned(userID int64) ([]*models.NoteWithRelations, error) {
	return s.repo.ListPinned(userID)
}

func (s *NoteService) ListArchived(userID int64) ([]*models.NoteWithRelations, error) {
	return s.repo.ListArchived(userID)
}

func (s *NoteService) Search(userID int64, query string) ([]*models.NoteWithRelations, error) {
	return s.repo.Search(userID, query)
}

func (s *NoteService) Update(noteID int64, req *models.UpdateNoteRequest) (*models.NoteWithRelations, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrTitleRequired
	}
	return s.repo.Update(noteID, database.NoteUpdate{
		Title:      req.Title,
		Content:    req.Content,
		FolderID:   req.FolderID,
		IsPinned:   req.IsPinned,
		IsArchived: req.IsArchived,
		Tags:       req.Tags,
	})
}

func (s *NoteService) Delete(noteID, userID int64) error {
	return s.repo.SoftDelete(noteID, userID)
}

func (s *NoteService) Restore(noteID, userID int64) error {
	return s.repo.Restore(noteID, userID)
}

func (s *NoteService) TogglePin(noteID int64) (*models.NoteWithRelations, error) {
	return s.repo.TogglePin(noteID)
}

func (s *NoteService) ToggleArchive(noteID int64) (*models.NoteWithRelations, error) {
	return s.repo.ToggleArchive(noteID)
}

// Export writes the note to path as markdown with a front-matter header.
func (s *NoteService) Export(noteID int64, path string) error {
	note, err := s.Get(noteID)
	if err != nil {
		return err
	}
	return export.WriteNote(path, note)
}

// Import creates a note from a markdown file. Front matter supplies the
// title when present; otherwise the file stem is used.
func (s *NoteService) Import(userID int64, path string) (*models.NoteWithRelations, error) {
	doc, err := export.ReadNote(path)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(userID, nil, doc.Title, doc.Content, false, doc.Tags)
}
