package services

import (
	"recall-notes/database"
	"recall-notes/models"
)

// NoteRepository defines the note data access the command layer needs.
type NoteRepository interface {
	Create(userID int64, folderID *int64, title, content string, isPinned bool, tagNames []string) (*models.NoteWithRelations, error)
	GetByID(noteID int64) (*models.NoteWithRelations, error)
	ListByOwner(userID int64) ([]*models.NoteWithRelations, error)
	ListByFolder(userID, folderID int64) ([]*models.NoteWithRelations, error)
	ListPinned(userID int64) ([]*models.NoteWithRelations, error)
	ListArchived(userID int64) ([]*models.NoteWithRelations, error)
	Search(userID int64, query string) ([]*models.NoteWithRelations, error)
	Update(noteID int64, upd database.NoteUpdate) (*models.NoteWithRelations, error)
	SoftDelete(noteID, userID int64) error
	Restore(noteID, userID int64) error
	TogglePin(noteID int64) (*models.NoteWithRelations, error)
	ToggleArchive(noteID int64) (*models.NoteWithRelations, error)
}

// FolderRepository defines the folder data access the command layer needs.
type FolderRepository interface {
	Create(userID int64, name string, parentFolderID *int64, color *string) (*models.FolderWithChildren, error)
	GetByID(folderID int64) (*models.FolderWithChildren, error)
	ListByOwner(userID int64) ([]*models.FolderWithChildren, error)
	GetTree(userID int64) ([]*models.FolderWithChildren, error)
	Update(folderID int64, upd database.FolderUpdate) (*models.FolderWithChildren, error)
	Delete(folderID, userID int64) error
}

// TagRepository defines the tag data access the command layer needs.
type TagRepository interface {
	Create(userID int64, name string, color *string) (*models.TagWithCount, error)
	GetByID(tagID int64) (*models.TagWithCount, error)
	ListByOwner(userID int64) ([]*models.TagWithCount, error)
	Update(tagID int64, upd database.TagUpdate) (*models.TagWithCount, error)
	Delete(tagID, userID int64) error
	Assign(noteID, tagID int64) error
	Unassign(noteID, tagID int64) error
	NotesByTag(tagID int64) ([]models.Note, error)
}

// AttachmentRepository defines the attachment data access the command layer needs.
type AttachmentRepository interface {
	Create(noteID int64, fileName, filePath string, fileSize int64, mimeType string) (*models.Attachment, error)
	ListByNote(noteID int64) ([]models.Attachment, error)
	Delete(attachmentID int64) error
}

// UserRepository defines the user data access the command layer needs.
type UserRepository interface {
	GetByID(userID int64) (*models.User, error)
	UpdateProfile(userID int64, upd database.ProfileUpdate) (*models.User, error)
	UpdatePassword(userID int64, newPasswordHash string) error
}
