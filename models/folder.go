package models

import "time"

type Folder struct {
	ID             int64     `json:"folder_id"`
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	ParentFolderID *int64    `json:"parent_folder_id"`
	Color          *string   `json:"color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FolderWithChildren is one node of the folder forest. NoteCount covers the
// folder's own non-deleted notes only, not its descendants'.
type FolderWithChildren struct {
	Folder    Folder                `json:"folder"`
	Children  []*FolderWithChildren `json:"children"`
	NoteCount int64                 `json:"note_count"`
}

type CreateFolderRequest struct {
	Name           string  `json:"name" validate:"required,max=50"`
	ParentFolderID *int64  `json:"parent_folder_id"`
	Color          *string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateFolderRequest struct {
	Name           *string    `json:"name" validate:"omitempty,max=50"`
	ParentFolderID OptionalID `json:"parent_folder_id"`
	Color          *string    `json:"color" validate:"omitempty,hexcolor"`
}
