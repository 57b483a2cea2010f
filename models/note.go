package models

import "time"

type Note struct {
	ID         int64     `json:"note_id"`
	UserID     int64     `json:"user_id"`
	FolderID   *int64    `json:"folder_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsPinned   bool      `json:"is_pinned"`
	IsArchived bool      `json:"is_archived"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteWithRelations is the read model returned by every note operation:
// the note row joined with its folder summary and tag list.
type NoteWithRelations struct {
	Note   Note        `json:"note"`
	Folder *FolderInfo `json:"folder"`
	Tags   []TagInfo   `json:"tags"`
}

type FolderInfo struct {
	ID    int64   `json:"folder_id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type TagInfo struct {
	ID    int64   `json:"tag_id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required,max=255"`
	Content  string   `json:"content"`
	FolderID *int64   `json:"folder_id"`
	Tags     []string `json:"tags" validate:"dive,max=30"`
	IsPinned bool     `json:"is_pinned"`
}

// UpdateNoteRequest carries partial updates: nil means leave unchanged.
// FolderID additionally distinguishes null (unset) from absent, and a
// non-nil Tags replaces the full tag set.
type UpdateNoteRequest struct {
	Title      *string    `json:"title" validate:"omitempty,max=255"`
	Content    *string    `json:"content"`
	FolderID   OptionalID `json:"folder_id"`
	Tags       *[]string  `json:"tags" validate:"omitempty,dive,max=30"`
	IsPinned   *bool      `json:"is_pinned"`
	IsArchived *bool      `json:"is_archived"`
}
