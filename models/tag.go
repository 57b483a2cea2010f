package models

import "time"

type Tag struct {
	ID        int64     `json:"tag_id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type TagWithCount struct {
	Tag       Tag   `json:"tag"`
	NoteCount int64 `json:"note_count"`
}

type CreateTagRequest struct {
	Name  string  `json:"name" validate:"required,max=30"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=30"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}
