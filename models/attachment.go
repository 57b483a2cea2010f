package models

import "time"

type Attachment struct {
	ID         int64     `json:"attachment_id"`
	NoteID     int64     `json:"note_id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}
