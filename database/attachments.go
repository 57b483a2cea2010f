package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"recall-notes/models"
)

// AttachmentRepository owns attachment metadata. The file bytes live on
// disk at the recorded path; the repository only tracks the reference.
type AttachmentRepository struct {
	db *DB
}

func NewAttachmentRepository(db *DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(noteID int64, fileName, filePath string, fileSize int64, mimeType string) (*models.Attachment, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO attachments (note_id, file_name, file_path, file_size, mime_type, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, noteID, fileName, filePath, fileSize, mimeType, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment id: %w", err)
	}

	return r.getByID(id)
}

// ListByNote returns a note's attachments newest-uploaded-first.
func (r *AttachmentRepository) ListByNote(noteID int64) ([]models.Attachment, error) {
	rows, err := r.db.Query(`
		SELECT attachment_id, note_id, file_name, file_path, file_size, mime_type, uploaded_at
		FROM attachments WHERE note_id = ? ORDER BY uploaded_at DESC
	`, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	attachments := make([]models.Attachment, 0)
	for rows.Next() {
		var a models.Attachment
		if err := rows.Scan(&a.ID, &a.NoteID, &a.FileName, &a.FilePath, &a.FileSize, &a.MimeType, &a.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

// Delete removes the metadata row, then removes the underlying file
// best-effort. The row is authoritative: a failed file removal is not
// surfaced.
func (r *AttachmentRepository) Delete(attachmentID int64) error {
	attachment, err := r.getByID(attachmentID)
	if err != nil {
		return err
	}

	res, err := r.db.Exec("DELETE FROM attachments WHERE attachment_id = ?", attachmentID)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	_ = os.Remove(attachment.FilePath)

	return nil
}

func (r *AttachmentRepository) getByID(attachmentID int64) (*models.Attachment, error) {
	var a models.Attachment
	err := r.db.QueryRow(`
		SELECT attachment_id, note_id, file_name, file_path, file_size, mime_type, uploaded_at
		FROM attachments WHERE attachment_id = ?
	`, attachmentID).Scan(&a.ID, &a.NoteID, &a.FileName, &a.FilePath, &a.FileSize, &a.MimeType, &a.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attachment: %w", err)
	}
	return &a, nil
}
