package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"recall-notes/models"
)

// NoteRepository owns all note reads and writes, including the relation
// assembly that joins a note with its folder summary and tag list.
type NoteRepository struct {
	db *DB
}

func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// NoteUpdate is the repository-side partial update: nil fields are left
// unchanged, FolderID distinguishes null from absent, and a non-nil Tags
// replaces the full tag set.
type NoteUpdate struct {
	Title      *string
	Content    *string
	FolderID   models.OptionalID
	IsPinned   *bool
	IsArchived *bool
	Tags       *[]string
}

// Create inserts the note and resolves each tag name with get-or-create
// inside one transaction, so a failure leaves no partial note behind.
func (r *NoteRepository) Create(userID int64, folderID *int64, title, content string, isPinned bool, tagNames []string) (*models.NoteWithRelations, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.Exec(`
		INSERT INTO notes (user_id, folder_id, title, content, is_pinned, is_archived, is_deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, 0, ?, ?)
	`, userID, folderID, title, content, isPinned, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	noteID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read note id: %w", err)
	}

	if err := linkTags(tx, noteID, userID, tagNames); err != nil {
		return nil, err
	}

	note, err := getNoteWithRelations(tx, noteID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit note: %w", err)
	}

	return note, nil
}

// GetByID returns nil when the note is missing or soft-deleted. The note
// row and its relations are read in one transaction so a concurrent delete
// cannot produce a half-assembled result.
func (r *NoteRepository) GetByID(noteID int64) (*models.NoteWithRelations, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRow("SELECT note_id FROM notes WHERE note_id = ? AND is_deleted = 0", noteID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}

	note, err := getNoteWithRelations(tx, noteID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit read: %w", err)
	}

	return note, nil
}

// ListByOwner returns the owner's notes newest-created-first, excluding
// soft-deleted ones.
func (r *NoteRepository) ListByOwner(userID int64) ([]*models.NoteWithRelations, error) {
	return r.listWithRelations(
		"SELECT note_id FROM notes WHERE user_id = ? AND is_deleted = 0 ORDER BY created_at DESC",
		userID,
	)
}

// ListByFolder returns the owner's non-deleted notes directly in a folder,
// newest-created-first.
func (r *NoteRepository) ListByFolder(userID, folderID int64) ([]*models.NoteWithRelations, error) {
	return r.listWithRelations(
		"SELECT note_id FROM notes WHERE user_id = ? AND folder_id = ? AND is_deleted = 0 ORDER BY created_at DESC",
		userID, folderID,
	)
}

// ListPinned returns the owner's pinned non-deleted notes, newest-updated-first.
func (r *NoteRepository) ListPinned(userID int64) ([]*models.NoteWithRelations, error) {
	return r.listWithRelations(
		"SELECT note_id FROM notes WHERE user_id = ? AND is_pinned = 1 AND is_deleted = 0 ORDER BY updated_at DESC",
		userID,
	)
}

// ListArchived returns the owner's archived non-deleted notes, newest-updated-first.
func (r *NoteRepository) ListArchived(userID int64) ([]*models.NoteWithRelations, error) {
	return r.listWithRelations(
		"SELECT note_id FROM notes WHERE user_id = ? AND is_archived = 1 AND is_deleted = 0 ORDER BY updated_at DESC",
		userID,
	)
}

// Search matches the query case-insensitively against title or content,
// excluding soft-deleted notes, newest-updated-first.
func (r *NoteRepository) Search(userID int64, query string) ([]*models.NoteWithRelations, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.listWithRelations(`
		SELECT note_id FROM notes
		WHERE user_id = ? AND is_deleted = 0
		  AND (LOWER(title) LIKE ? OR LOWER(content) LIKE ?)
		ORDER BY updated_at DESC
	`, userID, pattern, pattern)
}

// Update applies the supplied fields and always bumps updated_at. When Tags
// is non-nil the full tag set is replaced, not merged, in the same
// transaction. Returns ErrNotFound for missing or soft-deleted notes.
func (r *NoteRepository) Update(noteID int64, upd NoteUpdate) (*models.NoteWithRelations, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var sc setClause
	sc.set("updated_at", time.Now().UTC())
	if upd.Title != nil {
		sc.set("title", *upd.Title)
	}
	if upd.Content != nil {
		sc.set("content", *upd.Content)
	}
	if upd.FolderID.Present {
		sc.set("folder_id", upd.FolderID.Ptr())
	}
	if upd.IsPinned != nil {
		sc.set("is_pinned", *upd.IsPinned)
	}
	if upd.IsArchived != nil {
		sc.set("is_archived", *upd.IsArchived)
	}

	args := append(sc.args, noteID)
	res, err := tx.Exec("UPDATE notes SET "+sc.sql()+" WHERE note_id = ? AND is_deleted = 0", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if upd.Tags != nil {
		var userID int64
		if err := tx.QueryRow("SELECT user_id FROM notes WHERE note_id = ?", noteID).Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to fetch note owner: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", noteID); err != nil {
			return nil, fmt.Errorf("failed to clear note tags: %w", err)
		}
		if err := linkTags(tx, noteID, userID, *upd.Tags); err != nil {
			return nil, err
		}
	}

	note, err := getNoteWithRelations(tx, noteID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit note update: %w", err)
	}

	return note, nil
}

// SoftDelete flags the note as deleted; the row and its attachments persist.
func (r *NoteRepository) SoftDelete(noteID, userID int64) error {
	res, err := r.db.Exec(
		"UPDATE notes SET is_deleted = 1 WHERE note_id = ? AND user_id = ? AND is_deleted = 0",
		noteID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Restore clears the deleted flag; the note rejoins all read paths.
func (r *NoteRepository) Restore(noteID, userID int64) error {
	res, err := r.db.Exec(
		"UPDATE notes SET is_deleted = 0 WHERE note_id = ? AND user_id = ? AND is_deleted = 1",
		noteID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to restore note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read restore result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// TogglePin flips is_pinned in a single guarded statement, so two
// concurrent toggles cannot lose a flip.
func (r *NoteRepository) TogglePin(noteID int64) (*models.NoteWithRelations, error) {
	return r.toggleFlag(noteID, "is_pinned")
}

// ToggleArchive flips is_archived; see TogglePin.
func (r *NoteRepository) ToggleArchive(noteID int64) (*models.NoteWithRelations, error) {
	return r.toggleFlag(noteID, "is_archived")
}

func (r *NoteRepository) toggleFlag(noteID int64, column string) (*models.NoteWithRelations, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"UPDATE notes SET "+column+" = NOT "+column+", updated_at = ? WHERE note_id = ? AND is_deleted = 0",
		time.Now().UTC(), noteID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle %s: %w", column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read toggle result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	note, err := getNoteWithRelations(tx, noteID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) listWithRelations(query string, args ...any) ([]*models.NoteWithRelations, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ids, err := collectIDs(tx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	result := make([]*models.NoteWithRelations, 0, len(ids))
	for _, id := range ids {
		note, err := getNoteWithRelations(tx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, note)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit read: %w", err)
	}

	return result, nil
}

func collectIDs(q querier, query string, args ...any) ([]int64, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// getNoteWithRelations assembles the composite read model on the caller's
// querier, so inside a transaction it sees the transaction's snapshot.
func getNoteWithRelations(q querier, noteID int64) (*models.NoteWithRelations, error) {
	var (
		note     models.Note
		folderID sql.NullInt64
	)
	err := q.QueryRow(`
		SELECT note_id, user_id, folder_id, title, content, is_pinned, is_archived, is_deleted, created_at, updated_at
		FROM notes WHERE note_id = ?
	`, noteID).Scan(
		&note.ID, &note.UserID, &folderID, &note.Title, &note.Content,
		&note.IsPinned, &note.IsArchived, &note.IsDeleted, &note.CreatedAt, &note.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}
	if folderID.Valid {
		note.FolderID = &folderID.Int64
	}

	var folder *models.FolderInfo
	if note.FolderID != nil {
		var f models.FolderInfo
		err := q.QueryRow(
			"SELECT folder_id, name, color FROM folders WHERE folder_id = ?",
			*note.FolderID,
		).Scan(&f.ID, &f.Name, &f.Color)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to fetch folder info: %w", err)
		}
		if err == nil {
			folder = &f
		}
	}

	rows, err := q.Query(`
		SELECT t.tag_id, t.name, t.color
		FROM tags t
		INNER JOIN note_tags nt ON t.tag_id = nt.tag_id
		WHERE nt.note_id = ?
		ORDER BY t.name
	`, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch note tags: %w", err)
	}
	defer rows.Close()

	tags := make([]models.TagInfo, 0)
	for rows.Next() {
		var t models.TagInfo
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read note tags: %w", err)
	}

	return &models.NoteWithRelations{Note: note, Folder: folder, Tags: tags}, nil
}

// linkTags resolves each name with get-or-create and links it to the note.
// Linking is idempotent: duplicate names within the list and already-linked
// tags are both no-ops.
func linkTags(q querier, noteID, userID int64, tagNames []string) error {
	for _, name := range tagNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := getOrCreateTag(q, userID, name)
		if err != nil {
			return err
		}
		if _, err := q.Exec(
			"INSERT INTO note_tags (note_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			noteID, tag.ID,
		); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", name, err)
		}
	}
	return nil
}
