package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recall-notes/models"
)

// TagRepository owns tags and the note_tags association.
type TagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) *TagRepository {
	return &TagRepository{db: db}
}

type TagUpdate struct {
	Name  *string
	Color *string
}

func (r *TagRepository) Create(userID int64, name string, color *string) (*models.TagWithCount, error) {
	res, err := r.db.Exec(
		"INSERT INTO tags (user_id, name, color, created_at) VALUES (?, ?, ?, ?)",
		userID, name, color, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	tagID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read tag id: %w", err)
	}

	return getTagWithCount(r.db, tagID)
}

// GetByID returns nil when the tag is missing.
func (r *TagRepository) GetByID(tagID int64) (*models.TagWithCount, error) {
	tag, err := getTagWithCount(r.db, tagID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return tag, err
}

// ListByOwner returns the owner's tags in name order, each with its count
// of non-deleted linked notes.
func (r *TagRepository) ListByOwner(userID int64) ([]*models.TagWithCount, error) {
	ids, err := collectIDs(r.db, "SELECT tag_id FROM tags WHERE user_id = ? ORDER BY name", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	result := make([]*models.TagWithCount, 0, len(ids))
	for _, id := range ids {
		tag, err := getTagWithCount(r.db, id)
		if err != nil {
			return nil, err
		}
		result = append(result, tag)
	}
	return result, nil
}

func (r *TagRepository) Update(tagID int64, upd TagUpdate) (*models.TagWithCount, error) {
	var sc setClause
	if upd.Name != nil {
		sc.set("name", *upd.Name)
	}
	if upd.Color != nil {
		sc.set("color", *upd.Color)
	}
	if sc.empty() {
		tag, err := getTagWithCount(r.db, tagID)
		if err != nil {
			return nil, err
		}
		return tag, nil
	}

	args := append(sc.args, tagID)
	res, err := r.db.Exec("UPDATE tags SET "+sc.sql()+" WHERE tag_id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return getTagWithCount(r.db, tagID)
}

// Delete removes the tag; the storage layer cascades the join rows.
func (r *TagRepository) Delete(tagID, userID int64) error {
	res, err := r.db.Exec("DELETE FROM tags WHERE tag_id = ? AND user_id = ?", tagID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
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

// Assign links a tag to a note; re-assigning an existing link is a no-op.
func (r *TagRepository) Assign(noteID, tagID int64) error {
	_, err := r.db.Exec(
		"INSERT INTO note_tags (note_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		noteID, tagID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign tag: %w", err)
	}
	return nil
}

// Unassign removes the link; removing a missing link is a no-op.
func (r *TagRepository) Unassign(noteID, tagID int64) error {
	_, err := r.db.Exec("DELETE FROM note_tags WHERE note_id = ? AND tag_id = ?", noteID, tagID)
	if err != nil {
		return fmt.Errorf("failed to unassign tag: %w", err)
	}
	return nil
}

// NotesByTag returns the non-deleted notes linked to a tag,
// newest-updated-first.
func (r *TagRepository) NotesByTag(tagID int64) ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT n.note_id, n.user_id, n.folder_id, n.title, n.content,
		       n.is_pinned, n.is_archived, n.is_deleted, n.created_at, n.updated_at
		FROM notes n
		INNER JOIN note_tags nt ON n.note_id = nt.note_id
		WHERE nt.tag_id = ? AND n.is_deleted = 0
		ORDER BY n.updated_at DESC
	`, tagID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes by tag: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var (
			n        models.Note
			folderID sql.NullInt64
		)
		if err := rows.Scan(
			&n.ID, &n.UserID, &folderID, &n.Title, &n.Content,
			&n.IsPinned, &n.IsArchived, &n.IsDeleted, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if folderID.Valid {
			n.FolderID = &folderID.Int64
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// getOrCreateTag matches the name case-insensitively within the owner's
// tags and creates it if absent. Callers that create notes concurrently
// must run it on their transaction, otherwise two inserts of the same new
// name can race.
func getOrCreateTag(q querier, userID int64, name string) (*models.Tag, error) {
	tag, err := scanTag(q.QueryRow(
		"SELECT tag_id, user_id, name, color, created_at FROM tags WHERE user_id = ? AND LOWER(name) = LOWER(?)",
		userID, name,
	))
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up tag %q: %w", name, err)
	}

	res, err := q.Exec(
		"INSERT INTO tags (user_id, name, created_at) VALUES (?, ?, ?)",
		userID, name, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	tagID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read tag id: %w", err)
	}

	tag, err = scanTag(q.QueryRow(
		"SELECT tag_id, user_id, name, color, created_at FROM tags WHERE tag_id = ?",
		tagID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created tag: %w", err)
	}
	return tag, nil
}

func scanTag(row *sql.Row) (*models.Tag, error) {
	var t models.Tag
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// getTagWithCount pairs the tag with the number of non-deleted notes
// linked through the join table. Soft-deleted notes are excluded here for
// consistency with every other count in the system.
func getTagWithCount(q querier, tagID int64) (*models.TagWithCount, error) {
	tag, err := scanTag(q.QueryRow(
		"SELECT tag_id, user_id, name, color, created_at FROM tags WHERE tag_id = ?",
		tagID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tag: %w", err)
	}

	var count int64
	err = q.QueryRow(`
		SELECT COUNT(*) FROM note_tags nt
		INNER JOIN notes n ON n.note_id = nt.note_id
		WHERE nt.tag_id = ? AND n.is_deleted = 0
	`, tagID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count tag notes: %w", err)
	}

	return &models.TagWithCount{Tag: *tag, NoteCount: count}, nil
}
