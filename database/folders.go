package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recall-notes/models"
)

// FolderRepository owns the folder forest: CRUD plus tree reconstruction.
type FolderRepository struct {
	db *DB
}

func NewFolderRepository(db *DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// FolderUpdate carries a partial folder update; ParentFolderID
// distinguishes null (move to root) from absent (leave unchanged).
type FolderUpdate struct {
	Name           *string
	ParentFolderID models.OptionalID
	Color          *string
}

func (r *FolderRepository) Create(userID int64, name string, parentFolderID *int64, color *string) (*models.FolderWithChildren, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO folders (user_id, name, parent_folder_id, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, userID, name, parentFolderID, color, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	folderID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read folder id: %w", err)
	}

	return r.getWithChildren(r.db, folderID)
}

// GetByID returns the folder with its full subtree, or nil when missing.
func (r *FolderRepository) GetByID(folderID int64) (*models.FolderWithChildren, error) {
	node, err := r.getWithChildren(r.db, folderID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return node, err
}

// ListByOwner returns every folder of the owner ordered by name, each
// carrying its full subtree.
func (r *FolderRepository) ListByOwner(userID int64) ([]*models.FolderWithChildren, error) {
	forest, err := loadForest(r.db, userID)
	if err != nil {
		return nil, err
	}
	return forest.all, nil
}

// GetTree returns the owner's folder forest: root folders in name order,
// children nested recursively, each node counting only its own non-deleted
// notes.
func (r *FolderRepository) GetTree(userID int64) ([]*models.FolderWithChildren, error) {
	forest, err := loadForest(r.db, userID)
	if err != nil {
		return nil, err
	}
	return forest.roots, nil
}

// Update applies the supplied fields and bumps updated_at. A parent change
// that would place the folder inside its own subtree fails with
// ErrFolderCycle before anything is written.
func (r *FolderRepository) Update(folderID int64, upd FolderUpdate) (*models.FolderWithChildren, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if upd.ParentFolderID.Present && upd.ParentFolderID.Valid {
		if err := checkNoCycle(tx, folderID, upd.ParentFolderID.ID); err != nil {
			return nil, err
		}
	}

	var sc setClause
	sc.set("updated_at", time.Now().UTC())
	if upd.Name != nil {
		sc.set("name", *upd.Name)
	}
	if upd.ParentFolderID.Present {
		sc.set("parent_folder_id", upd.ParentFolderID.Ptr())
	}
	if upd.Color != nil {
		sc.set("color", *upd.Color)
	}

	args := append(sc.args, folderID)
	res, err := tx.Exec("UPDATE folders SET "+sc.sql()+" WHERE folder_id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	node, err := r.getWithChildren(tx, folderID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit folder update: %w", err)
	}

	return node, nil
}

// Delete removes the folder only when it has no direct non-deleted notes
// and no subfolders; otherwise ErrFolderNotEmpty. There is no cascade.
func (r *FolderRepository) Delete(folderID, userID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var noteCount int64
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM notes WHERE folder_id = ? AND user_id = ? AND is_deleted = 0",
		folderID, userID,
	).Scan(&noteCount)
	if err != nil {
		return fmt.Errorf("failed to count folder notes: %w", err)
	}
	if noteCount > 0 {
		return ErrFolderNotEmpty
	}

	var subfolderCount int64
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM folders WHERE parent_folder_id = ? AND user_id = ?",
		folderID, userID,
	).Scan(&subfolderCount)
	if err != nil {
		return fmt.Errorf("failed to count subfolders: %w", err)
	}
	if subfolderCount > 0 {
		return ErrFolderNotEmpty
	}

	res, err := tx.Exec("DELETE FROM folders WHERE folder_id = ? AND user_id = ?", folderID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit folder delete: %w", err)
	}

	return nil
}

func (r *FolderRepository) getWithChildren(q querier, folderID int64) (*models.FolderWithChildren, error) {
	var userID int64
	err := q.QueryRow("SELECT user_id FROM folders WHERE folder_id = ?", folderID).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch folder: %w", err)
	}

	forest, err := loadForest(q, userID)
	if err != nil {
		return nil, err
	}

	node, ok := forest.nodes[folderID]
	if !ok {
		return nil, ErrNotFound
	}
	return node, nil
}

type folderForest struct {
	nodes map[int64]*models.FolderWithChildren
	all   []*models.FolderWithChildren // every folder, name order
	roots []*models.FolderWithChildren // parent == NULL, name order
}

// loadForest reconstructs the owner's whole folder forest in three fixed
// queries: folder rows in name order, per-folder non-deleted note counts,
// then in-memory linking. Nothing here recurses, so depth is bounded only
// by memory, and a parent cycle in bad data cannot hang the build — each
// node is created and linked exactly once.
func loadForest(q querier, userID int64) (*folderForest, error) {
	rows, err := q.Query(`
		SELECT folder_id, user_id, name, parent_folder_id, color, created_at, updated_at
		FROM folders WHERE user_id = ? ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	forest := &folderForest{nodes: make(map[int64]*models.FolderWithChildren)}
	for rows.Next() {
		var (
			f        models.Folder
			parentID sql.NullInt64
		)
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &parentID, &f.Color, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		if parentID.Valid {
			f.ParentFolderID = &parentID.Int64
		}
		node := &models.FolderWithChildren{Folder: f, Children: make([]*models.FolderWithChildren, 0)}
		forest.nodes[f.ID] = node
		forest.all = append(forest.all, node)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read folders: %w", err)
	}
	rows.Close()

	counts, err := q.Query(`
		SELECT folder_id, COUNT(*) FROM notes
		WHERE user_id = ? AND is_deleted = 0 AND folder_id IS NOT NULL
		GROUP BY folder_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count folder notes: %w", err)
	}
	defer counts.Close()

	for counts.Next() {
		var (
			folderID int64
			n        int64
		)
		if err := counts.Scan(&folderID, &n); err != nil {
			return nil, fmt.Errorf("failed to scan note count: %w", err)
		}
		if node, ok := forest.nodes[folderID]; ok {
			node.NoteCount = n
		}
	}
	if err := counts.Err(); err != nil {
		return nil, fmt.Errorf("failed to read note counts: %w", err)
	}

	// Iteration follows name order, so children and roots inherit it.
	for _, node := range forest.all {
		parentID := node.Folder.ParentFolderID
		if parentID == nil {
			forest.roots = append(forest.roots, node)
			continue
		}
		if parent, ok := forest.nodes[*parentID]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			forest.roots = append(forest.roots, node)
		}
	}

	return forest, nil
}

// checkNoCycle walks the parent chain upward from newParentID and fails if
// it reaches folderID. The visited set makes the walk terminate even if the
// stored chain is already cyclic.
func checkNoCycle(q querier, folderID, newParentID int64) error {
	if newParentID == folderID {
		return ErrFolderCycle
	}

	visited := map[int64]bool{}
	current := newParentID
	for {
		if visited[current] {
			return ErrFolderCycle
		}
		visited[current] = true

		var parent sql.NullInt64
		err := q.QueryRow("SELECT parent_folder_id FROM folders WHERE folder_id = ?", current).Scan(&parent)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to walk folder ancestry: %w", err)
		}
		if !parent.Valid {
			return nil
		}
		if parent.Int64 == folderID {
			return ErrFolderCycle
		}
		current = parent.Int64
	}
}
