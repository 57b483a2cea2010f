package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recall-notes/models"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

type ProfileUpdate struct {
	FullName  *string
	AvatarURL *string
}

func (r *UserRepository) Create(username, email, passwordHash string) (*models.User, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, username, email, passwordHash, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read user id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns nil when the user does not exist.
func (r *UserRepository) GetByID(userID int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(`
		SELECT user_id, username, email, password_hash, full_name, avatar_url, created_at, updated_at
		FROM users WHERE user_id = ?
	`, userID).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &u, nil
}

// UpdateProfile applies the supplied fields and bumps updated_at.
func (r *UserRepository) UpdateProfile(userID int64, upd ProfileUpdate) (*models.User, error) {
	var sc setClause
	sc.set("updated_at", time.Now().UTC())
	if upd.FullName != nil {
		sc.set("full_name", *upd.FullName)
	}
	if upd.AvatarURL != nil {
		sc.set("avatar_url", *upd.AvatarURL)
	}

	args := append(sc.args, userID)
	res, err := r.db.Exec("UPDATE users SET "+sc.sql()+" WHERE user_id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	user, err := r.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) UpdatePassword(userID int64, newPasswordHash string) error {
	res, err := r.db.Exec(
		"UPDATE users SET password_hash = ?, updated_at = ? WHERE user_id = ?",
		newPasswordHash, time.Now().UTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
