package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"recall-notes/database"
	"recall-notes/models"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(userID int64) (*models.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, database.ErrNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID int64, req *models.UpdateProfileRequest) (*models.User, error) {
	return s.repo.UpdateProfile(userID, database.ProfileUpdate{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
}

// ChangePassword verifies the current password against the stored bcrypt
// hash before writing a hash of the new one. Plaintext never reaches the
// repository.
func (s *UserService) ChangePassword(userID int64, req *models.ChangePasswordRequest) error {
	user, err := s.Get(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(userID, hash)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
