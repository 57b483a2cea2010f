package services

import (
	"strings"

	"recall-notes/database"
	"recall-notes/models"
)

type FolderService struct {
	repo FolderRepository
}

func NewFolderService(repo FolderRepository) *FolderService {
	return &FolderService{repo: repo}
}

func (s *FolderService) Create(userID int64, req *models.CreateFolderRequest) (*models.FolderWithChildren, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrFolderNameRequired
	}
	return s.repo.Create(userID, req.Name, req.ParentFolderID, req.Color)
}

func (s *FolderService) Get(folderID int64) (*models.FolderWithChildren, error) {
	folder, err := s.repo.GetByID(folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, database.ErrNotFound
	}
	return folder, nil
}

func (s *FolderService) List(userID int64) ([]*models.FolderWithChildren, error) {
	return s.repo.ListByOwner(userID)
}

func (s *FolderService) Tree(userID int64) ([]*models.FolderWithChildren, error) {
	return s.repo.GetTree(userID)
}

func (s *FolderService) Update(folderID int64, req *models.UpdateFolderRequest) (*models.FolderWithChildren, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrFolderNameRequired
	}
	return s.repo.Update(folderID, database.FolderUpdate{
		Name:           req.Name,
		ParentFolderID: req.ParentFolderID,
		Color:          req.Color,
	})
}

// Delete refuses folders that still hold notes or subfolders; the
// repository reports that as database.ErrFolderNotEmpty.
func (s *FolderService) Delete(folderID, userID int64) error {
	return s.repo.Delete(folderID, userID)
}
