package services

import (
	"strings"

	"recall-notes/database"
	"recall-notes/models"
)

type TagService struct {
	repo TagRepository
}

func NewTagService(repo TagRepository) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) Create(userID int64, req *models.CreateTagRequest) (*models.TagWithCount, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrTagNameRequired
	}
	return s.repo.Create(userID, req.Name, req.Color)
}

func (s *TagService) Get(tagID int64) (*models.TagWithCount, error) {
	tag, err := s.repo.GetByID(tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, database.ErrNotFound
	}
	return tag, nil
}

func (s *TagService) List(userID int64) ([]*models.TagWithCount, error) {
	return s.repo.ListByOwner(userID)
}

func (s *TagService) Update(tagID int64, req *models.UpdateTagRequest) (*models.TagWithCount, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrTagNameRequired
	}
	return s.repo.Update(tagID, database.TagUpdate{Name: req.Name, Color: req.Color})
}

func (s *TagService) Delete(tagID, userID int64) error {
	return s.repo.Delete(tagID, userID)
}

func (s *TagService) Assign(noteID, tagID int64) error {
	return s.repo.Assign(noteID, tagID)
}

func (s *TagService) Unassign(noteID, tagID int64) error {
	return s.repo.Unassign(noteID, tagID)
}

func (s *TagService) Notes(tagID int64) ([]models.Note, error) {
	return s.repo.NotesByTag(tagID)
}
