package services

import "recall-notes/models"

type AttachmentService struct {
	repo AttachmentRepository
}

func NewAttachmentService(repo AttachmentRepository) *AttachmentService {
	return &AttachmentService{repo: repo}
}

func (s *AttachmentService) Create(noteID int64, fileName, filePath string, fileSize int64, mimeType string) (*models.Attachment, error) {
	return s.repo.Create(noteID, fileName, filePath, fileSize, mimeType)
}

func (s *AttachmentService) ListByNote(noteID int64) ([]models.Attachment, error) {
	return s.repo.ListByNote(noteID)
}

func (s *AttachmentService) Delete(attachmentID int64) error {
	return s.repo.Delete(attachmentID)
}
