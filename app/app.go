package app

import (
	"log/slog"

	"recall-notes/services"
	"recall-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Notes       *services.NoteService
	Folders     *services.FolderService
	Tags        *services.TagService
	Attachments *services.AttachmentService
	Users       *services.UserService
	Validator   *validator.Validator
	Logger      *slog.Logger
}

// New creates a new App instance with all dependencies
func New(notes *services.NoteService, folders *services.FolderService, tags *services.TagService, attachments *services.AttachmentService, users *services.UserService, logger *slog.Logger) *App {
	return &App{
		Notes:       notes,
		Folders:     folders,
		Tags:        tags,
		Attachments: attachments,
		Users:       users,
		Validator:   validator.New(),
		Logger:      logger,
	}
}
