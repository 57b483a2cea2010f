package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"recall-notes/app"
	"recall-notes/config"
)

// UploadAttachment stores the uploaded file under the attachments
// directory with a generated name and records it against the note.
// The original filename survives only in the database row.
func UploadAttachment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		if _, err := a.Notes.Get(noteID); err != nil {
			return fail(c, "Note not found", err)
		}

		file, err := c.FormFile("file")
		if err != nil {
			return badRequest(c, "file is required")
		}

		dir := config.AppConfig.AttachmentsDir
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fail(c, "Failed to store attachment", err)
		}

		diskName := uuid.New().String() + filepath.Ext(file.Filename)
		diskPath := filepath.Join(dir, diskName)
		if err := c.SaveFile(file, diskPath); err != nil {
			return fail(c, "Failed to store attachment", err)
		}

		mimeType := file.Header.Get("Content-Type")
		attachment, err := a.Attachments.Create(noteID, file.Filename, diskPath, file.Size, mimeType)
		if err != nil {
			_ = os.Remove(diskPath)
			return fail(c, "Failed to store attachment", err)
		}

		return created(c, fiber.Map{"attachment": attachment})
	}
}

// ListAttachments returns the note's attachments, newest first
func ListAttachments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		attachments, err := a.Attachments.ListByNote(noteID)
		if err != nil {
			return fail(c, "Failed to fetch attachments", err)
		}
		return success(c, fiber.Map{"attachments": attachments})
	}
}

// DeleteAttachment removes the record and its file on disk
func DeleteAttachment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid attachment id")
		}

		if err := a.Attachments.Delete(id); err != nil {
			return fail(c, "Failed to delete attachment", err)
		}

		return success(c, fiber.Map{"message": "Attachment deleted successfully"})
	}
}
