package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recall-notes/app"
	"recall-notes/middleware"
	"recall-notes/models"
)

// CreateNote creates a note with its tag set in one atomic operation
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid note", err)
		}

		note, err := a.Notes.Create(middleware.GetUserID(c), &req)
		if err != nil {
			return fail(c, "Failed to create note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// GetNote returns the note with its folder summary and tag list
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		note, err := a.Notes.Get(id)
		if err != nil {
			return fail(c, "Note not found", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// ListNotes returns the user's notes, newest first
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List(middleware.GetUserID(c))
		if err != nil {
			return fail(c, "Failed to fetch notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// SearchNotes matches the query against titles and contents
func SearchNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return badRequest(c, "q is required")
		}

		notes, err := a.Notes.Search(middleware.GetUserID(c), query)
		if err != nil {
			return fail(c, "Failed to search notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// PinnedNotes returns the user's pinned notes
func PinnedNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.ListPinned(middleware.GetUserID(c))
		if err != nil {
			return fail(c, "Failed to fetch pinned notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// ArchivedNotes returns the user's archived notes
func ArchivedNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.ListArchived(middleware.GetUserID(c))
		if err != nil {
			return fail(c, "Failed to fetch archived notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// UpdateNote applies a partial update; absent fields stay unchanged
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid note", err)
		}

		note, err := a.Notes.Update(id, &req)
		if err != nil {
			return fail(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeleteNote soft-deletes the note; the row persists for restore
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		if err := a.Notes.Delete(id, middleware.GetUserID(c)); err != nil {
			return fail(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"message": "Note deleted successfully"})
	}
}

// RestoreNote brings a soft-deleted note back
func RestoreNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		if err := a.Notes.Restore(id, middleware.GetUserID(c)); err != nil {
			return fail(c, "Failed to restore note", err)
		}

		return success(c, fiber.Map{"message": "Note restored successfully"})
	}
}

// TogglePin flips the pinned flag
func TogglePin(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		note, err := a.Notes.TogglePin(id)
		if err != nil {
			return fail(c, "Failed to toggle pin", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// ToggleArchive flips the archived flag
func ToggleArchive(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		note, err := a.Notes.ToggleArchive(id)
		if err != nil {
			return fail(c, "Failed to toggle archive", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

type notePathRequest struct {
	Path string `json:"path"`
}

// ExportNote writes the note to disk as markdown with front matter
func ExportNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		var req notePathRequest
		if err := c.BodyParser(&req); err != nil || req.Path == "" {
			return badRequest(c, "path is required")
		}

		if err := a.Notes.Export(id, req.Path); err != nil {
			return fail(c, "Failed to export note", err)
		}

		return success(c, fiber.Map{"message": "Note exported successfully"})
	}
}

// ImportNote creates a note from a markdown file on disk
func ImportNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req notePathRequest
		if err := c.BodyParser(&req); err != nil || req.Path == "" {
			return badRequest(c, "path is required")
		}

		note, err := a.Notes.Import(middleware.GetUserID(c), req.Path)
		if err != nil {
			return fail(c, "Failed to import note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}
