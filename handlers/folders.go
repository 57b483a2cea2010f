package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recall-notes/app"
	"recall-notes/middleware"
	"recall-notes/models"
)

// CreateFolder creates a folder, optionally nested under a parent
func CreateFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid folder", err)
		}

		folder, err := a.Folders.Create(middleware.GetUserID(c), &req)
		if err != nil {
			return fail(c, "Failed to create folder", err)
		}

		return created(c, fiber.Map{"folder": folder})
	}
}

// GetFolder returns the folder with its immediate children and note count
func GetFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid folder id")
		}

		folder, err := a.Folders.Get(id)
		if err != nil {
			return fail(c, "Folder not found", err)
		}

		return success(c, fiber.Map{"folder": folder})
	}
}

// ListFolders returns every folder flat, each with children linked
func ListFolders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, err := a.Folders.List(middleware.GetUserID(c))
		if err != nil {
			return fail(c, "Failed to fetch folders", err)
		}
		return success(c, fiber.Map{"folders": folders})
	}
}

// FolderTree returns only the root folders with descendants nested
func FolderTree(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tree, err := a.Folders.Tree(middleware.GetUserID(c))
		if err != nil {
			return fail(c, "Failed to fetch folder tree", err)
		}
		return success(c, fiber.Map{"folders": tree})
	}
}

// FolderNotes returns the non-deleted notes filed under the folder
func FolderNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid folder id")
		}

		notes, err := a.Notes.ListByFolder(middleware.GetUserID(c), id)
		if err != nil {
			return fail(c, "Failed to fetch folder notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// UpdateFolder renames, recolors, or moves a folder; moves are
// rejected when they would create a cycle
func UpdateFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid folder id")
		}

		var req models.UpdateFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid folder", err)
		}

		folder, err := a.Folders.Update(id, &req)
		if err != nil {
			return fail(c, "Failed to update folder", err)
		}

		return success(c, fiber.Map{"folder": folder})
	}
}

// DeleteFolder removes an empty folder
func DeleteFolder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid folder id")
		}

		if err := a.Folders.Delete(id, middleware.GetUserID(c)); err != nil {
			return fail(c, "Failed to delete folder", err)
		}

		return success(c, fiber.Map{"message": "Folder deleted successfully"})
	}
}
