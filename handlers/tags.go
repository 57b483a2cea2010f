package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recall-notes/app"
	"recall-notes/middleware"
	"recall-notes/models"
)

// CreateTag creates a tag for the current user
func CreateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid tag", err)
		}

		tag, err := a.Tags.Create(middleware.GetUserID(c), &req)
		if err != nil {
			return fail(c, "Failed to create tag", err)
		}

		return created(c, fiber.Map{"tag": tag})
	}
}

// GetTag returns the tag with its live note count
func GetTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid tag id")
		}

		tag, err := a.Tags.Get(id)
		if err != nil {
			return fail(c, "Tag not found", err)
		}

		return success(c, fiber.Map{"tag": tag})
	}
}

// ListTags returns the user's tags alphabetically with note counts
func ListTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := a.Tags.List(middleware.GetUserID(c))
		if err != nil {
			return fail(c, "Failed to fetch tags", err)
		}
		return success(c, fiber.Map{"tags": tags})
	}
}

// UpdateTag renames or recolors a tag
func UpdateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid tag id")
		}

		var req models.UpdateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid tag", err)
		}

		tag, err := a.Tags.Update(id, &req)
		if err != nil {
			return fail(c, "Failed to update tag", err)
		}

		return success(c, fiber.Map{"tag": tag})
	}
}

// DeleteTag removes the tag and its note associations
func DeleteTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid tag id")
		}

		if err := a.Tags.Delete(id, middleware.GetUserID(c)); err != nil {
			return fail(c, "Failed to delete tag", err)
		}

		return success(c, fiber.Map{"message": "Tag deleted successfully"})
	}
}

// AssignTag attaches a tag to a note; repeating it is a no-op
func AssignTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}
		tagID, err := paramID(c, "tagID")
		if err != nil {
			return badRequest(c, "Invalid tag id")
		}

		if err := a.Tags.Assign(noteID, tagID); err != nil {
			return fail(c, "Failed to assign tag", err)
		}

		return success(c, fiber.Map{"message": "Tag assigned successfully"})
	}
}

// UnassignTag detaches a tag from a note
func UnassignTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid note id")
		}
		tagID, err := paramID(c, "tagID")
		if err != nil {
			return badRequest(c, "Invalid tag id")
		}

		if err := a.Tags.Unassign(noteID, tagID); err != nil {
			return fail(c, "Failed to unassign tag", err)
		}

		return success(c, fiber.Map{"message": "Tag unassigned successfully"})
	}
}

// TagNotes returns the non-deleted notes carrying the tag
func TagNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return badRequest(c, "Invalid tag id")
		}

		notes, err := a.Tags.Notes(id)
		if err != nil {
			return fail(c, "Failed to fetch tag notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}
