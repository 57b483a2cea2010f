package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recall-notes/app"
	"recall-notes/middleware"
	"recall-notes/models"
)

// CurrentUser returns the profile of the user making the request
func CurrentUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.Users.Get(middleware.GetUserID(c))
		if err != nil {
			return fail(c, "User not found", err)
		}
		return success(c, fiber.Map{"user": user})
	}
}

// UpdateProfile changes the display name or avatar
func UpdateProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid profile", err)
		}

		user, err := a.Users.UpdateProfile(middleware.GetUserID(c), &req)
		if err != nil {
			return fail(c, "Failed to update profile", err)
		}

		return success(c, fiber.Map{"user": user})
	}
}

// ChangePassword verifies the current password before storing the new one
func ChangePassword(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ChangePasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return fail(c, "Invalid password change", err)
		}

		if err := a.Users.ChangePassword(middleware.GetUserID(c), &req); err != nil {
			return fail(c, "Failed to change password", err)
		}

		return success(c, fiber.Map{"message": "Password changed successfully"})
	}
}
