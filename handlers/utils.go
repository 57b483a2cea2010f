package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"recall-notes/database"
	"recall-notes/services"
	"recall-notes/validator"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

// fail maps a service or repository error onto the wire: validation
// problems become 400, absence 404, anything else a logged 500.
func fail(c *fiber.Ctx, message string, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  validationErrs.Error(),
			"fields": validationErrs,
		})
	}

	switch {
	case errors.Is(err, database.ErrNotFound):
		return notFound(c, message)
	case errors.Is(err, database.ErrFolderNotEmpty),
		errors.Is(err, database.ErrFolderCycle),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrFolderNameRequired),
		errors.Is(err, services.ErrTagNameRequired),
		errors.Is(err, services.ErrInvalidCredentials):
		return badRequest(c, err.Error())
	}

	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
