package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"recall-notes/app"
	"recall-notes/config"
	"recall-notes/database"
	"recall-notes/handlers"
	"recall-notes/middleware"
	"recall-notes/services"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	db, err := database.New(config.AppConfig.DBPath, config.AppConfig.DBMaxConns)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialized", "path", config.AppConfig.DBPath)

	notes := database.NewNoteRepository(db)
	folders := database.NewFolderRepository(db)
	tags := database.NewTagRepository(db)
	attachments := database.NewAttachmentRepository(db)
	users := database.NewUserRepository(db)

	if err := seedDefaultUser(users, logger); err != nil {
		logger.Error("failed to seed default user", "error", err)
		os.Exit(1)
	}

	a := app.New(
		services.NewNoteService(notes),
		services.NewFolderService(folders),
		services.NewTagService(tags),
		services.NewAttachmentService(attachments),
		services.NewUserService(users),
		logger,
	)

	srv := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
		BodyLimit:             25 * 1024 * 1024,
	})

	srv.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     config.GetEnv("CORS_ORIGINS", "*"),
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,X-User-ID",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
	)

	srv.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := srv.Group("/api", middleware.CurrentUser(config.AppConfig.DefaultUserID))

	// Fixed segments before the :id wildcard so /notes/search
	// and friends never parse as note ids.
	api.Get("/notes/search", handlers.SearchNotes(a))
	api.Get("/notes/pinned", handlers.PinnedNotes(a))
	api.Get("/notes/archived", handlers.ArchivedNotes(a))
	api.Post("/notes/import", handlers.ImportNote(a))
	api.Get("/notes", handlers.ListNotes(a))
	api.Post("/notes", handlers.CreateNote(a))
	api.Get("/notes/:id", handlers.GetNote(a))
	api.Put("/notes/:id", handlers.UpdateNote(a))
	api.Delete("/notes/:id", handlers.DeleteNote(a))
	api.Post("/notes/:id/restore", handlers.RestoreNote(a))
	api.Post("/notes/:id/pin", handlers.TogglePin(a))
	api.Post("/notes/:id/archive", handlers.ToggleArchive(a))
	api.Post("/notes/:id/export", handlers.ExportNote(a))
	api.Get("/notes/:id/attachments", handlers.ListAttachments(a))
	api.Post("/notes/:id/attachments", handlers.UploadAttachment(a))
	api.Put("/notes/:id/tags/:tagID", handlers.AssignTag(a))
	api.Delete("/notes/:id/tags/:tagID", handlers.UnassignTag(a))

	api.Delete("/attachments/:id", handlers.DeleteAttachment(a))

	api.Get("/folders/tree", handlers.FolderTree(a))
	api.Get("/folders", handlers.ListFolders(a))
	api.Post("/folders", handlers.CreateFolder(a))
	api.Get("/folders/:id", handlers.GetFolder(a))
	api.Put("/folders/:id", handlers.UpdateFolder(a))
	api.Delete("/folders/:id", handlers.DeleteFolder(a))
	api.Get("/folders/:id/notes", handlers.FolderNotes(a))

	api.Get("/tags", handlers.ListTags(a))
	api.Post("/tags", handlers.CreateTag(a))
	api.Get("/tags/:id", handlers.GetTag(a))
	api.Put("/tags/:id", handlers.UpdateTag(a))
	api.Delete("/tags/:id", handlers.DeleteTag(a))
	api.Get("/tags/:id/notes", handlers.TagNotes(a))

	api.Get("/users/me", handlers.CurrentUser(a))
	api.Put("/users/me", handlers.UpdateProfile(a))
	api.Put("/users/me/password", handlers.ChangePassword(a))

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := srv.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// seedDefaultUser makes sure the single-user install has an account to
// attach notes to on first launch.
func seedDefaultUser(users *database.UserRepository, logger *slog.Logger) error {
	existing, err := users.GetByID(config.AppConfig.DefaultUserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := services.HashPassword(config.GetEnv("DEFAULT_USER_PASSWORD", "changeme"))
	if err != nil {
		return err
	}

	user, err := users.Create(
		config.GetEnv("DEFAULT_USER_NAME", "owner"),
		config.GetEnv("DEFAULT_USER_EMAIL", "owner@localhost"),
		hash,
	)
	if err != nil {
		return err
	}

	logger.Info("created default user", "user_id", user.ID, "username", user.Username)
	return nil
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
