package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/worklane/worklane-api/comments"
	commentHandlers "github.com/worklane/worklane-api/comments/handlers"
	commentRepository "github.com/worklane/worklane-api/comments/repository"
	commentServices "github.com/worklane/worklane-api/comments/services"
	"github.com/worklane/worklane-api/internal/database/postgres"
	"github.com/worklane/worklane-api/internal/middleware/requestid"
	platformconfig "github.com/worklane/worklane-api/internal/platform/config"
	"github.com/worklane/worklane-api/notifications"
	notificationHandlers "github.com/worklane/worklane-api/notifications/handlers"
	notificationRepository "github.com/worklane/worklane-api/notifications/repository"
	notificationServices "github.com/worklane/worklane-api/notifications/services"
	profileRepository "github.com/worklane/worklane-api/profile/repository"
	projectRepository "github.com/worklane/worklane-api/projects/repository"
	"github.com/worklane/worklane-api/storage"
	storageHandlers "github.com/worklane/worklane-api/storage/handlers"
	storageProvider "github.com/worklane/worklane-api/storage/provider"
	storageRepository "github.com/worklane/worklane-api/storage/repository"
	storageServices "github.com/worklane/worklane-api/storage/services"
	taskRepository "github.com/worklane/worklane-api/tasks/repository"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// If response already set by handler, don't override it
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	// Repositories share one connection pool
	commentRepo := commentRepository.NewPostgresCommentRepository(pgClient)
	notificationRepo := notificationRepository.NewPostgresNotificationRepository(pgClient)
	profileRepo := profileRepository.NewPostgresProfileRepository(pgClient)
	projectRepo := projectRepository.NewPostgresProjectRepository(pgClient)
	taskRepo := taskRepository.NewPostgresTaskRepository(pgClient)
	fileRepo := storageRepository.NewPostgresRepository(pgClient)

	projectReader := projectRepository.NewProjectReader(projectRepo)
	taskReader := taskRepository.NewTaskReader(taskRepo)

	blobProvider, err := storageProvider.NewS3Provider(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to create blob storage provider: %v", err)
	}

	dispatcher := notificationServices.NewCommentEventDispatcher(
		notificationRepo,
		commentRepo,
		profileRepo,
		projectReader,
		taskReader,
	)

	commentService := commentServices.NewCommentService(commentRepo, projectReader, taskReader, dispatcher)
	notificationService := notificationServices.NewNotificationService(notificationRepo)
	storageService := storageServices.NewStorageService(fileRepo, blobProvider, &cfg.Storage)

	comments.RegisterRoutes(app, &comments.CommentsHandlers{
		CommentHandler: commentHandlers.NewCommentHandler(commentService),
	}, cfg)
	notifications.RegisterRoutes(app, &notifications.NotificationsHandlers{
		NotificationHandler: notificationHandlers.NewNotificationHandler(notificationService),
	}, cfg)
	storage.RegisterRoutes(app, &storage.StorageHandlers{
		StorageHandler: storageHandlers.NewStorageHandler(storageService),
	}, cfg)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting Worklane API server on %s", addr)
	log.Fatal(app.Listen(addr))
}
