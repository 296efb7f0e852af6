// @title SocialHub API
// @version 1.0
// @description Social networking backend: auth, posts, feed, engagement, follows and notifications.
// @host localhost:3000
// @BasePath /

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"

	_ "socialhub/docs"

	"socialhub/config"
	"socialhub/database"
	"socialhub/internal/middleware"
	"socialhub/internal/repository"
	"socialhub/internal/routes"
	"socialhub/internal/services"
	"socialhub/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	media, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPassword)

	// repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// services
	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, mailer, cfg.JWTSecret, cfg.ClientOrigin)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, media)
	followService := services.NewFollowService(followRepo, notificationService)
	engagementService := services.NewEngagementService(postRepo, likeRepo, commentRepo, notificationService)
	feedService := services.NewFeedService(followRepo, postRepo, likeRepo, commentRepo)

	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientOrigin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("Server is up and running!") })
	app.Static("/uploads", media.Dir())

	authGate := middleware.RequireAuth(userRepo, cfg.JWTSecret)
	routes.SetupAuth(app, authGate, authService)
	routes.SetupPost(app, authGate, postService, feedService, engagementService)
	routes.SetupUsers(app, authGate, userService, followService, notificationService)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
