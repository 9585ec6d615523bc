package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coworking_market/config"
	"coworking_market/database"
	"coworking_market/events"
	"coworking_market/handler"
	"coworking_market/helper"
	"coworking_market/manager"
	"coworking_market/middleware"
	"coworking_market/notification"
	"coworking_market/repository"
	"coworking_market/router"
	"coworking_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	settings := config.Load()
	log := utils.NewLogger(settings.LogLevel)
	if settings.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	helper.JwtSecret = []byte(settings.JWTSecret)

	ctx := context.Background()

	store, err := openStore(settings, log)
	if err != nil {
		log.WithError(err).Fatal("storage init failed")
	}
	if err := database.SeedData(ctx, store, settings.AppEnv != "production", log); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	var rdb *redis.Client
	if settings.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: settings.RedisAddr, Password: settings.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, live notifications disabled")
			rdb = nil
		}
	}

	mailer, err := notification.NewMailer(settings, log)
	if err != nil {
		log.WithError(err).Fatal("mailer init failed")
	}
	notifier, err := notification.NewService(mailer, settings.SMTPFrom, rdb, log)
	if err != nil {
		log.WithError(err).Fatal("notification init failed")
	}

	var publisher events.Publisher = events.Noop{}
	if settings.RabbitMQURL != "" {
		p, err := events.NewAMQPPublisher(settings.RabbitMQURL, log)
		if err != nil {
			log.WithError(err).Warn("rabbitmq unreachable, domain events disabled")
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	deps := manager.Deps{
		Store:    store,
		Notifier: notifier,
		Events:   publisher,
		Links:    helper.NewLinkGenerator(settings.FrontURL, settings.AdminURL),
		Log:      log,
		Now:      time.Now,
	}
	workspaces := manager.NewWorkSpaceManager(deps)
	viewings := manager.NewViewingManager(deps, manager.NewUserStatusChecker(store.Users))
	notifications := manager.NewNotificationsManager(deps)

	h := &handler.Handler{
		Locations:     manager.NewLocationsManager(deps, workspaces),
		WorkSpaces:    workspaces,
		Viewings:      viewings,
		Auth:          manager.NewAuthManager(deps),
		Notifications: notifications,
		Redis:         rdb,
		Log:           log,
	}
	if media, err := helper.InitCloudinary(settings); err != nil {
		log.WithError(err).Warn("cloudinary disabled")
	} else {
		h.Media = media
	}

	enforcer, err := middleware.NewEnforcer()
	if err != nil {
		log.WithError(err).Fatal("casbin init failed")
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: handler.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))
	router.SetupRoutes(app, h, store.Users, enforcer, log)

	if err := helper.StartReminderScheduler(log, time.Local, 8, 0, viewings.ReminderTask()); err != nil {
		log.WithError(err).Fatal("reminder scheduler failed")
	}
	defer helper.StopReminderScheduler(log)
	if err := helper.StartCleanupScheduler(log, "0 3 * * *", notifications.CleanupTask()); err != nil {
		log.WithError(err).Fatal("cleanup scheduler failed")
	}
	defer helper.StopCleanupScheduler(log)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	if err := app.Listen(":" + settings.AppPort); err != nil {
		log.WithError(err).Error("server stopped")
	}
}

func openStore(settings config.Settings, log *logrus.Logger) (*repository.Store, error) {
	if settings.Storage == "memory" {
		log.Warn("using in-memory storage, data is lost on restart")
		return repository.NewMemoryStore(), nil
	}
	db, err := database.ConnectDB(settings, log)
	if err != nil {
		return nil, err
	}
	return repository.NewGormStore(db), nil
}
