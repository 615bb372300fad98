package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nasarali03/Portfolio/internal/config"
	"github.com/nasarali03/Portfolio/internal/database"
	"github.com/nasarali03/Portfolio/internal/database/minio"
	"github.com/nasarali03/Portfolio/internal/database/redis"
	"github.com/nasarali03/Portfolio/internal/event"
	"github.com/nasarali03/Portfolio/internal/handlers"
	"github.com/nasarali03/Portfolio/internal/middleware"
	"github.com/nasarali03/Portfolio/internal/repository"
	"github.com/nasarali03/Portfolio/internal/service"
	"github.com/nasarali03/Portfolio/pkg/discovery"
	"github.com/nasarali03/Portfolio/pkg/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/joho/godotenv"
)

// cacheBackend is the page cache plus the admin session store.
type cacheBackend interface {
	handlers.PageCache
	service.Invalidator
	service.SessionStore
}

func setupLogging(logDir string) (*os.File, error) {
	if logDir == "" {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		return nil, nil
	}

	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logFile, err := setupLogging(cfg.Server.LogDir)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()

	store, closeStore, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer closeStore()

	var cache cacheBackend
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: %v; using in-process page cache and sessions", err)
		cache = repository.NewMemoryCache(cfg.Redis.PageTTL)
	} else {
		defer redisClient.Close()
		cache = repository.NewRedisRepo(redisClient, cfg.Redis.PageTTL)
	}

	var storage service.ObjectStorage
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := minio.NewClient(&cfg.MinIO)
		if err != nil {
			log.Printf("Warning: Resume uploads disabled: %v", err)
		} else {
			storage = repository.NewResumeRepository(minioClient, cfg.MinIO.ResumeBucket, cfg.MinIO.PublicURL)
		}
	}

	eventPublisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Printf("Warning: Failed to initialize event publisher: %v", err)
		eventPublisher, _ = event.NewEventPublisher("", cfg.RabbitMQ.Exchange)
	}

	eventConsumer, err := event.NewEventConsumer(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.QueuePrefix, cache)
	if err != nil {
		log.Printf("Warning: Failed to initialize event consumer: %v", err)
	} else if err := eventConsumer.Start(); err != nil {
		log.Printf("Warning: Failed to start event consumer: %v", err)
		eventConsumer.Close()
		eventConsumer = nil
	}

	schemas, err := utils.NewSchemaValidator()
	if err != nil {
		log.Fatalf("Failed to load form schemas: %v", err)
	}

	images := service.NewImagePolicy(service.ImagePolicyConfig{
		PlaceholderBaseURL: cfg.Images.PlaceholderBaseURL,
		PlaceholderHost:    cfg.Images.PlaceholderHost,
		ProfileFallback:    cfg.Images.ProfileFallback,
	})
	contentService := service.NewContentService(store, images, cache, eventPublisher)
	portfolioService := service.NewPortfolioService(store, images)
	dashboardService := service.NewDashboardService(store, images)
	contactService := service.NewContactService(store, contentService, eventPublisher)
	resumeService := service.NewResumeService(storage, contentService)
	summaryService := service.NewSummaryService(cfg.LLM)
	if !summaryService.Enabled() {
		log.Println("LLM_BASE_URL not set, project summary generation is disabled")
	}

	authService, err := service.NewAuthService(cfg.Admin, cache)
	if err != nil {
		log.Fatalf("Failed to initialize admin auth: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Server.ServiceName,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.MinIO.MaxResumeSize) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${respHeader:X-Request-ID} ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: !containsWildcard(cfg.Server.AllowOrigins),
	}))

	handlers.NewHealthHandler(store).RegisterRoutes(app)
	handlers.NewAuthHandler(authService, cfg.Admin.CookieSecure).RegisterRoutes(app)
	handlers.NewPublicHandler(portfolioService, contactService, cache, schemas).RegisterRoutes(app)
	handlers.NewAdminHandler(contentService, dashboardService, resumeService, summaryService, contactService, schemas, handlers.AdminHandlerConfig{
		MaxImageSize:  cfg.Images.MaxUploadBytes,
		MaxResumeSize: cfg.MinIO.MaxResumeSize,
	}).RegisterRoutes(app, middleware.AdminRequired(authService))

	var registry *discovery.ServiceRegistry
	if cfg.Consul.ConsulAddress != "" {
		registry, err = discovery.NewServiceRegistry(cfg.Consul.ConsulAddress, cfg.Server.ServiceName,
			cfg.Server.ServiceID, cfg.Server.ServiceAddress, cfg.Server.Port)
		if err != nil {
			log.Printf("Warning: Failed to create service registry: %v", err)
		} else if err := registry.Register(); err != nil {
			log.Printf("Warning: Failed to register with Consul: %v", err)
			registry = nil
		}
	}

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s with %s store", cfg.Server.Port, store.Name())
		if err := app.Listen(fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	if err := eventPublisher.Close(); err != nil {
		log.Printf("Error closing event publisher: %v", err)
	}

	if eventConsumer != nil {
		if err := eventConsumer.Close(); err != nil {
			log.Printf("Error closing event consumer: %v", err)
		}
	}

	if registry != nil {
		if err := registry.Deregister(); err != nil {
			log.Printf("Error deregistering from service discovery: %v", err)
		}
	}

	<-doneChan
	log.Println("Server shutdown complete")
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
