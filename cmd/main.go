package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gift-card-checker-service/internal/config"
	"gift-card-checker-service/internal/events"
	"gift-card-checker-service/internal/handlers"
	"gift-card-checker-service/internal/middleware"
	"gift-card-checker-service/internal/repository"
)

// @title Gift Card Checker API
// @version 1.0.0
// @description Gift card balance checker backend: records card submissions and reports balances
// @host localhost:8080
// @BasePath /api

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize the store adapter and run its migration step up front,
	// decoupled from request handling.
	var repo repository.SubmissionRepository
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := config.InitDB(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database:", err)
		}
		pg := repository.NewPostgresRepository(db)
		logger.Info("Running database migrations...")
		if err := pg.Migrate(); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Database migrations completed")
		repo = pg
	case config.DriverMongo:
		mdb, err := config.InitMongo(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to mongodb:", err)
		}
		mg := repository.NewMongoRepository(mdb)
		if err := mg.Migrate(context.Background()); err != nil {
			logger.WithError(err).Warn("Failed to create mongodb indexes")
		}
		repo = mg
	default:
		repo = repository.NewMemoryRepository()
		logger.Warn("Using in-memory store; submissions are lost on restart")
	}
	logger.Infof("✓ Store adapter initialized (%s)", repo.Name())

	// Initialize Redis cache (graceful degradation if unavailable)
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warnf("⚠ Failed to parse Redis URL: %v (caching disabled)", err)
		} else {
			redisClient := redis.NewClient(opt)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				logger.Warnf("⚠ Failed to connect to Redis: %v (caching disabled)", err)
			} else {
				repo = repository.NewCachedRepository(repo, redisClient, logger)
				logger.Info("✓ Redis connection established")
			}
		}
	}

	// Initialize NATS events publisher
	var publisher *events.Publisher
	if cfg.NATSURL != "" {
		p, err := events.NewPublisher(cfg.NATSURL, logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize events publisher (events won't be published)")
		} else {
			publisher = p
			defer publisher.Close()
			logger.Info("✓ NATS events publisher initialized")
		}
	}

	// Initialize handlers
	submissionHandler := handlers.NewSubmissionHandler(repo, publisher, logger, cfg.RejectDuplicates)
	healthHandler := handlers.NewHealthHandler(repo)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	handlers.RegisterRoutes(router, submissionHandler, healthHandler, cfg.AdminToken)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Infof("Gift card checker service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server:", err)
	}
}
