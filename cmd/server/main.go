package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nearmarket/internal/config"
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"
	"nearmarket/internal/repositories/mongodb"
	"nearmarket/internal/scheduler"
	"nearmarket/internal/services"
	"nearmarket/internal/utils"
	"nearmarket/pkg/cache"
	"nearmarket/pkg/database"
	"nearmarket/pkg/logger"
	"nearmarket/pkg/payment"
	"nearmarket/pkg/push"
	"nearmarket/pkg/storage"
	"nearmarket/pkg/websocket"
	"nearmarket/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.App.LogLevel),
		Format:     "json",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// Cache: optional, discovery falls back to the database on miss
	var cacheService services.CacheService = services.NewNoopCache()
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, running without cache")
		} else {
			defer redisCache.Close()
			cacheService = redisCache
		}
	}

	// File storage
	var storageProvider storage.StorageProvider
	switch cfg.Storage.Provider {
	case "s3":
		storageProvider, err = storage.NewAWSS3Storage(cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.CDNDomain)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize S3 storage")
		}
	default:
		storageProvider, err = storage.NewLocalStorage(cfg.Storage.Local.BasePath, cfg.Storage.Local.BaseURL)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize local storage")
		}
	}

	// Push delivery
	var pushProvider push.PushProvider = push.NewNoopProvider()
	if cfg.Push.Enabled {
		fcm, err := push.NewFCMProvider(cfg.Push.FCM.Credentials)
		if err != nil {
			appLogger.WithError(err).Warn("FCM unavailable, push delivery disabled")
		} else {
			pushProvider = fcm
		}
	}

	paymentProvider := payment.NewStripeProvider(cfg.Payment.Stripe.SecretKey)

	// Repositories
	businessRepo := mongodb.NewBusinessRepository(db.Database)
	productRepo := mongodb.NewProductRepository(db.Database)
	classifiedRepo := mongodb.NewClassifiedRepository(db.Database)
	adRepo := mongodb.NewAdvertisementRepository(db.Database)
	adPlanRepo := mongodb.NewAdPlanRepository(db.Database)
	categoryRepo := mongodb.NewCategoryRepository(db.Database)
	searchTermRepo := mongodb.NewSearchTermRepository(db.Database)
	userRepo := mongodb.NewUserRepository(db.Database)
	notificationRepo := mongodb.NewNotificationRepository(db.Database)
	chatRepo := mongodb.NewChatRepository(db.Database)

	// Services
	clock := scheduler.NewRealClock()
	notificationService := services.NewNotificationService(notificationRepo, userRepo, pushProvider, appLogger)
	discoveryService := services.NewDiscoveryService(businessRepo, productRepo, classifiedRepo, adRepo, categoryRepo, searchTermRepo, cacheService, appLogger)
	businessService := services.NewBusinessService(businessRepo, productRepo, categoryRepo, appLogger)
	productService := services.NewProductService(productRepo, businessRepo, categoryRepo, appLogger)
	classifiedService := services.NewClassifiedService(classifiedRepo, storageProvider, clock, appLogger)
	adService := services.NewAdvertisementService(adRepo, adPlanRepo, businessRepo, notificationService, paymentProvider, clock, appLogger)
	categoryService := services.NewCategoryService(categoryRepo)
	chatService := services.NewChatService(chatRepo, appLogger)

	wsHandler := websocket.NewHandler(ctx, chatService.HandleMessage)

	// Background sweeps
	scheduler.NewSweeper("ad-expiry", utils.AdExpirySweepInterval, clock, adService.ExpireDue, appLogger).Start(ctx)
	scheduler.NewSweeper("classified-cleanup", utils.ClassifiedCleanupInterval, clock, classifiedService.CleanupExpired, appLogger).Start(ctx)

	// Handlers
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, appLogger)
	businessHandler := handlers.NewBusinessHandler(businessService, appLogger)
	productHandler := handlers.NewProductHandler(productService, appLogger)
	classifiedHandler := handlers.NewClassifiedHandler(classifiedService, appLogger)
	adHandler := handlers.NewAdvertisementHandler(adService, businessService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, appLogger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, userRepo, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, wsHandler, appLogger)
	uploadHandler := handlers.NewUploadHandler(storageProvider, appLogger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			appLogger.WithError(err).Fatal("Invalid trusted proxies")
		}
	}

	jwtSecret := cfg.Security.JWTSecret

	v1 := router.Group("/api/v1")
	{
		routes.SetupDiscoveryRoutes(v1, discoveryHandler, jwtSecret)
		routes.SetupCategoryRoutes(v1, categoryHandler, jwtSecret)
		routes.SetupBusinessRoutes(v1, businessHandler, jwtSecret)
		routes.SetupProductRoutes(v1, productHandler, jwtSecret)
		routes.SetupClassifiedRoutes(v1, classifiedHandler, jwtSecret)
		routes.SetupAdvertisementRoutes(v1, adHandler, jwtSecret)
		routes.SetupNotificationRoutes(v1, notificationHandler, jwtSecret)
		routes.SetupChatRoutes(v1, chatHandler, jwtSecret)
		routes.SetupUploadRoutes(v1, uploadHandler, jwtSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		pingCtx, pingCancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer pingCancel()
		if err := db.Ping(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithField("port", cfg.App.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}
}
