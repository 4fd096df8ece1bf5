package main

import (
	"log"
	"net/http"

	"clearplot/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"clearplot/internal/auth"
	"clearplot/internal/cache"
	"clearplot/internal/config"
	"clearplot/internal/db"
	"clearplot/internal/enhance"
	"clearplot/internal/handler"
	"clearplot/internal/model"
	"clearplot/internal/predictor"
	"clearplot/internal/repository"
	"clearplot/internal/router"
	"clearplot/internal/service"
	"clearplot/internal/upload"
)

// @title ClearPlot Listing API
// @version 1.0
// @description Real-estate listing marketplace API: property search with filters and pagination, listing submission with image upload, JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Listing{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// External collaborators
	uploader, err := upload.NewCloudinary(cfg.CloudinaryCloud, cfg.CloudinaryAPIKey, cfg.CloudinarySecret, cfg.CloudinaryFolder)
	if err != nil {
		log.Fatalf("cloudinary init: %v", err)
	}
	predictClient := predictor.New(cfg.PredictorURL)
	enhancer := enhance.New(cfg.EnhanceAPIKey, cfg.EnhanceModel)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	listingService := service.NewListingService(listingRepo, nil)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	listingHandler := handler.NewListingHandler(listingService, uploader)
	enhanceHandler := handler.NewEnhanceHandler(enhancer)
	predictHandler := handler.NewPredictHandler(predictClient)

	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		listingHandler,
		enhanceHandler,
		predictHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
