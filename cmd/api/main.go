package main

import (
	"context"
	"os"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/media"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/tagging"
	"backend/internal/websocket"
	"backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// @title           Elegant Leather Back-Office API
// @version         1.0
// @description     REST API for the leather-goods catalog, marketing content and internal production workflow.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info().Msg("no configs/.env file found, using process environment")
	}

	logger.Init(env("APP_ENV", "development"), env("LOG_LEVEL", "info"))

	dsn := "postgres://" + env("DB_USER", "postgres") + ":" + env("DB_PASSWORD", "postgres") +
		"@" + env("DB_HOST", "localhost") + ":" + env("DB_PORT", "5432") +
		"/" + env("DB_NAME", "postgres") + "?sslmode=" + env("DB_SSLMODE", "disable")

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to PostgreSQL")

	if err := database.SeedSuperAdmin(db); err != nil {
		log.Warn().Err(err).Msg("super admin seeding failed")
	}

	mediaStore, err := media.NewCloudinaryStore(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		env("CLOUDINARY_FOLDER", "elegant-leather"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cloudinary init failed")
	}

	var tagger tagging.Tagger
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := tagging.NewGeminiTagger(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Warn().Err(err).Msg("gemini init failed, using fallback tagger")
			tagger = tagging.NewFallbackTagger()
		} else {
			defer gemini.Close()
			tagger = gemini
		}
	} else {
		tagger = tagging.NewFallbackTagger()
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	logService := service.NewLogService(repository.NewLogRepository(db))
	leatherService := service.NewLeatherService(repository.NewLeatherRepository(db), mediaStore, logService)
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(db), mediaStore, logService)
	testimonialService := service.NewTestimonialService(repository.NewTestimonialRepository(db), mediaStore, logService)
	teamService := service.NewTeamService(repository.NewTeamRepository(db), mediaStore, logService)
	contactService := service.NewContactService(repository.NewContactRepository(db), logService)
	departmentService := service.NewDepartmentService(repository.NewDepartmentRepository(db), logService)
	orderService := service.NewOrderService(repository.NewOrderRepository(db), wsHub, logService)
	stockService := service.NewStockService(repository.NewStockRepository(db), logService)
	userService := service.NewUserService(repository.NewUserRepository(db), logService, middleware.GetJWTSecret())
	documentService := service.NewDocumentService(repository.NewDocumentRepository(db), mediaStore, tagger, logService)
	adminService := service.NewAdminService(leatherService, categoryService, testimonialService, teamService, contactService, userService)

	// Initialize Handlers
	handlers := []interface {
		RegisterRoutes(router *gin.RouterGroup)
	}{
		handler.NewLeatherHandler(leatherService),
		handler.NewCategoryHandler(categoryService),
		handler.NewTestimonialHandler(testimonialService),
		handler.NewTeamHandler(teamService),
		handler.NewContactHandler(contactService),
		handler.NewDepartmentHandler(departmentService),
		handler.NewOrderHandler(orderService),
		handler.NewStockHandler(stockService),
		handler.NewUserHandler(userService),
		handler.NewDocumentHandler(documentService),
		handler.NewAdminHandler(adminService, logService),
	}

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		env("FRONTEND_URL", "http://localhost:5173"),
		"http://127.0.0.1:5173",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	for _, h := range handlers {
		h.RegisterRoutes(router.Group(""))
	}

	port := env("PORT", "8080")
	log.Info().Str("port", port).Msg("server listening")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
