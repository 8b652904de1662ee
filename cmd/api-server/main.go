package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"libraryhub/database"
	"libraryhub/internal/config"
	"libraryhub/internal/http-api/handler"
	"libraryhub/internal/http-api/middleware"
	"libraryhub/internal/http-api/repository"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	// 1️⃣ Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 2️⃣ Connect to the database and apply migrations
	ctx := context.Background()
	pool, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer pool.Close()

	// 3️⃣ Wire repositories and handlers
	em := repository.NewEntityManager(pool)
	bookHandler := handler.NewBookHandler(repository.NewBookRepository(pool, em))
	authorHandler := handler.NewAuthorHandler(repository.NewAuthorRepository(pool, em))
	categoryHandler := handler.NewCategoryHandler(repository.NewCategoryRepository(pool, em))
	readerHandler := handler.NewReaderHandler(repository.NewReaderRepository(pool, em))
	loanHandler := handler.NewLoanHandler(repository.NewLoanRepository(pool, em))

	// 4️⃣ Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "API is alive and database connected ✅",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	bookHandler.RegisterRoutes(api.Group("/books"))
	authorHandler.RegisterRoutes(api.Group("/authors"))
	categoryHandler.RegisterRoutes(api.Group("/categories"))
	readerHandler.RegisterRoutes(api.Group("/readers"))
	loanHandler.RegisterRoutes(api.Group("/loans"))

	httpServer := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("🚀 Server running", "addr", httpServer)
	if err := r.Run(httpServer); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
