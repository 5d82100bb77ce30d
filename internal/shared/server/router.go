package server

import (
	"context"
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/ai"
	"travel-backend/internal/ai/gemini"
	"travel-backend/internal/analytics"
	"travel-backend/internal/contact"
	"travel-backend/internal/geo"
	"travel-backend/internal/shared/config"
	"travel-backend/internal/shared/server/middleware"
	"travel-backend/internal/shared/storage/db"
	"travel-backend/internal/trips"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			sqlDB = migrateOrClose(context.Background(), dbConn)
		}
	}

	var aiClient ai.Client
	geminiClient, err := gemini.NewClient(cfg.GeminiModel, config.ReadGeminiKey)
	if err != nil {
		log.Printf("gemini client unavailable, serving fallback only: %v", err)
	} else {
		aiClient = geminiClient
	}

	var tripsRepo trips.Repo
	if sqlDB != nil {
		tripsRepo = &trips.PGRepo{DB: sqlDB}
	} else {
		tripsRepo = trips.NewMemoryRepo()
	}
	sheet := analytics.NewSheet(cfg.AnalyticsSheetPath)
	geoClient := geo.NewClient(cfg.GeoLookupURL)
	tripsSvc := trips.NewService(aiClient, tripsRepo, sheet, geoClient)
	tripsHandler := trips.NewHandler(tripsSvc)

	var contactRepo contact.Repo
	if sqlDB != nil {
		contactRepo = &contact.PGRepo{DB: sqlDB}
	} else {
		contactRepo = contact.NewMemoryRepo()
	}
	contactHandler := contact.NewHandler(contactRepo)

	api := r.Group("/api/v1")
	tripsHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)

	return r
}

// migrateOrClose runs migrations on conn. On failure the connection is
// closed before it is discarded so the pool does not leak.
func migrateOrClose(ctx context.Context, conn *sql.DB) *sql.DB {
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		_ = conn.Close()
		return nil
	}
	return conn
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
