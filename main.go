package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rifnaz/WLL-Product-App/cart"
	"github.com/Rifnaz/WLL-Product-App/catalog"
	"github.com/Rifnaz/WLL-Product-App/logger"
	"github.com/Rifnaz/WLL-Product-App/middleware"
	"github.com/Rifnaz/WLL-Product-App/models"
	"github.com/Rifnaz/WLL-Product-App/routes"
)

const defaultCatalogURL = "https://dummyjson.com"

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log := logger.New(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	defer log.Sync()

	log.Info("✅ Starting application...")

	// Init DB
	db := initDatabase(log)

	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		log.Fatal("❌ AutoMigrate failed", zap.Error(err))
	}

	// Catalog + cart wiring
	client := catalog.NewClient(catalogBaseURL(), catalogTimeout(), log)
	querier := catalog.NewQuerier(client)
	store := cart.NewStore(db)
	aggregator := cart.NewAggregator(querier, store)

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, client, querier, store, aggregator, log)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("🚀 Server running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection: postgres when configured,
// otherwise a local sqlite file (in-memory by default, matching the
// original's in-memory store).
func initDatabase(log *zap.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatal("❌ DB connection failed", zap.Error(err))
		}
		return db
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("❌ Failed to connect DB", zap.Error(err))
		}
		return db
	}

	path := os.Getenv("CART_DB_PATH")
	if path == "" {
		// cache=shared keeps the in-memory DB alive across pooled connections
		path = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to open sqlite DB", zap.Error(err))
	}
	return db
}

func catalogBaseURL() string {
	if u := os.Getenv("CATALOG_API_URL"); u != "" {
		return u
	}
	return defaultCatalogURL
}

// catalogTimeout bounds every upstream call so a slow catalog cannot hold
// requests open indefinitely.
func catalogTimeout() time.Duration {
	if s := os.Getenv("CATALOG_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return 10 * time.Second
}
