package main

import (
	"os"

	"github.com/inkpress-dev/inkpress/db"
	"github.com/inkpress-dev/inkpress/internal/auth"
	"github.com/inkpress-dev/inkpress/internal/router"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	var err error

	if err = godotenv.Load(); err != nil {
		log.Printf(".env file not loaded: %v", err)
	}

	if err = auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	var dsn string

	if dsn = os.Getenv("DATABASE_URL"); dsn == "" {
		if dsn = os.Getenv("BLOG_DB_PATH"); dsn == "" {
			dsn = "blog.db"
		}
		log.Printf("DATABASE_URL not set, using SQLite store at %s", dsn)
	}

	if err = db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err = r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
