package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Vorongor/users-api/internal/models"
)

// Init opens the Postgres connection and migrates the schema. The unique
// index on users.email is a hard precondition: it is what closes the
// register existence-check/insert race, the handler only maps the
// resulting duplicate-key error to a conflict.
func Init(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DATABASE_DSN required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect db:", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("auto migrate failed:", err)
	}
	return db
}
