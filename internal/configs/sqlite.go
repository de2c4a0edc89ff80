package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flowdesk/flowdesk/internal/models"
)

// New opens the database and derives the schema from the entity
// definitions. There is no migration history.
func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
