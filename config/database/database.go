package database

import (
	"log"

	"TodoNest/config/environment"
	"TodoNest/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

// InitDatabase opens the sqlite database and creates the tables.
// AutoMigrate is idempotent, so running it on every startup is safe.
func InitDatabase() {
	conn, err := gorm.Open(sqlite.Open(environment.GetDatabasePath()), &gorm.Config{
		// Surface unique-index violations as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := conn.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	db = conn
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatal("Database not initialized, call InitDatabase first")
	}
	return db
}
