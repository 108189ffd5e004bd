package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"

	"devmatter/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError so unique-index violations surface as gorm.ErrDuplicatedKey
	// instead of driver-specific errors.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.App{},
		&db_models.SecretKey{},
		&db_models.Form{},
		&db_models.FormVersion{},
		&db_models.FormResponse{},
		&db_models.SubscriptionCycle{},
		&db_models.Month{},
		&db_models.FormResponsesUsage{},
		&db_models.Device{},
		&db_models.EmailVerificationRequest{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
