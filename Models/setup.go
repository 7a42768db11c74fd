package Models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDataBase() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using defaults")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "dentistry_clinic.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("connection error:", err)
	}

	// Patients first, appointments reference them
	if err := DB.AutoMigrate(&Patient{}); err != nil {
		log.Fatal("migration error:", err)
	}
	if err := DB.AutoMigrate(&Appointment{}); err != nil {
		log.Fatal("migration error:", err)
	}
}
