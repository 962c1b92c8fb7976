package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gangasingh/uniconnect-backend/models"
)

var DB *gorm.DB

// adminEmails is the set of addresses granted the admin role at
// registration, loaded once at startup from ADMIN_EMAILS (comma separated).
var adminEmails = map[string]bool{}

func InitDB() {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}

	DB = db

	// Grab *sql.DB to configure connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("could not get sql.DB from gorm:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(DB); err != nil {
		log.Fatal("autoMigrate failed: ", err)
	}
	log.Println("postgreSQL connected & migrated successfully!")
}

// Migrate runs AutoMigrate for every model; also used by tests against an
// in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Subject{},
		&models.Resource{},
	)
}

// LoadAdminEmails reads ADMIN_EMAILS into the process-wide admin set.
// Called once from main; read-only afterwards.
func LoadAdminEmails() {
	adminEmails = map[string]bool{}
	for _, email := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			adminEmails[email] = true
		}
	}
	if len(adminEmails) == 0 {
		log.Println("ADMIN_EMAILS is empty, no account will be registered as admin")
	}
}

func IsAdminEmail(email string) bool {
	return adminEmails[strings.ToLower(strings.TrimSpace(email))]
}
