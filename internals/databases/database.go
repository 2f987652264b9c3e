package database

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"bethesda_backend/internals/configs"
	contactModel "bethesda_backend/internals/features/contact/model"
	eventModel "bethesda_backend/internals/features/events/model"
	ministryModel "bethesda_backend/internals/features/ministries/model"
	sermonModel "bethesda_backend/internals/features/sermons/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the configured database.
func ConnectDB(cfg *configs.AppConfig) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: configs.NewGormLogger(cfg.DBLogLevel)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		log.Printf("[INFO] Connecting to SQLite at %s...", cfg.DBPath)
		db, err = gorm.Open(sqlite.Open(SQLiteDSN(cfg.DBPath)), gcfg)
	default:
		log.Println("[INFO] Connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  PostgresDSN(cfg),
			PreferSimpleProtocol: true, // works behind PgBouncer transaction pooling
		}), gcfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	log.Println("[INFO] DB connected.")
	return db, nil
}

// PostgresDSN builds the connection URL, with a 3s statement timeout matching the HTTP guard.
func PostgresDSN(cfg *configs.AppConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:   cfg.DBHost + ":" + cfg.DBPort,
		Path:   "/" + cfg.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.DBSSLMode)
	q.Set("application_name", "bethesda")
	q.Set("options", "-c statement_timeout=3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[ERROR] pool tune: %v", err)
		return
	}
	if db.Dialector.Name() == "sqlite" {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := NewAdapter(db).Ping(); err != nil {
			log.Printf("[ERROR] warm-up ping: %v", err)
		}
	}()
}

// Migrate creates or updates every table the site reads or writes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&sermonModel.SermonModel{},
		&eventModel.EventModel{},
		&ministryModel.MinistryModel{},
		&contactModel.ContactSubmissionModel{},
		&contactModel.NewsletterSubscriberModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
