package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// AppConfig holds every setting the site, API, mailer and tools read from the environment.
type AppConfig struct {
	Port        string `env:"PORT" envDefault:"3000"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"bethesda_church"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"require"`
	DBPath     string `env:"DB_PATH" envDefault:"bethesda.db"`
	DBLogLevel string `env:"DB_LOG_LEVEL" envDefault:"warn"`

	SiteRoot     string `env:"SITE_ROOT" envDefault:"web"`
	SiteName     string `env:"SITE_NAME" envDefault:"Bethesda Bible Chapel"`
	SiteURL      string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	AssetVersion string `env:"ASSET_VERSION" envDefault:"1.0.0"`

	MailDriver      string        `env:"MAIL_DRIVER" envDefault:"log"`
	SMTPHost        string        `env:"SMTP_HOST"`
	SMTPPort        int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure      bool          `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUser        string        `env:"SMTP_USER"`
	SMTPPassword    string        `env:"SMTP_PASSWORD"`
	FromEmail       string        `env:"FROM_EMAIL" envDefault:"noreply@bethesdachurch.org"`
	FromName        string        `env:"FROM_NAME" envDefault:"Bethesda Church"`
	ContactEmail    string        `env:"CONTACT_EMAIL"`
	MailChannelsURL string        `env:"MAILCHANNELS_URL" envDefault:"https://api.mailchannels.net/tx/v1/send"`
	MailTimeout     time.Duration `env:"MAIL_TIMEOUT" envDefault:"30s"`

	CORSOrigins      []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	TrustedProxies   []string `env:"TRUSTED_PROXIES" envSeparator:","`
	GlobalRateLimit  int      `env:"GLOBAL_RATE_LIMIT" envDefault:"100"`
	ContactRateLimit int      `env:"CONTACT_RATE_LIMIT" envDefault:"5"`

	DevPort    int  `env:"DEV_PORT" envDefault:"8000"`
	ReloadPort int  `env:"RELOAD_PORT" envDefault:"35729"`
	LiveReload bool `env:"LIVE_RELOAD" envDefault:"true"`
}

// IsProduction reports whether error details must stay server side.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[INFO] .env file not found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running on Railway, using system environment")
	}
}

// Load reads .env (when present) and parses the environment into an AppConfig.
func Load() (*AppConfig, error) {
	LoadEnv()
	return Parse()
}

// Parse parses the current process environment without touching .env.
func Parse() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("parse env: unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.ContactEmail == "" {
		log.Println("[WARN] CONTACT_EMAIL is not set, admin notifications will be skipped")
	}
	return &cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level string) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      ParseLogLevel(level),
	}
}

// ParseLogLevel maps DB_LOG_LEVEL values onto GORM levels; unknown values mean warn.
func ParseLogLevel(level string) gormLogger.LogLevel {
	switch level {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{SlowThreshold: l.SlowThreshold, LogLevel: level}
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
