package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const memoryDBPath = ":memory:"

var (
	ErrEmptyDBPath      = errors.New("database path is required")
	ErrInvalidLogLevel  = errors.New("database log level must be one of silent, error, warn, info")
	defaultBusyTimeout  = 5 * time.Second
	defaultSlowQueryLog = time.Second
)

// SQLiteOptions tunes how the store is opened. Zero fields take the defaults
// used by OpenSQLite.
type SQLiteOptions struct {
	LogLevel      gormlogger.LogLevel
	SlowThreshold time.Duration
	BusyTimeout   time.Duration
}

func (options SQLiteOptions) withDefaults() SQLiteOptions {
	if options.LogLevel == 0 {
		options.LogLevel = gormlogger.Warn
	}
	if options.SlowThreshold <= 0 {
		options.SlowThreshold = defaultSlowQueryLog
	}
	if options.BusyTimeout <= 0 {
		options.BusyTimeout = defaultBusyTimeout
	}
	return options
}

// ParseLogLevel maps a DB_LOG_LEVEL value to the gorm logger level. An empty
// value means warn.
func ParseLogLevel(raw string) (gormlogger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "warn", "warning":
		return gormlogger.Warn, nil
	case "silent":
		return gormlogger.Silent, nil
	case "error":
		return gormlogger.Error, nil
	case "info":
		return gormlogger.Info, nil
	default:
		return 0, fmt.Errorf("%w, got %q", ErrInvalidLogLevel, raw)
	}
}

// OpenSQLite opens the store at dbPath with default options and brings its
// schema up to date.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	return OpenSQLiteWithOptions(dbPath, SQLiteOptions{})
}

func OpenSQLiteWithOptions(dbPath string, options SQLiteOptions) (*gorm.DB, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, ErrEmptyDBPath
	}
	options = options.withDefaults()

	if dbPath != memoryDBPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	database, err := gorm.Open(sqlite.Open(sqliteDSN(dbPath, options.BusyTimeout)), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             options.SlowThreshold,
				LogLevel:                  options.LogLevel,
				IgnoreRecordNotFoundError: true,
				Colorful:                  options.LogLevel == gormlogger.Info,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if dbPath == memoryDBPath {
		// Each pooled connection would get its own empty in-memory database.
		sqlDB, err := database.DB()
		if err != nil {
			return nil, fmt.Errorf("open sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

func sqliteDSN(dbPath string, busyTimeout time.Duration) string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", dbPath, busyTimeout.Milliseconds())
}
