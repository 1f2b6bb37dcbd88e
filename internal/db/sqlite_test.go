package db

import (
	"errors"
	"testing"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

func TestOpenSQLiteRejectsEmptyPath(t *testing.T) {
	for _, path := range []string{"", "   "} {
		if _, err := OpenSQLite(path); !errors.Is(err, ErrEmptyDBPath) {
			t.Fatalf("OpenSQLite(%q): expected ErrEmptyDBPath, got %v", path, err)
		}
	}
}

func TestOpenSQLiteWithOptionsInMemory(t *testing.T) {
	database, err := OpenSQLiteWithOptions(memoryDBPath, SQLiteOptions{LogLevel: gormlogger.Silent})
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if !database.Migrator().HasTable("users") {
		t.Fatal("expected migrations to run against the in-memory database")
	}
	var foreignKeys int
	if err := database.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error; err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if foreignKeys != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", foreignKeys)
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]gormlogger.LogLevel{
		"":        gormlogger.Warn,
		"warn":    gormlogger.Warn,
		" INFO ":  gormlogger.Info,
		"error":   gormlogger.Error,
		"silent":  gormlogger.Silent,
		"warning": gormlogger.Warn,
	}
	for raw, want := range testCases {
		got, err := ParseLogLevel(raw)
		if err != nil {
			t.Fatalf("ParseLogLevel(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", raw, got, want)
		}
	}

	if _, err := ParseLogLevel("verbose"); !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestSQLiteOptionsDefaults(t *testing.T) {
	options := SQLiteOptions{}.withDefaults()
	if options.LogLevel != gormlogger.Warn || options.SlowThreshold != time.Second || options.BusyTimeout != 5*time.Second {
		t.Fatalf("unexpected defaults: %+v", options)
	}
	if got := sqliteDSN("data/x.db", options.BusyTimeout); got != "data/x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Fatalf("unexpected dsn %q", got)
	}
}
