package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"learnhub/config"
	"learnhub/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// Config returns a configuration suitable for tests: SQLite, cheap bcrypt, short pages.
func Config() *config.Config {
	return &config.Config{
		Port:             "0",
		AppEnv:           "test",
		DBDriver:         "sqlite",
		JWTKey:           "test-secret",
		AccessTokenTTL:   time.Hour,
		SaltRound:        4,
		CORSOrigins:      "*",
		DefaultPageLimit: 100,
		MaxPageLimit:     1000,
	}
}

// DB opens a private in-memory SQLite database with foreign keys on and all tables migrated.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(dsn)), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}
