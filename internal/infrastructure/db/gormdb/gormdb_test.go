package gormdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var discardLogger = zerolog.Nop()

// newTestDB opens a throwaway in-memory database with the full schema
// applied. Each test gets its own named database so parallel tests never
// share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := EnsureSchema(context.Background(), db, discardLogger); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}
