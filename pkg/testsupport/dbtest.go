package testsupport

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-sitenav/internal/storage"
)

// NewBunSQLite opens a throwaway in-memory SQLite database, applies the module
// schema and registers cleanup with the test. The database name is derived from
// the test name so tests never see each other's rows.
func NewBunSQLite(tb testing.TB) *bun.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	sqlDB, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if err := storage.Migrate(context.Background(), db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	tb.Cleanup(func() {
		if err := db.Close(); err != nil {
			tb.Logf("close sqlite: %v", err)
		}
	})
	return db
}
