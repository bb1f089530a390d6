package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitenav/content"
	"github.com/goliatone/go-sitenav/pages"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the configured database and wraps it in a bun.DB with the
// matching dialect. Supported drivers are sqlite/sqlite3 and postgres/pg.
func Open(driver, dsn string) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		sqlDB, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres", "pg":
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres database: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", driver)
	}
}

// Migrate creates the navigation and content tables when they do not exist.
// Schema evolution beyond that belongs to the host application.
func Migrate(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*pages.PageNode)(nil),
		(*content.StaticRecord)(nil),
		(*content.NewsRecord)(nil),
		(*content.GalleryRecord)(nil),
		(*content.DocumentRecord)(nil),
		(*content.LeaderRecord)(nil),
		(*content.CommunicationRecord)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
