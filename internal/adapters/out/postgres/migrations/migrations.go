// Package migrations embeds the SQL schema of the dispatch store and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

// Notification channels raised by the schema triggers.
const (
	OrdersChangedChannel       = "orders_changed"
	DriverStatusChangedChannel = "driver_status_changed"
)

// Up applies every pending migration.
func Up(db *sql.DB) error {
	goose.SetBaseFS(files)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up error: %w", err)
	}
	return nil
}
