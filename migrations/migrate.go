// Package migrations embeds the goose SQL migrations of go-quiz, one
// directory per supported SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialects understood by Migrate. They match the storage driver names of
// the configuration.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDialect is returned for a dialect with no migrations.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// gooseDialects maps a dialect to the goose dialect name and the embedded
// directory holding its migrations.
var gooseDialects = map[string]struct {
	goose string
	dir   string
}{
	DialectPostgres: {goose: "pgx", dir: "postgres"},
	DialectSQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
