// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	for _, dialect := range []string{DialectPostgres, DialectSQLite} {
		t.Run(dialect, func(t *testing.T) {
			db, _, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer db.Close()

			// no expectations: goose's first query fails
			err = Migrate(db, dialect)
			if err == nil {
				t.Fatal("expected error from Migrate, got nil")
			}

			if !strings.Contains(err.Error(), "migration error") {
				t.Errorf("expected wrapped migration error, got: %v", err)
			}
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "mysql")
	if !errors.Is(err, ErrUnsupportedDialect) {
		t.Errorf("expected ErrUnsupportedDialect, got: %v", err)
	}
}

func TestEmbeddedMigrations_SameVersionsPerDialect(t *testing.T) {
	pg, err := fs.ReadDir(embedMigrations, "postgres")
	if err != nil {
		t.Fatalf("reading postgres migrations: %v", err)
	}
	lite, err := fs.ReadDir(embedMigrations, "sqlite")
	if err != nil {
		t.Fatalf("reading sqlite migrations: %v", err)
	}

	if len(pg) == 0 || len(pg) != len(lite) {
		t.Fatalf("expected the same non-zero number of migrations, got postgres=%d sqlite=%d", len(pg), len(lite))
	}
	for i := range pg {
		if pg[i].Name() != lite[i].Name() {
			t.Errorf("migration %d differs: postgres=%s sqlite=%s", i, pg[i].Name(), lite[i].Name())
		}
	}
}

func TestEmbeddedMigrations_QuizCheckConstraint(t *testing.T) {
	for dir, fn := range map[string]string{"postgres": "jsonb_array_length", "sqlite": "json_array_length"} {
		body, err := fs.ReadFile(embedMigrations, dir+"/00002_create_quizzes.sql")
		if err != nil {
			t.Fatalf("reading %s quizzes migration: %v", dir, err)
		}
		if !strings.Contains(string(body), "correct_option_index < "+fn+"(options)") {
			t.Errorf("%s quizzes migration has no correct_option_index range check", dir)
		}
	}
}
