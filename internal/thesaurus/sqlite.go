package thesaurus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"plagcheck/internal/services"
)

// schemaVersion is the current thesaurus database version. Bump this when the
// schema changes; databases built with another version must be rebuilt.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

const schemaSQL = `
CREATE TABLE schema_version (version INTEGER NOT NULL);
CREATE TABLE synonyms (
    term    TEXT NOT NULL,
    synonym TEXT NOT NULL,
    PRIMARY KEY (term, synonym)
) WITHOUT ROWID;
`

// WriteSQLite builds a thesaurus database at path from table. An existing file
// is replaced only when overwrite is set.
func WriteSQLite(ctx context.Context, path string, table *Table, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return services.Wrap(services.ErrValidation, "thesaurus", "write sqlite",
				fmt.Sprintf("%s already exists (use overwrite to replace it)", path), nil)
		}
		if err := os.Remove(path); err != nil {
			return services.Wrap(services.ErrIO, "thesaurus", "remove existing database", path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return services.Wrap(services.ErrIO, "thesaurus", "open sqlite db", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin thesaurus tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create thesaurus schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO synonyms (term, synonym) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare synonym insert: %w", err)
	}
	defer stmt.Close()

	for _, pair := range table.Pairs() {
		if _, err := stmt.ExecContext(ctx, pair[0], pair[1]); err != nil {
			return fmt.Errorf("insert synonym %q -> %q: %w", pair[0], pair[1], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit thesaurus: %w", err)
	}
	return nil
}

// LoadSQLite reads a database written by WriteSQLite into an immutable table.
func LoadSQLite(ctx context.Context, path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "thesaurus", "stat sqlite db", path, err)
	}
	if info.IsDir() {
		return nil, services.Wrap(services.ErrConfiguration, "thesaurus", "open sqlite db",
			fmt.Sprintf("%s is a directory", path), nil)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, services.Wrap(services.ErrIO, "thesaurus", "open sqlite db", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, fmt.Errorf("apply pragma query_only: %w", err)
	}

	var version int
	if err := db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "thesaurus", "read schema version", path, err)
	}
	if version != schemaVersion {
		return nil, fmt.Errorf("%w: %s has version %d, expected %d (rebuild it with 'plagcheck thesaurus build')",
			ErrSchemaMismatch, path, version, schemaVersion)
	}

	rows, err := db.QueryContext(ctx, "SELECT term, synonym FROM synonyms ORDER BY term, synonym")
	if err != nil {
		return nil, fmt.Errorf("query synonyms: %w", err)
	}
	defer rows.Close()

	entries := make(map[string][]string)
	for rows.Next() {
		var term, syn string
		if err := rows.Scan(&term, &syn); err != nil {
			return nil, fmt.Errorf("scan synonym row: %w", err)
		}
		entries[term] = append(entries[term], syn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate synonyms: %w", err)
	}
	return NewTableFromEntries(entries), nil
}
