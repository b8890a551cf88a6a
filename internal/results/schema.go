package results

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strings"
)

// schemaDDL holds the attempt log schema shared by every driver.
//
//go:embed schema.sql
var schemaDDL string

// EnsureSchema applies the schema DDL one statement at a time.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("results: db is nil")
	}
	for _, stmt := range schemaStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// schemaStatements splits the DDL on statement terminators.
func schemaStatements() []string {
	parts := strings.Split(schemaDDL, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
