package repository

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
	CREATE TABLE IF NOT EXISTS card (
		id      SERIAL PRIMARY KEY,
		number  TEXT   NOT NULL UNIQUE,
		pin     TEXT   NOT NULL,
		balance BIGINT NOT NULL DEFAULT 0
	)
`

// EnsureSchema creates the card table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create card table: %w", err)
	}
	return nil
}
