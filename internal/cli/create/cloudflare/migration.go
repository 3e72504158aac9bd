package cloudflare

import (
	"context"
	"database/sql"

	"github.com/pixie-sh/errors-go"
	_ "modernc.org/sqlite"
)

// ValidateMigration executes a D1 migration against an empty in-memory SQLite
// database. D1 speaks the SQLite dialect, so a migration that fails here would
// also fail on `wrangler d1 migrations apply`.
func ValidateMigration(ctx context.Context, migration string) error {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return errors.Wrap(err, "failed to open sqlite")
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, migration); err != nil {
		return errors.Wrap(err, "migration does not apply cleanly")
	}
	return nil
}
