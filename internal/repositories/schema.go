package repositories

import (
	"context"
	"fmt"
)

// Channel names for the per-table change feed. A statement-level trigger
// fires pg_notify on every mutation; listeners re-fetch the collection.
const (
	UsersChannel    = "users_changes"
	VehiclesChannel = "vehicles_changes"
	SpacesChannel   = "parking_spaces_changes"
	PaymentsChannel = "payments_changes"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		plate TEXT NOT NULL,
		type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS parking_spaces (
		id UUID PRIMARY KEY,
		number TEXT NOT NULL,
		type TEXT NOT NULL,
		is_occupied BOOLEAN NOT NULL DEFAULT FALSE,
		user_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
		date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS vehicles_user_id_idx ON vehicles (user_id);`,
	`CREATE INDEX IF NOT EXISTS parking_spaces_user_id_idx ON parking_spaces (user_id);`,
	`CREATE INDEX IF NOT EXISTS payments_user_id_idx ON payments (user_id);`,
	`CREATE INDEX IF NOT EXISTS payments_status_idx ON payments (status);`,
	`CREATE OR REPLACE FUNCTION notify_table_change() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify(TG_TABLE_NAME || '_changes', TG_OP);
		RETURN NULL;
	END;
	$$ LANGUAGE plpgsql;`,
	`DROP TRIGGER IF EXISTS users_notify ON users;`,
	`CREATE TRIGGER users_notify AFTER INSERT OR UPDATE OR DELETE ON users
	FOR EACH STATEMENT EXECUTE FUNCTION notify_table_change();`,
	`DROP TRIGGER IF EXISTS vehicles_notify ON vehicles;`,
	`CREATE TRIGGER vehicles_notify AFTER INSERT OR UPDATE OR DELETE ON vehicles
	FOR EACH STATEMENT EXECUTE FUNCTION notify_table_change();`,
	`DROP TRIGGER IF EXISTS parking_spaces_notify ON parking_spaces;`,
	`CREATE TRIGGER parking_spaces_notify AFTER INSERT OR UPDATE OR DELETE ON parking_spaces
	FOR EACH STATEMENT EXECUTE FUNCTION notify_table_change();`,
	`DROP TRIGGER IF EXISTS payments_notify ON payments;`,
	`CREATE TRIGGER payments_notify AFTER INSERT OR UPDATE OR DELETE ON payments
	FOR EACH STATEMENT EXECUTE FUNCTION notify_table_change();`,
}

// Bootstrap creates the schema and the change-feed triggers. All
// statements are idempotent so startup can run it unconditionally.
func Bootstrap(ctx context.Context, db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
