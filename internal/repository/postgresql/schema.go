package postgresql

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		phone             TEXT NOT NULL,
		gender            TEXT NOT NULL CHECK (gender IN ('Male', 'Female', 'Other')),
		join_date         TEXT NOT NULL,
		work              TEXT NOT NULL,
		address           TEXT NOT NULL,
		salary            TEXT NOT NULL DEFAULT 'Not specified',
		shift             TEXT NOT NULL DEFAULT 'Not specified',
		reference         TEXT NOT NULL DEFAULT 'Not provided',
		emergency_contact TEXT NOT NULL DEFAULT 'Not provided',
		id_proof          TEXT NOT NULL DEFAULT 'Not provided',
		id_number         TEXT NOT NULL DEFAULT 'Not provided',
		notes             TEXT NOT NULL DEFAULT 'None',
		photo             TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workers_name ON workers (name)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL REFERENCES workers (id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		status     TEXT NOT NULL CHECK (status IN ('Present', 'Absent', 'Half Day', 'Leave')),
		shift_type TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_attendance_worker_date UNIQUE (worker_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	slog.Info("Running database migrations...")
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return database.StoreError("migrate schema", err)
		}
	}
	slog.Info("Database migrations completed successfully")
	return nil
}
