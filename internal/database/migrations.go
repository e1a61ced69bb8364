package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered list of schema migrations. The list is built
// into the binary so the server needs no external migration files.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				username      TEXT NOT NULL UNIQUE,
				email         TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				bio           TEXT NOT NULL DEFAULT '',
				avatar_url    TEXT NOT NULL DEFAULT '',
				created_at    TIMESTAMP NOT NULL,
				updated_at    TIMESTAMP NOT NULL
			);

			CREATE TABLE IF NOT EXISTS locations (
				id           INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id      INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name         TEXT NOT NULL,
				description  TEXT NOT NULL DEFAULT '',
				category     TEXT NOT NULL,
				latitude     REAL NOT NULL,
				longitude    REAL NOT NULL,
				avg_rating   REAL NOT NULL DEFAULT 0,
				review_count INTEGER NOT NULL DEFAULT 0,
				created_at   TIMESTAMP NOT NULL,
				updated_at   TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_locations_coords ON locations(latitude, longitude);
			CREATE INDEX IF NOT EXISTS idx_locations_category ON locations(category);
			CREATE INDEX IF NOT EXISTS idx_locations_user ON locations(user_id);

			CREATE TABLE IF NOT EXISTS reviews (
				id          INTEGER PRIMARY KEY AUTOINCREMENT,
				location_id INTEGER NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
				user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				rating      INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
				comment     TEXT NOT NULL DEFAULT '',
				created_at  TIMESTAMP NOT NULL,
				updated_at  TIMESTAMP NOT NULL,
				UNIQUE (location_id, user_id)
			);
			CREATE INDEX IF NOT EXISTS idx_reviews_location ON reviews(location_id);

			CREATE TABLE IF NOT EXISTS messages (
				id          INTEGER PRIMARY KEY AUTOINCREMENT,
				sender_id   INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				receiver_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				body        TEXT NOT NULL,
				read_at     TIMESTAMP,
				created_at  TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender_id, receiver_id, created_at);

			CREATE TABLE IF NOT EXISTS follows (
				follower_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				followee_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				created_at  TIMESTAMP NOT NULL,
				PRIMARY KEY (follower_id, followee_id)
			);
			CREATE INDEX IF NOT EXISTS idx_follows_followee ON follows(followee_id);

			CREATE TABLE IF NOT EXISTS notifications (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				type       TEXT NOT NULL,
				actor_id   INTEGER NOT NULL,
				subject_id INTEGER NOT NULL DEFAULT 0,
				body       TEXT NOT NULL,
				read_at    TIMESTAMP,
				created_at TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, read_at);
		`,
	},
}

// RunMigrations applies all pending migrations in order
func RunMigrations(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// applyMigration runs one migration inside a transaction
func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
