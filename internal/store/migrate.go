package store

// Schema version tracking.
//
// ent's auto-migration handles table and index DDL, but it cannot express
// data migrations (backfills, value rewrites). Those are applied here as
// numbered steps against a schema_migrations table kept with raw SQL
// beside ent.

import (
	"database/sql"
	"fmt"
)

// schemaVersion is the version the current binary expects. Bump it when
// adding a migration step below.
const schemaVersion = 2

// migrations maps a target version to the data migration that brings the
// database up to it. Steps run in order inside a transaction each.
var migrations = map[int]func(*sql.Tx) error{
	// v1 is the baseline; auto-migration creates everything.
	2: backfillCompletedFlag,
}

// applyMigrations records and applies any pending data migrations.
func applyMigrations(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := currentVersion(db)
	if err != nil {
		return err
	}

	if current == 0 {
		// Fresh database: stamp the baseline, nothing to replay.
		if _, err := db.Exec(`INSERT INTO schema_migrations (version) VALUES (1)`); err != nil {
			return fmt.Errorf("stamp baseline: %w", err)
		}
		current = 1
	}

	for v := current + 1; v <= schemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			continue
		}
		if err := applyStep(db, v, step); err != nil {
			return fmt.Errorf("migrate to v%d: %w", v, err)
		}
	}
	return nil
}

func applyStep(db *sql.DB, version int, step func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := step(tx); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// currentVersion returns the highest applied version, or 0 for a fresh
// database.
func currentVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if !v.Valid {
		return 0, nil
	}
	return int(v.Int64), nil
}

// backfillCompletedFlag (v2) derives the completed flag and status from
// completion percentage for rows written before the flag existed.
func backfillCompletedFlag(tx *sql.Tx) error {
	_, err := tx.Exec(`UPDATE progress_records
		SET completed = 1, status = 'completed'
		WHERE completion >= 100 AND completed = 0`)
	return err
}
