package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS breakpoints (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			project   TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			note      TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS prompts (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			project       TEXT NOT NULL,
			breakpoint_id INTEGER REFERENCES breakpoints(id),
			timestamp     TEXT NOT NULL,
			prompt        TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS responses (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			prompt_id     INTEGER NOT NULL REFERENCES prompts(id),
			project       TEXT NOT NULL,
			breakpoint_id INTEGER REFERENCES breakpoints(id),
			timestamp     TEXT NOT NULL,
			response      TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS tool_usage (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			prompt_id          INTEGER NOT NULL REFERENCES prompts(id),
			project            TEXT NOT NULL,
			timestamp          TEXT NOT NULL,
			tool_name          TEXT NOT NULL,
			tool_input_summary TEXT,
			files_touched      TEXT,
			is_subagent        INTEGER NOT NULL DEFAULT 0,
			subagent_task      TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS session_context (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			project       TEXT NOT NULL,
			breakpoint_id INTEGER REFERENCES breakpoints(id),
			timestamp     TEXT NOT NULL,
			model         TEXT,
			git_branch    TEXT,
			git_commit    TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS reflections (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			project             TEXT NOT NULL,
			breakpoint_start_id INTEGER REFERENCES breakpoints(id),
			breakpoint_end_id   INTEGER REFERENCES breakpoints(id),
			timestamp           TEXT NOT NULL,
			reflection          TEXT NOT NULL,
			git_summary         TEXT,
			prompt_count        INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS recording_state (
			project    TEXT PRIMARY KEY,
			enabled    INTEGER NOT NULL,
			changed_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS dashboards (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			project       TEXT NOT NULL,
			breakpoint_id INTEGER NOT NULL,
			reflection_id INTEGER NOT NULL,
			html_path     TEXT NOT NULL,
			generated_at  TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_breakpoints_project ON breakpoints(project)`,
		`CREATE INDEX IF NOT EXISTS idx_prompts_project ON prompts(project)`,
		`CREATE INDEX IF NOT EXISTS idx_prompts_breakpoint ON prompts(breakpoint_id)`,
		`CREATE INDEX IF NOT EXISTS idx_responses_prompt ON responses(prompt_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tool_usage_prompt ON tool_usage(prompt_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tool_usage_project ON tool_usage(project)`,
		`CREATE INDEX IF NOT EXISTS idx_session_context_project ON session_context(project)`,
		`CREATE INDEX IF NOT EXISTS idx_reflections_project ON reflections(project)`,
		`CREATE INDEX IF NOT EXISTS idx_dashboards_project ON dashboards(project)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
