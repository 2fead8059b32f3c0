package store

import "database/sql"

// EnableRecording turns on hook recording for a project.
func (db *DB) EnableRecording(project string) error {
	return db.setRecording(project, true)
}

// DisableRecording turns off hook recording for a project.
func (db *DB) DisableRecording(project string) error {
	return db.setRecording(project, false)
}

func (db *DB) setRecording(project string, enabled bool) error {
	_, err := db.conn.Exec(
		`INSERT INTO recording_state (project, enabled, changed_at) VALUES (?, ?, ?)
		 ON CONFLICT(project) DO UPDATE SET enabled = excluded.enabled, changed_at = excluded.changed_at`,
		project, enabled, nowISO(),
	)
	return err
}

// IsRecording reports whether recording is enabled for a project. Unknown
// projects default to disabled.
func (db *DB) IsRecording(project string) (bool, error) {
	var enabled bool
	err := db.conn.QueryRow(
		"SELECT enabled FROM recording_state WHERE project = ?", project,
	).Scan(&enabled)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return enabled, nil
}
