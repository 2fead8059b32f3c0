package store

import "database/sql"

// AddBreakpoint inserts a new breakpoint and returns it.
func (db *DB) AddBreakpoint(project, note string) (Breakpoint, error) {
	ts := nowISO()
	result, err := db.conn.Exec(
		"INSERT INTO breakpoints (project, timestamp, note) VALUES (?, ?, ?)",
		project, ts, note,
	)
	if err != nil {
		return Breakpoint{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Breakpoint{}, err
	}
	return Breakpoint{ID: id, Project: project, Timestamp: ts, Note: note}, nil
}

// CurrentBreakpoint returns the most recent breakpoint for a project, or nil
// if none exist.
func (db *DB) CurrentBreakpoint(project string) (*Breakpoint, error) {
	row := db.conn.QueryRow(
		"SELECT id, project, timestamp, note FROM breakpoints WHERE project = ? ORDER BY id DESC LIMIT 1",
		project,
	)
	return scanBreakpoint(row)
}

// PreviousBreakpoint returns the second most recent breakpoint, the start of
// the current window. Nil when fewer than two exist.
func (db *DB) PreviousBreakpoint(project string) (*Breakpoint, error) {
	row := db.conn.QueryRow(
		"SELECT id, project, timestamp, note FROM breakpoints WHERE project = ? ORDER BY id DESC LIMIT 1 OFFSET 1",
		project,
	)
	return scanBreakpoint(row)
}

// Breakpoints returns all breakpoints for a project, oldest first.
func (db *DB) Breakpoints(project string) ([]Breakpoint, error) {
	rows, err := db.conn.Query(
		"SELECT id, project, timestamp, note FROM breakpoints WHERE project = ? ORDER BY id ASC",
		project,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var bps []Breakpoint
	for rows.Next() {
		var bp Breakpoint
		var note sql.NullString
		if err := rows.Scan(&bp.ID, &bp.Project, &bp.Timestamp, &note); err != nil {
			return nil, err
		}
		bp.Note = note.String
		bps = append(bps, bp)
	}
	return bps, rows.Err()
}

// Init ensures the project has at least one breakpoint and enables recording.
func (db *DB) Init(project string) error {
	bp, err := db.CurrentBreakpoint(project)
	if err != nil {
		return err
	}
	if bp == nil {
		if _, err := db.AddBreakpoint(project, "Initial breakpoint"); err != nil {
			return err
		}
	}
	return db.EnableRecording(project)
}

func scanBreakpoint(row *sql.Row) (*Breakpoint, error) {
	var bp Breakpoint
	var note sql.NullString
	err := row.Scan(&bp.ID, &bp.Project, &bp.Timestamp, &note)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	bp.Note = note.String
	return &bp, nil
}
