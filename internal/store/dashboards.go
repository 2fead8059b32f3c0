package store

// AppendDashboard records a generated dashboard page in the manifest.
func (db *DB) AppendDashboard(project string, breakpointID, reflectionID int64, htmlPath string) (DashboardEntry, error) {
	entry := DashboardEntry{
		Project:      project,
		BreakpointID: breakpointID,
		ReflectionID: reflectionID,
		HTMLPath:     htmlPath,
		GeneratedAt:  nowISO(),
	}
	result, err := db.conn.Exec(
		`INSERT INTO dashboards (project, breakpoint_id, reflection_id, html_path, generated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		project, breakpointID, reflectionID, htmlPath, entry.GeneratedAt,
	)
	if err != nil {
		return DashboardEntry{}, err
	}
	entry.ID, err = result.LastInsertId()
	return entry, err
}

// DashboardManifest returns all generated dashboard entries for a project,
// oldest first.
func (db *DB) DashboardManifest(project string) ([]DashboardEntry, error) {
	rows, err := db.conn.Query(
		`SELECT id, project, breakpoint_id, reflection_id, html_path, generated_at
		 FROM dashboards WHERE project = ? ORDER BY id ASC`,
		project,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []DashboardEntry
	for rows.Next() {
		var e DashboardEntry
		if err := rows.Scan(&e.ID, &e.Project, &e.BreakpointID, &e.ReflectionID, &e.HTMLPath, &e.GeneratedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
