package store

import "database/sql"

// StoreReflection appends a reflection over the current breakpoint window.
func (db *DB) StoreReflection(project, text, gitSummary string, promptCount int) (Reflection, error) {
	current, err := db.CurrentBreakpoint(project)
	if err != nil {
		return Reflection{}, err
	}
	previous, err := db.PreviousBreakpoint(project)
	if err != nil {
		return Reflection{}, err
	}

	var startID, endID any
	ref := Reflection{
		Project:     project,
		Timestamp:   nowISO(),
		Reflection:  text,
		GitSummary:  gitSummary,
		PromptCount: promptCount,
	}
	if previous != nil {
		startID = previous.ID
		ref.BreakpointStartID = previous.ID
	}
	if current != nil {
		endID = current.ID
		ref.BreakpointEndID = current.ID
	}

	result, err := db.conn.Exec(
		`INSERT INTO reflections
		(project, breakpoint_start_id, breakpoint_end_id, timestamp, reflection, git_summary, prompt_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		project, startID, endID, ref.Timestamp, text, gitSummary, promptCount,
	)
	if err != nil {
		return Reflection{}, err
	}
	ref.ID, err = result.LastInsertId()
	return ref, err
}

// Reflections returns all reflections for a project, oldest first.
func (db *DB) Reflections(project string) ([]Reflection, error) {
	rows, err := db.conn.Query(
		`SELECT id, project, breakpoint_start_id, breakpoint_end_id,
		        timestamp, reflection, git_summary, prompt_count
		 FROM reflections WHERE project = ? ORDER BY id ASC`,
		project,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var refs []Reflection
	for rows.Next() {
		var r Reflection
		var startID, endID sql.NullInt64
		var gitSummary sql.NullString
		if err := rows.Scan(
			&r.ID, &r.Project, &startID, &endID,
			&r.Timestamp, &r.Reflection, &gitSummary, &r.PromptCount,
		); err != nil {
			return nil, err
		}
		r.BreakpointStartID = startID.Int64
		r.BreakpointEndID = endID.Int64
		r.GitSummary = gitSummary.String
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

// RecordSessionContext stores environment details attached to the current
// breakpoint.
func (db *DB) RecordSessionContext(project, model, gitBranch, gitCommit string) error {
	bp, err := db.CurrentBreakpoint(project)
	if err != nil {
		return err
	}
	var bpID any
	if bp != nil {
		bpID = bp.ID
	}
	_, err = db.conn.Exec(
		`INSERT INTO session_context
		(project, breakpoint_id, timestamp, model, git_branch, git_commit)
		VALUES (?, ?, ?, ?, ?, ?)`,
		project, bpID, nowISO(), model, gitBranch, gitCommit,
	)
	return err
}

// LatestSessionContext returns the most recent session context, or nil.
func (db *DB) LatestSessionContext(project string) (*SessionContext, error) {
	row := db.conn.QueryRow(
		`SELECT id, project, breakpoint_id, timestamp, model, git_branch, git_commit
		 FROM session_context WHERE project = ? ORDER BY id DESC LIMIT 1`,
		project,
	)
	var ctx SessionContext
	var bpID sql.NullInt64
	var model, branch, commit sql.NullString
	err := row.Scan(&ctx.ID, &ctx.Project, &bpID, &ctx.Timestamp, &model, &branch, &commit)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ctx.BreakpointID = bpID.Int64
	ctx.Model = model.String
	ctx.GitBranch = branch.String
	ctx.GitCommit = commit.String
	return &ctx, nil
}
