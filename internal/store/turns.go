package store

import (
	"database/sql"

	"github.com/blackwell-systems/confessional/internal/transcript"
)

// RecordTurn stores one reconstructed turn: its prompt, its response, and
// every tool call, all attached to the project's current breakpoint. Returns
// the new prompt row ID.
func (db *DB) RecordTurn(project string, turn transcript.Turn) (int64, error) {
	bp, err := db.CurrentBreakpoint(project)
	if err != nil {
		return 0, err
	}
	var bpID any
	if bp != nil {
		bpID = bp.ID
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	ts := nowISO()
	result, err := tx.Exec(
		"INSERT INTO prompts (project, breakpoint_id, timestamp, prompt) VALUES (?, ?, ?, ?)",
		project, bpID, ts, turn.Prompt,
	)
	if err != nil {
		return 0, err
	}
	promptID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(
		"INSERT INTO responses (prompt_id, project, breakpoint_id, timestamp, response) VALUES (?, ?, ?, ?, ?)",
		promptID, project, bpID, ts, turn.Response,
	); err != nil {
		return 0, err
	}

	for _, tool := range turn.Tools {
		subagentTask := ""
		if tool.IsSubagent {
			subagentTask = tool.InputSummary
		}
		if _, err := tx.Exec(
			`INSERT INTO tool_usage
			(prompt_id, project, timestamp, tool_name, tool_input_summary, files_touched, is_subagent, subagent_task)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			promptID, project, ts, tool.ToolName, tool.InputSummary,
			tool.FilesTouched, tool.IsSubagent, subagentTask,
		); err != nil {
			return 0, err
		}
	}

	return promptID, tx.Commit()
}

// CurrentWindow returns the prompt/response sequence attached to the current
// breakpoint, bounded by the previous one when it exists.
func (db *DB) CurrentWindow(project string) (Window, error) {
	current, err := db.CurrentBreakpoint(project)
	if err != nil {
		return Window{}, err
	}
	if current == nil {
		return Window{Interactions: []Interaction{}}, nil
	}
	previous, err := db.PreviousBreakpoint(project)
	if err != nil {
		return Window{}, err
	}

	rows, err := db.conn.Query(
		`SELECT p.id, p.timestamp, p.prompt, r.response
		 FROM prompts p
		 LEFT JOIN responses r ON r.prompt_id = p.id
		 WHERE p.project = ? AND p.breakpoint_id = ?
		 ORDER BY p.id ASC`,
		project, current.ID,
	)
	if err != nil {
		return Window{}, err
	}
	defer func() { _ = rows.Close() }()

	interactions := []Interaction{}
	for rows.Next() {
		var it Interaction
		var response sql.NullString
		if err := rows.Scan(&it.PromptID, &it.Timestamp, &it.Prompt, &response); err != nil {
			return Window{}, err
		}
		it.Response = response.String
		interactions = append(interactions, it)
	}
	if err := rows.Err(); err != nil {
		return Window{}, err
	}

	return Window{
		Start:        previous,
		End:          current,
		Interactions: interactions,
		Count:        len(interactions),
	}, nil
}

// ToolsSinceBreakpoint returns all tool usage attached to the current
// breakpoint window, oldest first.
func (db *DB) ToolsSinceBreakpoint(project string) ([]ToolUsageRow, error) {
	bp, err := db.CurrentBreakpoint(project)
	if err != nil {
		return nil, err
	}
	if bp == nil {
		return nil, nil
	}

	rows, err := db.conn.Query(
		`SELECT t.id, t.prompt_id, t.project, t.timestamp, t.tool_name,
		        t.tool_input_summary, t.files_touched, t.is_subagent, t.subagent_task
		 FROM tool_usage t
		 JOIN prompts p ON t.prompt_id = p.id
		 WHERE p.project = ? AND p.breakpoint_id = ?
		 ORDER BY t.id ASC`,
		project, bp.ID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tools []ToolUsageRow
	for rows.Next() {
		var t ToolUsageRow
		var summary, files, task sql.NullString
		if err := rows.Scan(
			&t.ID, &t.PromptID, &t.Project, &t.Timestamp, &t.ToolName,
			&summary, &files, &t.IsSubagent, &task,
		); err != nil {
			return nil, err
		}
		t.InputSummary = summary.String
		t.FilesTouched = files.String
		t.SubagentTask = task.String
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

// Stats counts what the store holds for one project.
func (db *DB) Stats(project string) (ProjectStats, error) {
	stats := ProjectStats{Project: project}
	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM breakpoints WHERE project = ?", &stats.Breakpoints},
		{"SELECT COUNT(*) FROM prompts WHERE project = ?", &stats.Prompts},
		{"SELECT COUNT(*) FROM responses WHERE project = ?", &stats.Responses},
		{"SELECT COUNT(*) FROM reflections WHERE project = ?", &stats.Reflections},
		{"SELECT COUNT(*) FROM tool_usage WHERE project = ?", &stats.ToolCalls},
		{"SELECT COUNT(*) FROM tool_usage WHERE project = ? AND is_subagent = 1", &stats.SubagentSpawns},
	}
	for _, c := range counts {
		if err := db.conn.QueryRow(c.query, project).Scan(c.dest); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
