// Package store provides SQLite persistence for breakpoints, recorded turns,
// reflections, and recording state.
package store

// Breakpoint marks a reflection boundary within a project's history. The
// window between the two most recent breakpoints is what reflections and
// dashboards summarize.
type Breakpoint struct {
	ID        int64  `json:"id"`
	Project   string `json:"project"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

// PromptRow is one recorded user prompt.
type PromptRow struct {
	ID           int64  `json:"id"`
	Project      string `json:"project"`
	BreakpointID int64  `json:"breakpoint_id,omitempty"`
	Timestamp    string `json:"timestamp"`
	Prompt       string `json:"prompt"`
}

// Interaction pairs a recorded prompt with its response for window queries.
type Interaction struct {
	PromptID  int64  `json:"prompt_id"`
	Timestamp string `json:"timestamp"`
	Prompt    string `json:"prompt"`
	Response  string `json:"response,omitempty"`
}

// Window is the prompt/response sequence between the last two breakpoints.
type Window struct {
	Start        *Breakpoint   `json:"breakpoint_start"`
	End          *Breakpoint   `json:"breakpoint_end"`
	Interactions []Interaction `json:"interactions"`
	Count        int           `json:"count"`
}

// ToolUsageRow is one recorded tool call within a turn.
type ToolUsageRow struct {
	ID           int64  `json:"id"`
	PromptID     int64  `json:"prompt_id"`
	Project      string `json:"project"`
	Timestamp    string `json:"timestamp"`
	ToolName     string `json:"tool_name"`
	InputSummary string `json:"tool_input_summary,omitempty"`
	FilesTouched string `json:"files_touched,omitempty"`
	IsSubagent   bool   `json:"is_subagent"`
	SubagentTask string `json:"subagent_task,omitempty"`
}

// Reflection is a stored retrospective over a breakpoint window.
type Reflection struct {
	ID                int64  `json:"id"`
	Project           string `json:"project"`
	BreakpointStartID int64  `json:"breakpoint_start_id,omitempty"`
	BreakpointEndID   int64  `json:"breakpoint_end_id,omitempty"`
	Timestamp         string `json:"timestamp"`
	Reflection        string `json:"reflection"`
	GitSummary        string `json:"git_summary,omitempty"`
	PromptCount       int    `json:"prompt_count"`
}

// SessionContext captures environment details at session start.
type SessionContext struct {
	ID           int64  `json:"id"`
	Project      string `json:"project"`
	BreakpointID int64  `json:"breakpoint_id,omitempty"`
	Timestamp    string `json:"timestamp"`
	Model        string `json:"model,omitempty"`
	GitBranch    string `json:"git_branch,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
}

// DashboardEntry records one generated dashboard page in the manifest.
type DashboardEntry struct {
	ID           int64  `json:"id"`
	Project      string `json:"project"`
	BreakpointID int64  `json:"breakpoint_id"`
	ReflectionID int64  `json:"reflection_id"`
	HTMLPath     string `json:"html_path"`
	GeneratedAt  string `json:"generated_at"`
}

// ProjectStats summarizes what the store holds for one project.
type ProjectStats struct {
	Project        string `json:"project"`
	Breakpoints    int    `json:"breakpoints"`
	Prompts        int    `json:"prompts"`
	Responses      int    `json:"responses"`
	Reflections    int    `json:"reflections"`
	ToolCalls      int    `json:"tool_calls"`
	SubagentSpawns int    `json:"subagent_spawns"`
}
