// Package transcript reads Claude Code's native JSONL session transcripts
// and reconstructs them into structured turns for reflection analysis.
package transcript

import "encoding/json"

// EntryKind classifies a log entry after parsing.
type EntryKind int

const (
	// EntryStructural covers session bookkeeping records (summaries,
	// progress markers, anything that is neither user nor assistant).
	EntryStructural EntryKind = iota
	EntryUser
	EntryAssistant
)

// LogEntry is one record from a session JSONL file. Entries are produced by
// parsing and never mutated afterwards.
type LogEntry struct {
	Type      string          `json:"type"`
	Timestamp string          `json:"timestamp"`
	SessionID string          `json:"sessionId"`
	Version   string          `json:"version"`
	GitBranch string          `json:"gitBranch"`
	Message   json.RawMessage `json:"message"`
}

// Kind maps the raw type string onto the closed entry classification.
func (e *LogEntry) Kind() EntryKind {
	switch e.Type {
	case "user":
		return EntryUser
	case "assistant":
		return EntryAssistant
	default:
		return EntryStructural
	}
}

// Message is the message payload of a user or assistant entry.
type Message struct {
	Role       string          `json:"role"`
	Model      string          `json:"model"`
	Content    json.RawMessage `json:"content"`
	Usage      Usage           `json:"usage"`
	StopReason string          `json:"stop_reason"`
}

// Usage holds the token counters reported by a single API call.
// Absent fields decode to zero.
type Usage struct {
	InputTokens         int `json:"input_tokens"`
	OutputTokens        int `json:"output_tokens"`
	CacheReadTokens     int `json:"cache_read_input_tokens"`
	CacheCreationTokens int `json:"cache_creation_input_tokens"`
}

// ContentBlock is a single content block within a message. The Type field
// discriminates between "text", "tool_use", "tool_result", and "image".
type ContentBlock struct {
	Type      string          `json:"type"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	ToolUseID string          `json:"tool_use_id"`
	Content   json.RawMessage `json:"content"`
	Text      string          `json:"text"`
}

// Turn is one reconstructed unit of interaction: a genuine user prompt plus
// all assistant activity up to the next genuine prompt. Turns are built once
// during segmentation and consumed read-only by the analyzers.
type Turn struct {
	Prompt    string      `json:"prompt"`
	Response  string      `json:"response"`
	Tools     []ToolCall  `json:"tools"`
	Blocks    []Block     `json:"blocks"`
	Metrics   TurnMetrics `json:"metrics"`
	Timestamp string      `json:"timestamp"`
	SessionID string      `json:"session_id"`
}

// ToolCall summarizes one tool invocation within a turn.
type ToolCall struct {
	ToolName     string `json:"tool_name"`
	InputSummary string `json:"input_summary"`
	FilesTouched string `json:"files_touched"`
	IsSubagent   bool   `json:"is_subagent"`
}

// Block is a normalized content block in turn order. Sequence numbers are
// gap-free and start at 0 within each turn, preserving the source interleaving
// of text, tool_use, and tool_result so a renderer can reconstruct what
// happened when.
type Block struct {
	Sequence int    `json:"sequence"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	ToolName string `json:"tool_name,omitempty"`
}

// TurnMetrics aggregates token usage across every assistant entry in a turn.
// One turn may involve multiple sequential API calls (one per tool
// round-trip), so counters are summed, the model is taken from the first
// assistant entry, and stop_reason from the last.
type TurnMetrics struct {
	Model               string `json:"model"`
	InputTokens         int    `json:"input_tokens"`
	OutputTokens        int    `json:"output_tokens"`
	CacheReadTokens     int    `json:"cache_read_tokens"`
	CacheCreationTokens int    `json:"cache_creation_tokens"`
	StopReason          string `json:"stop_reason"`
}

// Session is a fully parsed transcript file.
type Session struct {
	SessionID string `json:"session_id"`
	Model     string `json:"model"`
	Version   string `json:"version"`
	GitBranch string `json:"git_branch"`
	Turns     []Turn `json:"turns"`
}
