package transcript

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func parseLines(t *testing.T, lines ...string) []LogEntry {
	t.Helper()
	return ReadEntries(strings.NewReader(strings.Join(lines, "\n")))
}

const (
	userPrompt = `{"type":"user","timestamp":"2026-02-01T10:00:00Z","sessionId":"s1","message":{"role":"user","content":"fix the bug"}}`

	assistantText = `{"type":"assistant","timestamp":"2026-02-01T10:00:05Z","message":{"role":"assistant","model":"claude-opus-4-6","stop_reason":"end_turn","usage":{"input_tokens":100,"output_tokens":40},"content":[{"type":"text","text":"Fixed it."}]}}`

	assistantToolUse = `{"type":"assistant","timestamp":"2026-02-01T10:00:02Z","message":{"role":"assistant","model":"claude-opus-4-6","stop_reason":"tool_use","usage":{"input_tokens":80,"output_tokens":20,"cache_read_input_tokens":500,"cache_creation_input_tokens":50},"content":[{"type":"tool_use","id":"tu_1","name":"Read","input":{"file_path":"/src/main.go"}}]}}`

	toolResultCycle = `{"type":"user","timestamp":"2026-02-01T10:00:03Z","message":{"role":"user","content":[{"type":"tool_result","tool_use_id":"tu_1","content":"package main"}]}}`
)

func TestSegmentTurns_SingleTurn(t *testing.T) {
	entries := parseLines(t, userPrompt, assistantToolUse, toolResultCycle, assistantText)
	turns := SegmentTurns(entries, "s1")

	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}

	turn := turns[0]
	if turn.Prompt != "fix the bug" {
		t.Errorf("Prompt = %q", turn.Prompt)
	}
	if turn.Response != "Fixed it." {
		t.Errorf("Response = %q", turn.Response)
	}
	if turn.Timestamp != "2026-02-01T10:00:00Z" {
		t.Errorf("Timestamp = %q", turn.Timestamp)
	}
	if turn.SessionID != "s1" {
		t.Errorf("SessionID = %q", turn.SessionID)
	}

	if len(turn.Tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(turn.Tools))
	}
	tool := turn.Tools[0]
	if tool.ToolName != "Read" {
		t.Errorf("ToolName = %q", tool.ToolName)
	}
	if tool.InputSummary != "/src/main.go" {
		t.Errorf("InputSummary = %q", tool.InputSummary)
	}
	if tool.FilesTouched != "/src/main.go" {
		t.Errorf("FilesTouched = %q", tool.FilesTouched)
	}
	if tool.IsSubagent {
		t.Error("Read is not a subagent tool")
	}
}

func TestSegmentTurns_BlocksOrderedAndAttributed(t *testing.T) {
	entries := parseLines(t, userPrompt, assistantToolUse, toolResultCycle, assistantText)
	turns := SegmentTurns(entries, "s1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}

	blocks := turns[0].Blocks
	wantTypes := []string{"tool_use", "tool_result", "text"}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("expected %d blocks, got %d", len(wantTypes), len(blocks))
	}
	for i, b := range blocks {
		if b.Sequence != i {
			t.Errorf("block %d sequence = %d, want gap-free ascending from 0", i, b.Sequence)
		}
		if b.Type != wantTypes[i] {
			t.Errorf("block %d type = %q, want %q", i, b.Type, wantTypes[i])
		}
	}

	// The tool_result record has no tool name field; it is attributed to the
	// most recently seen tool.
	if blocks[1].ToolName != "Read" {
		t.Errorf("tool_result attributed to %q, want Read", blocks[1].ToolName)
	}
	if blocks[1].Content != "package main" {
		t.Errorf("tool_result content = %q", blocks[1].Content)
	}
}

func TestSegmentTurns_TokenUsageSummedAcrossAPICalls(t *testing.T) {
	entries := parseLines(t, userPrompt, assistantToolUse, toolResultCycle, assistantText)
	turns := SegmentTurns(entries, "s1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}

	m := turns[0].Metrics
	if m.InputTokens != 180 {
		t.Errorf("InputTokens = %d, want 180", m.InputTokens)
	}
	if m.OutputTokens != 60 {
		t.Errorf("OutputTokens = %d, want 60", m.OutputTokens)
	}
	if m.CacheReadTokens != 500 {
		t.Errorf("CacheReadTokens = %d, want 500", m.CacheReadTokens)
	}
	if m.CacheCreationTokens != 50 {
		t.Errorf("CacheCreationTokens = %d, want 50", m.CacheCreationTokens)
	}
	if m.Model != "claude-opus-4-6" {
		t.Errorf("Model = %q (first assistant entry wins)", m.Model)
	}
	if m.StopReason != "end_turn" {
		t.Errorf("StopReason = %q (last assistant entry wins)", m.StopReason)
	}
}

func TestSegmentTurns_ToolResultCycleDoesNotAnchor(t *testing.T) {
	entries := parseLines(t, userPrompt, assistantToolUse, toolResultCycle, assistantText)
	turns := SegmentTurns(entries, "s1")
	if len(turns) != 1 {
		t.Fatalf("tool-result cycle anchored a new turn: got %d turns", len(turns))
	}
}

func TestSegmentTurns_StructuralMarkersInvariant(t *testing.T) {
	marker := `{"type":"summary","summary":"session bookkeeping"}`
	plain := parseLines(t, userPrompt, assistantText)
	noisy := parseLines(t, marker, userPrompt, marker, assistantText, marker)

	plainTurns := SegmentTurns(plain, "s1")
	noisyTurns := SegmentTurns(noisy, "s1")

	if len(plainTurns) != len(noisyTurns) {
		t.Fatalf("turn count changed by structural markers: %d vs %d",
			len(plainTurns), len(noisyTurns))
	}
	if plainTurns[0].Response != noisyTurns[0].Response {
		t.Errorf("response changed by structural markers")
	}
	if len(plainTurns[0].Blocks) != len(noisyTurns[0].Blocks) {
		t.Errorf("blocks changed by structural markers")
	}
}

func TestSegmentTurns_ToolOnlyResponseSynthesis(t *testing.T) {
	oneTool := parseLines(t, userPrompt, assistantToolUse)
	turns := SegmentTurns(oneTool, "s1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Response != "[tool-only turn: Read]" {
		t.Errorf("Response = %q, want %q", turns[0].Response, "[tool-only turn: Read]")
	}

	secondTool := `{"type":"assistant","timestamp":"2026-02-01T10:00:04Z","message":{"role":"assistant","content":[{"type":"tool_use","id":"tu_2","name":"Bash","input":{"command":"go test ./..."}}]}}`
	twoTools := parseLines(t, userPrompt, assistantToolUse, secondTool)
	turns = SegmentTurns(twoTools, "s1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Response != "[tool-only turn: Read, Bash]" {
		t.Errorf("Response = %q, want tools in call order", turns[0].Response)
	}
}

func TestSegmentTurns_DropsEmptyTurns(t *testing.T) {
	// A prompt followed immediately by the next prompt produced neither
	// response nor tools and carries no information.
	second := `{"type":"user","timestamp":"2026-02-01T10:01:00Z","sessionId":"s1","message":{"role":"user","content":"second ask"}}`
	entries := parseLines(t, userPrompt, second, assistantText)
	turns := SegmentTurns(entries, "s1")

	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Prompt != "second ask" {
		t.Errorf("kept turn prompt = %q, want the one with a response", turns[0].Prompt)
	}
}

func TestSegmentTurns_MultipleTurns(t *testing.T) {
	second := `{"type":"user","timestamp":"2026-02-01T10:01:00Z","sessionId":"s1","message":{"role":"user","content":"now add a test"}}`
	secondResponse := `{"type":"assistant","timestamp":"2026-02-01T10:01:05Z","message":{"role":"assistant","usage":{"input_tokens":10,"output_tokens":5},"content":[{"type":"text","text":"Added."}]}}`
	entries := parseLines(t, userPrompt, assistantText, second, secondResponse)
	turns := SegmentTurns(entries, "s1")

	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Response != "Fixed it." || turns[1].Response != "Added." {
		t.Errorf("responses crossed turn boundaries: %q / %q",
			turns[0].Response, turns[1].Response)
	}
	// First turn's usage must not leak into the second.
	if turns[1].Metrics.InputTokens != 10 {
		t.Errorf("second turn InputTokens = %d, want 10", turns[1].Metrics.InputTokens)
	}
}

func TestSummarizeToolInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Bash", `{"command":"go build ./..."}`, "go build ./..."},
		{"Write", `{"file_path":"/tmp/x.go","content":"..."}`, "/tmp/x.go"},
		{"Grep", `{"pattern":"func main","path":"/src"}`, "pattern=func main"},
		{"Glob", `{"pattern":"**/*.go"}`, "pattern=**/*.go"},
		{"WebSearch", `{"query":"golang errgroup"}`, "golang errgroup"},
		{"WebFetch", `{"url":"https://example.com"}`, "https://example.com"},
		{"Task", `{"prompt":"run the linter","subagent_type":"checker"}`, "run the linter"},
	}
	for _, tt := range tests {
		got := summarizeToolInput(tt.name, []byte(tt.input))
		if got != tt.want {
			t.Errorf("summarizeToolInput(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSummarizeToolInput_TruncatesLongCommands(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := summarizeToolInput("Bash", []byte(`{"command":"`+long+`"}`))
	if len(got) != summaryLimit {
		t.Errorf("summary length = %d, want %d", len(got), summaryLimit)
	}
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	long := strings.Repeat("日本語", 100)
	got := truncate(long, summaryLimit)
	if !utf8.ValidString(got) {
		t.Errorf("truncate split a rune: %q", got[len(got)-8:])
	}
	if n := utf8.RuneCountInString(got); n != summaryLimit {
		t.Errorf("rune count = %d, want %d", n, summaryLimit)
	}
	if short := truncate("short", summaryLimit); short != "short" {
		t.Errorf("truncate(short) = %q", short)
	}
}

func TestExtractFiles(t *testing.T) {
	if got := extractFiles("Edit", []byte(`{"file_path":"/a/b.go"}`)); got != "/a/b.go" {
		t.Errorf("Edit files = %q", got)
	}
	if got := extractFiles("Grep", []byte(`{"pattern":"x","path":"/src"}`)); got != "/src" {
		t.Errorf("Grep files = %q", got)
	}
	if got := extractFiles("Bash", []byte(`{"command":"rm -rf /"}`)); got != "" {
		t.Errorf("Bash should touch no files, got %q", got)
	}
}

func TestBuildSession_Metadata(t *testing.T) {
	meta := `{"type":"user","timestamp":"2026-02-01T09:59:59Z","sessionId":"sess-9","version":"2.1.0","gitBranch":"main","message":{"role":"user","content":"fix the bug"}}`
	entries := parseLines(t, meta, assistantText)
	s := BuildSession(entries)

	if s.SessionID != "sess-9" {
		t.Errorf("SessionID = %q", s.SessionID)
	}
	if s.Version != "2.1.0" {
		t.Errorf("Version = %q", s.Version)
	}
	if s.GitBranch != "main" {
		t.Errorf("GitBranch = %q", s.GitBranch)
	}
	if s.Model != "claude-opus-4-6" {
		t.Errorf("Model = %q", s.Model)
	}
	if len(s.Turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(s.Turns))
	}
	if s.Turns[0].SessionID != "sess-9" {
		t.Errorf("turn SessionID = %q", s.Turns[0].SessionID)
	}
}
