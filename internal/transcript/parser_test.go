package transcript

import (
	"strings"
	"testing"
	"time"
)

func entryFromJSON(t *testing.T, line string) LogEntry {
	t.Helper()
	entries := ReadEntries(strings.NewReader(line))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	return entries[0]
}

func TestReadEntries_SkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"user","message":{"role":"user","content":"hello"}}`,
		`{truncated garbage`,
		``,
		`   `,
		`{"type":"assistant","message":{"role":"assistant","content":[]}}`,
	}, "\n")

	entries := ReadEntries(strings.NewReader(input))
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind() != EntryUser {
		t.Errorf("entry 0 kind = %v, want user", entries[0].Kind())
	}
	if entries[1].Kind() != EntryAssistant {
		t.Errorf("entry 1 kind = %v, want assistant", entries[1].Kind())
	}
}

func TestLogEntry_Kind(t *testing.T) {
	tests := []struct {
		typ  string
		want EntryKind
	}{
		{"user", EntryUser},
		{"assistant", EntryAssistant},
		{"summary", EntryStructural},
		{"progress", EntryStructural},
		{"", EntryStructural},
	}
	for _, tt := range tests {
		e := LogEntry{Type: tt.typ}
		if got := e.Kind(); got != tt.want {
			t.Errorf("Kind(%q) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestIsGenuinePrompt_StringContent(t *testing.T) {
	e := entryFromJSON(t, `{"type":"user","message":{"role":"user","content":"fix the bug"}}`)
	if !IsGenuinePrompt(&e) {
		t.Error("string content should be a genuine prompt")
	}
}

func TestIsGenuinePrompt_BlankString(t *testing.T) {
	e := entryFromJSON(t, `{"type":"user","message":{"role":"user","content":"   "}}`)
	if IsGenuinePrompt(&e) {
		t.Error("whitespace-only content should not be a genuine prompt")
	}
}

func TestIsGenuinePrompt_ToolResultOnly(t *testing.T) {
	e := entryFromJSON(t, `{"type":"user","message":{"role":"user","content":[{"type":"tool_result","tool_use_id":"tu_1","content":"ok"}]}}`)
	if IsGenuinePrompt(&e) {
		t.Error("tool_result-only content must not anchor a turn")
	}
}

func TestIsGenuinePrompt_MixedBlocks(t *testing.T) {
	e := entryFromJSON(t, `{"type":"user","message":{"role":"user","content":[{"type":"tool_result","tool_use_id":"tu_1","content":"ok"},{"type":"text","text":"and also do this"}]}}`)
	if !IsGenuinePrompt(&e) {
		t.Error("content with a non-tool_result block is a genuine prompt")
	}
}

func TestIsGenuinePrompt_AssistantEntry(t *testing.T) {
	e := entryFromJSON(t, `{"type":"assistant","message":{"role":"assistant","content":"text"}}`)
	if IsGenuinePrompt(&e) {
		t.Error("assistant entries are never prompts")
	}
}

func TestPromptText_StructuredContent(t *testing.T) {
	e := entryFromJSON(t, `{"type":"user","message":{"role":"user","content":[{"type":"text","text":"look at this"},{"type":"image"},{"type":"tool_result","tool_use_id":"x","content":"skipped"},{"type":"text","text":"what is it?"}]}}`)
	got := PromptText(&e)
	want := "look at this\n[image]\nwhat is it?"
	if got != want {
		t.Errorf("PromptText = %q, want %q", got, want)
	}
}

func TestPromptText_BareStringBlock(t *testing.T) {
	e := entryFromJSON(t, `{"type":"user","message":{"role":"user","content":["plain part",{"type":"text","text":"block part"}]}}`)
	got := PromptText(&e)
	want := "plain part\nblock part"
	if got != want {
		t.Errorf("PromptText = %q, want %q", got, want)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-01-15T10:00:00Z", time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{"2026-01-15T10:00:00.123Z", time.Date(2026, 1, 15, 10, 0, 0, 123000000, time.UTC)},
		{"2026-01-15T10:00:00", time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not-a-time", time.Time{}},
	}
	for _, tt := range tests {
		if got := ParseTimestamp(tt.in); !got.Equal(tt.want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
