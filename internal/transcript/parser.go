package transcript

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"
)

// maxLineSize is the scanner buffer cap for long JSONL lines (10MB).
const maxLineSize = 10 * 1024 * 1024

// ReadEntries decodes all entries from a JSONL stream, silently skipping
// lines that fail to decode. The transcript is written by an external process
// that may be interrupted mid-write, so malformed lines are expected and are
// never an error.
func ReadEntries(r io.Reader) []LogEntry {
	var entries []LogEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// ReadEntriesFile reads all entries from a JSONL file on disk.
func ReadEntriesFile(path string) ([]LogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEntries(f), nil
}

// decodeMessage unmarshals the entry's message payload. Returns a zero
// Message when the payload is absent or malformed.
func decodeMessage(e *LogEntry) Message {
	if e.Message == nil {
		return Message{}
	}
	var msg Message
	if err := json.Unmarshal(e.Message, &msg); err != nil {
		return Message{}
	}
	return msg
}

// contentBlocks decodes structured message content into blocks. Content can
// be a plain string, or an array whose elements are block objects or bare
// strings; bare strings become text blocks. Returns nil and false for plain
// string content.
func contentBlocks(raw json.RawMessage) ([]ContentBlock, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed[0] != '[' {
		return nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}

	blocks := make([]ContentBlock, 0, len(elems))
	for _, el := range elems {
		var s string
		if err := json.Unmarshal(el, &s); err == nil {
			blocks = append(blocks, ContentBlock{Type: "text", Text: s})
			continue
		}
		var b ContentBlock
		if err := json.Unmarshal(el, &b); err != nil {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks, true
}

// contentString decodes plain string message content. Returns empty string
// and false when the content is structured.
func contentString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// IsGenuinePrompt reports whether a user entry carries authored content.
// An entry whose structured content consists entirely of tool_result blocks
// is a tool-result cycle, not a prompt, and must not anchor a turn.
func IsGenuinePrompt(e *LogEntry) bool {
	if e.Kind() != EntryUser {
		return false
	}
	msg := decodeMessage(e)
	if msg.Content == nil {
		return false
	}
	if s, ok := contentString(msg.Content); ok {
		return strings.TrimSpace(s) != ""
	}
	blocks, ok := contentBlocks(msg.Content)
	if !ok {
		return false
	}
	for _, b := range blocks {
		if b.Type != "tool_result" {
			return true
		}
	}
	return false
}

// PromptText extracts the authored text of a user entry: all text blocks
// joined by newlines, image blocks rendered as an "[image]" placeholder, and
// tool_result blocks excluded.
func PromptText(e *LogEntry) string {
	msg := decodeMessage(e)
	if msg.Content == nil {
		return ""
	}
	if s, ok := contentString(msg.Content); ok {
		return s
	}
	blocks, ok := contentBlocks(msg.Content)
	if !ok {
		return ""
	}
	var parts []string
	for _, b := range blocks {
		switch b.Type {
		case "text":
			parts = append(parts, b.Text)
		case "image":
			parts = append(parts, "[image]")
		case "tool_result":
			continue
		}
	}
	return strings.Join(parts, "\n")
}

// ParseTimestamp parses an ISO 8601 timestamp string, trying RFC3339Nano,
// RFC3339, and a plain datetime without timezone. Returns the zero time when
// the string is empty or unparseable.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			t, err = time.Parse("2006-01-02T15:04:05", s)
			if err != nil {
				return time.Time{}
			}
		}
	}
	return t
}
