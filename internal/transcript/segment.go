package transcript

import (
	"encoding/json"
	"strings"
)

const (
	// summaryLimit bounds tool input summaries.
	summaryLimit = 200

	// resultLimit bounds tool_result content captured into blocks.
	resultLimit = 500

	// subagentTool is the tool name that spawns sub-task agents.
	subagentTool = "Task"
)

// ParseSession parses one transcript JSONL file into a Session with
// structured turns.
func ParseSession(path string) (Session, error) {
	entries, err := ReadEntriesFile(path)
	if err != nil {
		return Session{}, err
	}
	return BuildSession(entries), nil
}

// BuildSession assembles a Session from an already-parsed entry sequence:
// session metadata from the earliest entries carrying it, then turns via
// SegmentTurns.
func BuildSession(entries []LogEntry) Session {
	var s Session
	for i := range entries {
		e := &entries[i]
		if s.SessionID == "" && e.SessionID != "" {
			s.SessionID = e.SessionID
		}
		if s.Version == "" && e.Version != "" {
			s.Version = e.Version
		}
		if s.GitBranch == "" && e.GitBranch != "" {
			s.GitBranch = e.GitBranch
		}
		if s.SessionID != "" && s.Version != "" && s.GitBranch != "" {
			break
		}
	}

	s.Turns = SegmentTurns(entries, s.SessionID)

	// Session-level model comes from the first turn that saw one.
	for _, t := range s.Turns {
		if t.Metrics.Model != "" {
			s.Model = t.Metrics.Model
			break
		}
	}
	return s
}

// SegmentTurns groups a flat entry sequence into turns. Every genuine user
// prompt starts a turn spanning all entries until the next genuine prompt;
// structural markers and tool-result cycles never anchor turns. Turns that
// end with neither response text nor tool calls carry no information and are
// dropped.
func SegmentTurns(entries []LogEntry, sessionID string) []Turn {
	var starts []int
	for i := range entries {
		if IsGenuinePrompt(&entries[i]) {
			starts = append(starts, i)
		}
	}

	var turns []Turn
	for n, start := range starts {
		end := len(entries)
		if n+1 < len(starts) {
			end = starts[n+1]
		}

		anchor := &entries[start]
		acc := turnAccumulator{}
		for i := start + 1; i < end; i++ {
			acc = acc.absorb(&entries[i])
		}

		turn, ok := acc.finish(PromptText(anchor), anchor.Timestamp, sessionID)
		if !ok {
			continue
		}
		turns = append(turns, turn)
	}
	return turns
}

// LastTurn reconstructs the turn anchored at the final genuine prompt of a
// transcript file. Returns false when the file holds no genuine prompt or the
// final turn carries neither response text nor tool calls.
func LastTurn(path string) (Turn, bool, error) {
	entries, err := ReadEntriesFile(path)
	if err != nil {
		return Turn{}, false, err
	}

	anchor := -1
	for i := len(entries) - 1; i >= 0; i-- {
		if IsGenuinePrompt(&entries[i]) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return Turn{}, false, nil
	}

	session := BuildSession(entries[:anchor+1])
	turns := SegmentTurns(entries[anchor:], session.SessionID)
	if len(turns) == 0 {
		return Turn{}, false, nil
	}
	return turns[0], true, nil
}

// turnAccumulator is the fold state for a single turn's entry span. absorb
// returns an updated copy so segmentation has no shared mutable state.
type turnAccumulator struct {
	responses    []string
	tools        []ToolCall
	blocks       []Block
	seq          int
	lastToolName string
	metrics      TurnMetrics
}

// absorb folds one entry into the accumulator.
func (acc turnAccumulator) absorb(e *LogEntry) turnAccumulator {
	switch e.Kind() {
	case EntryAssistant:
		return acc.absorbAssistant(e)
	case EntryUser:
		return acc.absorbToolResults(e)
	default:
		return acc
	}
}

// absorbAssistant accumulates response text, tool calls, and token usage
// from one assistant entry.
func (acc turnAccumulator) absorbAssistant(e *LogEntry) turnAccumulator {
	msg := decodeMessage(e)

	if acc.metrics.Model == "" && msg.Model != "" {
		acc.metrics.Model = msg.Model
	}
	acc.metrics.InputTokens += msg.Usage.InputTokens
	acc.metrics.OutputTokens += msg.Usage.OutputTokens
	acc.metrics.CacheReadTokens += msg.Usage.CacheReadTokens
	acc.metrics.CacheCreationTokens += msg.Usage.CacheCreationTokens
	if msg.StopReason != "" {
		acc.metrics.StopReason = msg.StopReason
	}

	blocks, ok := contentBlocks(msg.Content)
	if !ok {
		return acc
	}

	for _, b := range blocks {
		switch b.Type {
		case "text":
			text := strings.TrimSpace(b.Text)
			if text == "" {
				continue
			}
			acc.responses = append(acc.responses, text)
			acc.blocks = append(acc.blocks, Block{
				Sequence: acc.seq,
				Type:     "text",
				Content:  text,
			})
			acc.seq++

		case "tool_use":
			summary := summarizeToolInput(b.Name, b.Input)
			acc.lastToolName = b.Name
			acc.tools = append(acc.tools, ToolCall{
				ToolName:     b.Name,
				InputSummary: summary,
				FilesTouched: extractFiles(b.Name, b.Input),
				IsSubagent:   b.Name == subagentTool,
			})
			acc.blocks = append(acc.blocks, Block{
				Sequence: acc.seq,
				Type:     "tool_use",
				Content:  summary,
				ToolName: b.Name,
			})
			acc.seq++
		}
	}
	return acc
}

// absorbToolResults accumulates tool_result blocks from a mid-turn user
// entry (a tool-result cycle). Result records carry no tool name, so each is
// attributed to the most recently seen tool.
func (acc turnAccumulator) absorbToolResults(e *LogEntry) turnAccumulator {
	msg := decodeMessage(e)
	blocks, ok := contentBlocks(msg.Content)
	if !ok {
		return acc
	}

	for _, b := range blocks {
		if b.Type != "tool_result" {
			continue
		}
		acc.blocks = append(acc.blocks, Block{
			Sequence: acc.seq,
			Type:     "tool_result",
			Content:  resultText(b.Content),
			ToolName: acc.lastToolName,
		})
		acc.seq++
	}
	return acc
}

// finish produces the Turn, synthesizing a response for tool-only turns.
// Returns false when the turn has neither response text nor tool calls.
func (acc turnAccumulator) finish(prompt, timestamp, sessionID string) (Turn, bool) {
	response := strings.Join(acc.responses, "\n\n")
	if response == "" && len(acc.tools) > 0 {
		names := make([]string, len(acc.tools))
		for i, t := range acc.tools {
			names[i] = t.ToolName
		}
		response = "[tool-only turn: " + strings.Join(names, ", ") + "]"
	}

	if response == "" && len(acc.tools) == 0 {
		return Turn{}, false
	}

	return Turn{
		Prompt:    prompt,
		Response:  response,
		Tools:     acc.tools,
		Blocks:    acc.blocks,
		Metrics:   acc.metrics,
		Timestamp: timestamp,
		SessionID: sessionID,
	}, true
}

// summarizeToolInput builds a brief, type-specific summary of a tool call.
func summarizeToolInput(toolName string, input json.RawMessage) string {
	switch toolName {
	case "Bash":
		return truncate(inputField(input, "command"), summaryLimit)
	case "Read", "Write", "Edit":
		return inputField(input, "file_path")
	case "Grep", "Glob":
		return "pattern=" + inputField(input, "pattern")
	case "WebSearch":
		return inputField(input, "query")
	case "WebFetch":
		return inputField(input, "url")
	case subagentTool:
		return truncate(inputField(input, "prompt"), summaryLimit)
	}
	return truncate(compactJSON(input), summaryLimit)
}

// extractFiles returns the file path touched by a file-oriented tool call,
// or empty for tools that do not target files.
func extractFiles(toolName string, input json.RawMessage) string {
	switch toolName {
	case "Read", "Write", "Edit":
		return inputField(input, "file_path")
	case "Grep", "Glob":
		return inputField(input, "path")
	}
	return ""
}

// inputField extracts a single string field from a tool input object.
func inputField(input json.RawMessage, key string) string {
	if input == nil {
		return ""
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(input, &m); err != nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(m[key], &s); err != nil {
		return ""
	}
	return s
}

// resultText renders tool_result content as bounded text. Content can be a
// string or an array of content blocks.
func resultText(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	if s, ok := contentString(raw); ok {
		return truncate(s, resultLimit)
	}
	if blocks, ok := contentBlocks(raw); ok {
		var parts []string
		for _, b := range blocks {
			if b.Text != "" {
				parts = append(parts, b.Text)
			}
		}
		return truncate(strings.Join(parts, "\n"), resultLimit)
	}
	return truncate(compactJSON(raw), resultLimit)
}

func compactJSON(raw json.RawMessage) string {
	return strings.TrimSpace(string(raw))
}

// truncate caps s at limit characters, never splitting a multibyte rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
