package transcript

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// parseConcurrency bounds how many session files are parsed at once. Each
// file is an independent read-only snapshot, so per-file parsing stays
// sequential while files proceed in parallel.
const parseConcurrency = 4

// SessionSummary is per-session metadata attached to a corpus.
type SessionSummary struct {
	SessionID string `json:"session_id"`
	Model     string `json:"model"`
	Version   string `json:"version"`
	GitBranch string `json:"git_branch"`
	TurnCount int    `json:"turn_count"`
}

// ToolStats aggregates tool usage across a turn corpus.
type ToolStats struct {
	Total         int            `json:"total"`
	ByTool        map[string]int `json:"by_tool"`
	SubagentCount int            `json:"subagent_count"`
}

// TokenStats aggregates token usage across a turn corpus.
type TokenStats struct {
	TotalInput         int `json:"total_input"`
	TotalOutput        int `json:"total_output"`
	TotalCacheRead     int `json:"total_cache_read"`
	TotalCacheCreation int `json:"total_cache_creation"`
}

// Corpus is the turn collection for a project since a cursor timestamp,
// with aggregate tool and token statistics. It is the single input the
// analyzers and the dashboard consume.
type Corpus struct {
	Turns      []Turn           `json:"turns"`
	TurnCount  int              `json:"turn_count"`
	ToolStats  ToolStats        `json:"tool_stats"`
	TokenStats TokenStats       `json:"token_stats"`
	Sessions   []SessionSummary `json:"sessions"`
}

// TurnsSince collects all turns across a project's sessions at or after the
// given timestamp. An empty since includes everything.
func TurnsSince(claudeHome, cwd, since string) (Corpus, error) {
	dir := TranscriptDir(claudeHome, cwd)
	return TurnsSinceDir(dir, since)
}

// TurnsSinceDir is TurnsSince with an explicit transcript directory.
func TurnsSinceDir(dir, since string) (Corpus, error) {
	paths, err := FindSessions(dir, since)
	if err != nil {
		return Corpus{}, err
	}

	sessions := make([]Session, len(paths))
	var g errgroup.Group
	g.SetLimit(parseConcurrency)
	var mu sync.Mutex

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			s, err := ParseSession(path)
			if err != nil {
				// A session that vanished or became unreadable mid-run
				// is skipped, matching line-level lenience.
				return nil
			}
			mu.Lock()
			sessions[i] = s
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Corpus{}, err
	}

	return buildCorpus(sessions, since), nil
}

// buildCorpus filters turns by the since cursor and aggregates statistics.
func buildCorpus(sessions []Session, since string) Corpus {
	corpus := Corpus{
		ToolStats: ToolStats{ByTool: map[string]int{}},
	}

	for _, s := range sessions {
		var kept []Turn
		for _, t := range s.Turns {
			if since != "" && t.Timestamp < since {
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == 0 {
			continue
		}

		corpus.Turns = append(corpus.Turns, kept...)
		corpus.Sessions = append(corpus.Sessions, SessionSummary{
			SessionID: s.SessionID,
			Model:     s.Model,
			Version:   s.Version,
			GitBranch: s.GitBranch,
			TurnCount: len(kept),
		})

		for _, t := range kept {
			for _, tool := range t.Tools {
				corpus.ToolStats.ByTool[tool.ToolName]++
				corpus.ToolStats.Total++
				if tool.IsSubagent {
					corpus.ToolStats.SubagentCount++
				}
			}
			corpus.TokenStats.TotalInput += t.Metrics.InputTokens
			corpus.TokenStats.TotalOutput += t.Metrics.OutputTokens
			corpus.TokenStats.TotalCacheRead += t.Metrics.CacheReadTokens
			corpus.TokenStats.TotalCacheCreation += t.Metrics.CacheCreationTokens
		}
	}

	corpus.TurnCount = len(corpus.Turns)
	return corpus
}
