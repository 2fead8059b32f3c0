package transcript

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TranscriptDir converts a project working directory to its native JSONL
// directory. Claude Code stores transcripts at
// ~/.claude/projects/{cwd with / replaced by -}/{sessionId}.jsonl.
func TranscriptDir(claudeHome, cwd string) string {
	encoded := strings.ReplaceAll(strings.TrimRight(cwd, "/"), "/", "-")
	return filepath.Join(claudeHome, "projects", encoded)
}

// FindSessions returns the session JSONL files under dir, sorted by first
// entry timestamp (oldest first). When since is non-empty, sessions whose
// last timestamped entry precedes it are skipped; sessions that merely start
// before it are kept because their later turns may still qualify; the
// caller filters turns by timestamp afterwards.
func FindSessions(dir, since string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	type candidate struct {
		firstTS string
		path    string
	}
	var found []candidate

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".jsonl") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		entries, err := ReadEntriesFile(path)
		if err != nil {
			continue
		}

		firstTS, lastTS := timestampRange(entries)
		if since != "" && lastTS != "" && lastTS < since {
			continue
		}
		found = append(found, candidate{firstTS: firstTS, path: path})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].firstTS < found[j].firstTS
	})

	paths := make([]string, len(found))
	for i, c := range found {
		paths[i] = c.path
	}
	return paths, nil
}

// timestampRange returns the first and last non-empty timestamps in an entry
// sequence. ISO-8601 strings compare correctly as strings.
func timestampRange(entries []LogEntry) (first, last string) {
	for _, e := range entries {
		if e.Timestamp == "" {
			continue
		}
		if first == "" {
			first = e.Timestamp
		}
		last = e.Timestamp
	}
	return first, last
}
