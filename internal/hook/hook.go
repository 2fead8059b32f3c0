// Package hook processes Claude Code lifecycle events delivered as JSON on
// stdin. A Stop event records the turn that just finished; a SessionStart
// event captures model and git context for the project.
package hook

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/confessional/internal/gitinfo"
	"github.com/blackwell-systems/confessional/internal/store"
	"github.com/blackwell-systems/confessional/internal/transcript"
)

// Event is the payload Claude Code writes to a hook's stdin.
type Event struct {
	HookEventName  string `json:"hook_event_name"`
	CWD            string `json:"cwd"`
	TranscriptPath string `json:"transcript_path"`
}

// Handler dispatches hook events against a store.
type Handler struct {
	db  *store.DB
	log *log.Logger
}

func NewHandler(db *store.DB, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Handler{db: db, log: logger}
}

// OpenLog opens the hook's append-only log file, creating parent directories
// as needed. The caller closes the returned file.
func OpenLog(path string) (*log.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "", log.LstdFlags), f, nil
}

// Handle reads one event from r and processes it. It never reports failure
// to the caller: a hook that exits non-zero would interrupt the session it
// is observing, so every error lands in the log instead.
func (h *Handler) Handle(r io.Reader) {
	var ev Event
	if err := json.NewDecoder(r).Decode(&ev); err != nil {
		h.log.Printf("decode event: %v", err)
		return
	}

	project := gitinfo.ProjectName(ev.CWD)
	switch ev.HookEventName {
	case "Stop":
		if err := h.handleStop(project, ev.TranscriptPath); err != nil {
			h.log.Printf("stop %s: %v", project, err)
		}
	case "SessionStart":
		if err := h.handleSessionStart(project, ev.CWD, ev.TranscriptPath); err != nil {
			h.log.Printf("session start %s: %v", project, err)
		}
	default:
		h.log.Printf("ignoring event %q", ev.HookEventName)
	}
}

// handleStop appends the transcript's final turn to the project history.
// Projects with recording disabled are skipped, as are transcripts whose
// last exchange produced neither response text nor tool calls.
func (h *Handler) handleStop(project, transcriptPath string) error {
	recording, err := h.db.IsRecording(project)
	if err != nil {
		return err
	}
	if !recording || transcriptPath == "" {
		return nil
	}

	turn, ok, err := transcript.LastTurn(transcriptPath)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	_, err = h.db.RecordTurn(project, turn)
	return err
}

// handleSessionStart records model and git context for a new session. A
// project the user disabled is left untouched; the gate runs before Init so
// a session start cannot re-enable recording.
func (h *Handler) handleSessionStart(project, cwd, transcriptPath string) error {
	recording, err := h.db.IsRecording(project)
	if err != nil {
		return err
	}
	if !recording {
		return nil
	}
	if err := h.db.Init(project); err != nil {
		return err
	}

	model := ""
	if transcriptPath != "" {
		if session, err := transcript.ParseSession(transcriptPath); err == nil {
			model = session.Model
		}
	}
	return h.db.RecordSessionContext(project, model, gitinfo.Branch(cwd), gitinfo.Commit(cwd))
}
