package hook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hookEvents are the lifecycle events the recorder subscribes to.
var hookEvents = []string{"Stop", "SessionStart"}

// commandMarker identifies entries this tool manages inside settings.json,
// so install and uninstall never touch hooks owned by other tools.
const commandMarker = "confessional"

// InstallHooks registers the record command for Stop and SessionStart in
// Claude Code's settings file, replacing any entries it installed before.
// Unrelated settings and hooks are preserved as-is.
func InstallHooks(claudeHome, command string) error {
	return editSettings(claudeHome, func(hooks map[string]any) {
		entry := map[string]any{
			"hooks": []any{
				map[string]any{
					"type":    "command",
					"command": command,
					"timeout": 10,
				},
			},
		}
		for _, event := range hookEvents {
			hooks[event] = append(withoutManaged(hooks[event]), entry)
		}
	})
}

// UninstallHooks removes every entry InstallHooks added. Events left with no
// entries are dropped entirely.
func UninstallHooks(claudeHome string) error {
	return editSettings(claudeHome, func(hooks map[string]any) {
		for _, event := range hookEvents {
			kept := withoutManaged(hooks[event])
			if len(kept) == 0 {
				delete(hooks, event)
			} else {
				hooks[event] = kept
			}
		}
	})
}

// SettingsPath returns the Claude Code settings file the hooks live in.
func SettingsPath(claudeHome string) string {
	return filepath.Join(claudeHome, "settings.json")
}

func editSettings(claudeHome string, edit func(hooks map[string]any)) error {
	path := SettingsPath(claudeHome)

	settings := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// First install on a fresh machine.
	default:
		return err
	}

	hooks, ok := settings["hooks"].(map[string]any)
	if !ok {
		hooks = map[string]any{}
	}
	edit(hooks)
	if len(hooks) == 0 {
		delete(settings, "hooks")
	} else {
		settings["hooks"] = hooks
	}

	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}

// withoutManaged filters an event's entry list down to hooks some other tool
// installed. Accepts the raw decoded value, which may be absent or malformed.
func withoutManaged(raw any) []any {
	entries, ok := raw.([]any)
	if !ok {
		return nil
	}
	kept := make([]any, 0, len(entries))
	for _, e := range entries {
		if !isManaged(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

func isManaged(entry any) bool {
	m, ok := entry.(map[string]any)
	if !ok {
		return false
	}
	inner, ok := m["hooks"].([]any)
	if !ok {
		return false
	}
	for _, h := range inner {
		hm, ok := h.(map[string]any)
		if !ok {
			continue
		}
		if cmd, ok := hm["command"].(string); ok && strings.Contains(cmd, commandMarker) {
			return true
		}
	}
	return false
}
