// Package gitinfo shells out to git for lightweight repository context.
// Every call is best-effort with a short timeout; callers treat an empty
// result as "not a git checkout" rather than an error.
package gitinfo

import (
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const gitTimeout = 5 * time.Second

func run(dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ProjectName resolves the project identity for a working directory. Inside
// a git checkout it is the repository root's basename, so every subdirectory
// of a repo maps to the same project. Elsewhere it falls back to the
// directory's own basename.
func ProjectName(dir string) string {
	if top, err := run(dir, "rev-parse", "--show-toplevel"); err == nil && top != "" {
		return filepath.Base(top)
	}
	return filepath.Base(dir)
}

// Branch returns the current branch name, or "" outside a checkout.
func Branch(dir string) string {
	out, _ := run(dir, "rev-parse", "--abbrev-ref", "HEAD")
	return out
}

// Commit returns the short hash of HEAD, or "" outside a checkout.
func Commit(dir string) string {
	out, _ := run(dir, "rev-parse", "--short", "HEAD")
	return out
}

// RecentLog returns up to n one-line commit subjects, newest first.
func RecentLog(dir string, n int) string {
	out, _ := run(dir, "log", "--oneline", "-n", strconv.Itoa(n))
	return out
}
