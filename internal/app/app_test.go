package app

import (
	"strings"
	"testing"
)

func TestSubcommands_Registered(t *testing.T) {
	want := []string{
		"turns", "linguistics", "effectiveness", "analyze", "sessions",
		"breakpoint", "reflect", "record", "enable", "disable",
		"dashboard", "install-hooks", "uninstall-hooks",
	}

	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		name := cmd.Use
		if i := strings.IndexByte(name, ' '); i > 0 {
			name = name[:i]
		}
		registered[name] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("%s subcommand not registered on rootCmd", name)
		}
	}
}

func TestRecordCmd_Hidden(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "record" {
			if !cmd.Hidden {
				t.Error("record is a hook entry point and should be hidden")
			}
			return
		}
	}
	t.Fatal("record subcommand not registered")
}
