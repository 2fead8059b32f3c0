package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level confessional configuration.
type Config struct {
	ClaudeHome string   `mapstructure:"claude_home"`
	StoreDir   string   `mapstructure:"store_dir"`
	Theme      string   `mapstructure:"theme"`
	Analysis   Analysis `mapstructure:"analysis"`
	Output     Output   `mapstructure:"output"`
}

// Analysis holds the tunable analyzer thresholds.
type Analysis struct {
	SkillExpansionWords int `mapstructure:"skill_expansion_words"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("claude_home", DefaultClaudeHome)
	v.SetDefault("store_dir", DefaultStoreDir)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("analysis.skill_expansion_words", DefaultSkillExpansionWords)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ClaudeHome = expandPath(cfg.ClaudeHome)
	cfg.StoreDir = expandPath(cfg.StoreDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database under the store dir.
func (c *Config) DBPath() string {
	return filepath.Join(c.StoreDir, "history.db")
}

// ProjectDir returns a project's directory under the store dir, where
// dashboards and the hook log are written.
func (c *Config) ProjectDir(project string) string {
	return filepath.Join(c.StoreDir, "projects", project)
}

// HookLogPath is the log file the hook appends failures to.
func (c *Config) HookLogPath() string {
	return filepath.Join(c.StoreDir, "hook.log")
}
