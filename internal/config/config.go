package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvLogFile = "FILETREE_LOG_FILE"
	EnvTrace   = "FILETREE_TRACE"
	EnvFormat  = "FILETREE_FORMAT"
)

// Output formats for batch mode.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Config holds application configuration.
type Config struct {
	Logging Logging `yaml:"logging"`
	UI      UI      `yaml:"ui"`
	Output  Output  `yaml:"output"`
}

type Logging struct {
	FilePath string `yaml:"file"`
	Trace    bool   `yaml:"trace"`
}

type UI struct {
	ShowHints bool   `yaml:"showHints"`
	Accent    string `yaml:"accent"`
}

type Output struct {
	Format string `yaml:"format"`
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			ShowHints: true,
			Accent:    "#5F8787",
		},
		Output: Output{
			Format: FormatText,
		},
	}
}

// DefaultConfigFilePath returns ~/.config/filetree/config.yaml.
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "filetree", "config.yaml"), nil
}

// Load reads config from path. A missing file yields the defaults; fields
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	defaults := DefaultConfig()
	if cfg.UI.Accent == "" {
		cfg.UI.Accent = defaults.UI.Accent
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = defaults.Output.Format
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with FILETREE_* variables from environ. Malformed
// boolean values are ignored.
func ApplyEnv(cfg Config, environ []string) Config {
	env := parseEnv(environ)
	cfg.Logging.FilePath = envOrDefault(env, EnvLogFile, cfg.Logging.FilePath)
	cfg.Logging.Trace = envOrBool(env, EnvTrace, cfg.Logging.Trace)
	cfg.Output.Format = envOrDefault(env, EnvFormat, cfg.Output.Format)
	return cfg
}

// Validate rejects unknown output formats and malformed accent colours.
func Validate(cfg Config) error {
	switch cfg.Output.Format {
	case FormatText, FormatHTML:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", cfg.Output.Format, FormatText, FormatHTML)
	}
	if !hexColor.MatchString(cfg.UI.Accent) {
		if _, err := strconv.Atoi(cfg.UI.Accent); err != nil {
			return fmt.Errorf("accent must be a hex colour or ANSI number (got %q)", cfg.UI.Accent)
		}
	}
	return nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
