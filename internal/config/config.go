// Package config loads sarr configuration from JSONC files, the
// environment and command-line overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"
)

// Error variables for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrLengthOutOfRange   = errors.New("length out of range")
	ErrPromptEmpty        = errors.New("prompt cannot be empty")
)

// MaxLength is the largest array length sarr accepts.
const MaxLength = 1 << 20

// Config holds all configuration options.
type Config struct {
	// Length is the number of elements in the session array.
	Length int

	// HistoryFile is the REPL history path as configured. Empty disables
	// history.
	HistoryFile string

	// Prompt is shown before each REPL line.
	Prompt string

	// Resolved (computed, not serialized)
	EffectiveCwd string // Absolute working directory (from -C flag or os.Getwd)
	HistoryPath  string // Absolute history path; empty when history is disabled

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// fileConfig is the on-disk shape. Pointers distinguish "unset" from an
// explicit zero or empty value.
type fileConfig struct {
	Length      *int    `json:"length"`
	HistoryFile *string `json:"history_file"`
	Prompt      *string `json:"prompt"`
}

// FileName is the default project config file name.
const FileName = ".sarr.json"

// Default values.
const (
	DefaultLength      = 20
	DefaultPrompt      = "sarr> "
	DefaultHistoryFile = "~/.sarr_history"
)

// Default returns the default configuration.
func Default() Config {
	return Config{
		Length:      DefaultLength,
		HistoryFile: DefaultHistoryFile,
		Prompt:      DefaultPrompt,
	}
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	LengthOverride  string            // -n/--len flag value; empty means no override
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/sarr/config.json or ~/.config/sarr/config.json)
// 3. Project config file (.sarr.json in the working directory, if it exists)
// 4. Explicit config file via ConfigPath (replaces 3)
// 5. CLI overrides.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	if globalPath := globalConfigPath(input.Env); globalPath != "" {
		globalCfg, loaded, err := loadFile(globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg.Sources.Global = globalPath
			cfg = merge(cfg, globalCfg)
		}
	}

	projectPath, mustExist := filepath.Join(workDir, FileName), false
	if input.ConfigPath != "" {
		projectPath, mustExist = input.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}
	}

	projectCfg, loaded, err := loadFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg.Sources.Project = projectPath
		cfg = merge(cfg, projectCfg)
	}

	if input.LengthOverride != "" {
		n, parseErr := strconv.Atoi(input.LengthOverride)
		if parseErr != nil {
			return Config{}, fmt.Errorf("%w: --len %q", ErrLengthOutOfRange, input.LengthOverride)
		}

		cfg.Length = n
	}

	validateErr := validate(cfg)
	if validateErr != nil {
		return Config{}, validateErr
	}

	cfg.EffectiveCwd = workDir
	cfg.HistoryPath = resolvePath(cfg.HistoryFile, workDir, input.Env)

	return cfg, nil
}

// globalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/sarr/config.json if set, otherwise ~/.config/sarr/config.json.
// Returns empty string if home directory cannot be determined.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "sarr", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "sarr", "config.json")
	}

	return ""
}

// loadFile loads a config file. If mustExist is false, a missing file
// returns a zero config and loaded=false.
func loadFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from flags or well-known locations
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if mustExist {
				return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}

			return fileConfig{}, false, nil
		}

		return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, parseErr := parse(data)
	if parseErr != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	if cfg.Prompt != nil && *cfg.Prompt == "" {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrPromptEmpty)
	}

	return cfg, true, nil
}

func parse(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func merge(base Config, overlay fileConfig) Config {
	if overlay.Length != nil {
		base.Length = *overlay.Length
	}

	if overlay.HistoryFile != nil {
		base.HistoryFile = *overlay.HistoryFile
	}

	if overlay.Prompt != nil {
		base.Prompt = *overlay.Prompt
	}

	return base
}

func validate(cfg Config) error {
	if cfg.Length < 0 || cfg.Length > MaxLength {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrLengthOutOfRange, cfg.Length, MaxLength)
	}

	if cfg.Prompt == "" {
		return ErrPromptEmpty
	}

	return nil
}

// resolvePath expands a leading "~/" and makes path absolute. Returns empty
// for an empty path, or for a "~/" path when HOME is unknown.
func resolvePath(path, workDir string, env map[string]string) string {
	if path == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home := env["HOME"]
		if home == "" {
			return ""
		}

		return filepath.Join(home, rest)
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

// Format renders cfg as key=value lines.
func Format(cfg Config) string {
	var b strings.Builder

	b.WriteString("effective_cwd=" + cfg.EffectiveCwd + "\n")
	b.WriteString("length=" + strconv.Itoa(cfg.Length) + "\n")
	b.WriteString("prompt=" + strconv.Quote(cfg.Prompt) + "\n")

	if cfg.HistoryPath == "" {
		b.WriteString("history_file=(disabled)")
	} else {
		b.WriteString("history_file=" + cfg.HistoryPath)
	}

	return b.String()
}
