package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// Preset names accepted by --preset and the config file.
const (
	PresetCrucible = "crucible"
	PresetUltra    = "ultra"
	PresetBoth     = "both"
)

// ConfigFileName is the project config file looked up in the working directory.
const ConfigFileName = ".crucible.json"

// configEnv names an environment variable that points at a config file.
const configEnv = "CRUCIBLE_CONFIG"

// Config holds all configuration options. MinRun and MaxRun are pointers so
// an explicit 0 can be told apart from "not set".
type Config struct {
	Preset        string `json:"preset,omitempty"`
	MinRun        *int   `json:"min_run,omitempty"`        //nolint:tagliatelle // snake_case for config file
	MaxRun        *int   `json:"max_run,omitempty"`        //nolint:tagliatelle // snake_case for config file
	WallThreshold int    `json:"wall_threshold,omitempty"` //nolint:tagliatelle // snake_case for config file
	MaxExpansions int    `json:"max_expansions,omitempty"` //nolint:tagliatelle // snake_case for config file
	Workers       int    `json:"workers,omitempty"`
	ShowPath      bool   `json:"show_path,omitempty"` //nolint:tagliatelle // snake_case for config file
	LogLevel      string `json:"log_level,omitempty"` //nolint:tagliatelle // snake_case for config file
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Preset:   PresetBoth,
		LogLevel: "info",
	}
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Config file: explicit configPath, else $CRUCIBLE_CONFIG, else .crucible.json in workDir (optional)
// CLI flags are applied afterwards by the caller.
// Returns the merged config and the path of the file that was loaded, if any.
func LoadConfig(workDir, configPath string, env map[string]string) (Config, string, error) {
	cfg := DefaultConfig()

	path, mustExist := configPath, true
	if path == "" {
		path = env[configEnv]
	}
	if path == "" {
		path, mustExist = ConfigFileName, false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	fileCfg, loaded, err := loadConfigFile(path, mustExist)
	if err != nil {
		return Config{}, "", err
	}
	if !loaded {
		path = ""
	}
	cfg = mergeConfig(cfg, fileCfg)

	if err := validateConfig(cfg); err != nil {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadConfigFile loads a config file. If mustExist is false, a missing file
// returns a zero config and loaded == false.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", errConfigFileNotFound, path)
			}

			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s", errConfigFileRead, path)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

// mergeConfig overlays the set fields of override onto base.
func mergeConfig(base, override Config) Config {
	if override.Preset != "" {
		base.Preset = override.Preset
	}
	if override.MinRun != nil {
		base.MinRun = override.MinRun
	}
	if override.MaxRun != nil {
		base.MaxRun = override.MaxRun
	}
	if override.WallThreshold != 0 {
		base.WallThreshold = override.WallThreshold
	}
	if override.MaxExpansions != 0 {
		base.MaxExpansions = override.MaxExpansions
	}
	if override.Workers != 0 {
		base.Workers = override.Workers
	}
	if override.ShowPath {
		base.ShowPath = true
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}

	return base
}

// validateConfig checks the fields the library does not validate itself.
// Run bounds and budgets are left to crucible.Search.
func validateConfig(cfg Config) error {
	switch cfg.Preset {
	case PresetCrucible, PresetUltra, PresetBoth:
	default:
		return fmt.Errorf("%w: %q", errUnknownPreset, cfg.Preset)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownLogLevel, s)
	}
}
