package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	SavesDir string `toml:"saves_dir"`
	LogDir   string `toml:"log_dir"`
}

// Naming contains defaults for the rename command.
type Naming struct {
	Prefix          string `toml:"prefix"`
	DateFormat      string `toml:"date_format"`
	StartIndex      int    `toml:"start_index"`
	PreservePostfix bool   `toml:"preserve_postfix"`
	Name            string `toml:"name"`
	ImageExtension  string `toml:"image_extension"`
	VideoExtension  string `toml:"video_extension"`
	RawExtension    string `toml:"raw_extension"`
	Recursive       bool   `toml:"recursive"`
}

// Grouping contains thresholds for the order commands.
type Grouping struct {
	LowJumpMinutes int    `toml:"low_jump_minutes"`
	BigJumpMinutes int    `toml:"big_jump_minutes"`
	SizeLimit      int    `toml:"size_limit"`
	SeriesDir      string `toml:"series_dir"`
	VideoDir       string `toml:"video_dir"`
	DayFormat      string `toml:"day_format"`
	TimeFile       string `toml:"time_file"`
}

// Exiftool contains configuration for the metadata extractor.
type Exiftool struct {
	// Enabled selects the exiftool reader. When false the built-in EXIF
	// decoder is used, which only yields primary columns (easy mode).
	Enabled bool   `toml:"enabled"`
	Binary  string `toml:"binary"`
}

// Describe contains settings for writing sheet metadata into files.
type Describe struct {
	// Program names recorded in the processing tree for HDR and panorama
	// columns. Empty values leave the program entry out.
	HDRProgram      string `toml:"hdr_program"`
	PanoramaProgram string `toml:"panorama_program"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for shotname.
//
// Configuration sections:
//   - Paths: saves directory (audit logs, reports) and log directory (log
//     file, run snapshot database, run locks)
//   - Naming: rename defaults (prefix, date format, start index, extensions)
//   - Grouping: order thresholds and subdirectory names
//   - Exiftool: metadata extractor selection
//   - Describe: processing program names for the describe command
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Naming   Naming   `toml:"naming"`
	Grouping Grouping `toml:"grouping"`
	Exiftool Exiftool `toml:"exiftool"`
	Describe Describe `toml:"describe"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/shotname/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/shotname/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shotname.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the saves and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.SavesDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LowJump is the gap after which a large pending group is split.
func (c *Config) LowJump() time.Duration {
	return time.Duration(c.Grouping.LowJumpMinutes) * time.Minute
}

// BigJump is the gap after which a new group always starts.
func (c *Config) BigJump() time.Duration {
	return time.Duration(c.Grouping.BigJumpMinutes) * time.Minute
}

// SnapshotPath returns the location of the run snapshot database.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Paths.LogDir, "runs.db")
}

// LockDir returns the directory holding per-directory run locks.
func (c *Config) LockDir() string {
	return filepath.Join(c.Paths.LogDir, "locks")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
