package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/uigen-dev/uigen/internal/branding"
)

const (
	fileName = "uigen"
	fileType = "yaml"
)

// Settings holds the effective project configuration.
type Settings struct {
	// SrcRoot is the absolute source root all generated files live under.
	SrcRoot string
	// ComponentExt is the component stub extension (default "tsx").
	ComponentExt string
	// BarrelExt is the index file extension (default "ts").
	BarrelExt string
}

// Dir returns the path to the user-level config directory (~/.uigen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// EnsureDir creates the user-level config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// FilePath returns the project config file path (./uigen.yaml).
func FilePath() string {
	return fileName + "." + fileType
}

// Load reads uigen.yaml from the working directory if present, applies
// environment overrides, and returns the effective settings with an absolute
// source root. A config file that fails schema validation is a hard error.
func Load() (Settings, error) {
	v := newProjectViper()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading %s: %w", FilePath(), err)
		}
		// No config file: defaults plus env overrides.
	} else if used := v.ConfigFileUsed(); used != "" {
		result, err := ValidateFile(used)
		if err != nil {
			return Settings{}, fmt.Errorf("validating %s: %w", used, err)
		}
		if !result.Valid {
			return Settings{}, fmt.Errorf("invalid config %s:\n%s", used, formatIssues(result.Issues))
		}
	}

	s := Settings{
		SrcRoot:      v.GetString("src_root"),
		ComponentExt: v.GetString("component_ext"),
		BarrelExt:    v.GetString("barrel_ext"),
	}

	abs, err := filepath.Abs(s.SrcRoot)
	if err != nil {
		return Settings{}, fmt.Errorf("resolving source root %q: %w", s.SrcRoot, err)
	}
	s.SrcRoot = abs

	return s, nil
}

// Get returns the effective config value for a key: the project file if set,
// otherwise environment overrides and defaults, matching what Load would use.
func Get(key string) (string, error) {
	v := newProjectViper()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return "", fmt.Errorf("reading %s: %w", FilePath(), err)
		}
	}
	return v.GetString(key), nil
}

// Set writes a key-value pair to the project config file, creating it if
// needed. No defaults on this viper instance: WriteConfigAs would persist
// them into the file alongside the user's keys.
func Set(key, value string) error {
	v := newProjectViper()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading %s: %w", FilePath(), err)
		}
	}

	v.Set(key, value)
	if err := v.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// newProjectViper returns a viper instance pointed at ./uigen.yaml.
func newProjectViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(".")
	return v
}

// setDefaults installs the default settings and UIGEN_* env overrides.
func setDefaults(v *viper.Viper) {
	v.SetDefault("src_root", "src")
	v.SetDefault("component_ext", "tsx")
	v.SetDefault("barrel_ext", "ts")
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
}

func formatIssues(issues []ValidationIssue) string {
	lines := make([]string, len(issues))
	for i, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		lines[i] = "  - " + msg
	}
	return strings.Join(lines, "\n")
}
