package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"lyrickana/model"
)

//go:embed sample_config.toml
var sampleConfig string

// Reading selects the reading engine.
type Reading struct {
	Dictionary   string `toml:"dictionary"`
	KanjidicPath string `toml:"kanjidic_path"`
}

// Conversion holds the default conversion options.
type Conversion struct {
	KeepLatin            bool `toml:"keep_latin"`
	KeepKatakana         bool `toml:"keep_katakana"`
	MergeYouon           bool `toml:"merge_youon"`
	MergeSokuon          bool `toml:"merge_sokuon"`
	SplitWithSpace       bool `toml:"split_with_space"`
	SpaceLatinInternally bool `toml:"space_latin_internally"`
	FoldWidth            bool `toml:"fold_width"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"`
	File    string `toml:"file"`
	DumpDir string `toml:"dump_dir"`
}

// Config encapsulates all configuration values for lyrickana.
type Config struct {
	Reading    Reading    `toml:"reading"`
	Conversion Conversion `toml:"conversion"`
	Logging    Logging    `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := model.DefaultOptions()
	return Config{
		Reading: Reading{Dictionary: "ipa"},
		Conversion: Conversion{
			KeepLatin:            opts.KeepLatin,
			KeepKatakana:         opts.KeepKatakana,
			MergeYouon:           opts.MergeYouon,
			MergeSokuon:          opts.MergeSokuon,
			SplitWithSpace:       opts.SplitWithSpace,
			SpaceLatinInternally: opts.SpaceLatinInternally,
			FoldWidth:            opts.FoldWidth,
		},
		Logging: Logging{Level: "info", Format: "console"},
	}
}

// Options returns the configured conversion options.
func (c *Config) Options() model.Options {
	return model.Options{
		KeepLatin:            c.Conversion.KeepLatin,
		KeepKatakana:         c.Conversion.KeepKatakana,
		MergeYouon:           c.Conversion.MergeYouon,
		MergeSokuon:          c.Conversion.MergeSokuon,
		SplitWithSpace:       c.Conversion.SplitWithSpace,
		SpaceLatinInternally: c.Conversion.SpaceLatinInternally,
		FoldWidth:            c.Conversion.FoldWidth,
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lyrickana/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path and whether that file exists.
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
		decoder.DisallowUnknownFields()
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
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("lyrickana.toml")
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

// Encode renders cfg as TOML.
func Encode(cfg *Config) (string, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(b), nil
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
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
