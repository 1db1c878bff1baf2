package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"lyrickana/config"
	"lyrickana/model"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "lyrickana", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Reading.Dictionary != "ipa" {
		t.Fatalf("unexpected dictionary %q", cfg.Reading.Dictionary)
	}
	if cfg.Options() != model.DefaultOptions() {
		t.Fatalf("expected default options, got %+v", cfg.Options())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoadFileOverridesAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "lyrickana.toml")
	content := `
[reading]
dictionary = "UNI"
kanjidic_path = "~/dict/kanjidic2.xml"

[conversion]
keep_katakana = true
merge_sokuon = true
split_with_space = false

[logging]
level = "DEBUG"
format = "json"
dump_dir = "~/dumps"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Reading.Dictionary != "uni" {
		t.Fatalf("expected dictionary normalized to uni, got %q", cfg.Reading.Dictionary)
	}
	if cfg.Reading.KanjidicPath != filepath.Join(tempHome, "dict", "kanjidic2.xml") {
		t.Fatalf("unexpected kanjidic path %q", cfg.Reading.KanjidicPath)
	}
	if cfg.Logging.DumpDir != filepath.Join(tempHome, "dumps") {
		t.Fatalf("unexpected dump dir %q", cfg.Logging.DumpDir)
	}
	opts := cfg.Options()
	if !opts.KeepKatakana || !opts.MergeSokuon || opts.SplitWithSpace {
		t.Fatalf("file values not applied: %+v", opts)
	}
	if !opts.KeepLatin || !opts.MergeYouon {
		t.Fatalf("defaults for unset keys lost: %+v", opts)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"format":  "[logging]\nformat = \"xml\"\n",
		"level":   "[logging]\nlevel = \"loud\"\n",
		"spacing": "[conversion]\nsplit_with_space = false\nspace_latin_internally = true\n",
		"unknown": "[reading]\nengine = \"mecab\"\n",
		"syntax":  "[reading\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCreateSampleMatchesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var sample config.Config
	if err := toml.Unmarshal(data, &sample); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	def := config.Default()
	if sample.Conversion != def.Conversion {
		t.Fatalf("sample conversion %+v differs from defaults %+v", sample.Conversion, def.Conversion)
	}
	if sample.Reading.Dictionary != def.Reading.Dictionary {
		t.Fatalf("sample dictionary %q differs from default %q", sample.Reading.Dictionary, def.Reading.Dictionary)
	}
}

func TestEncode(t *testing.T) {
	cfg := config.Default()
	out, err := config.Encode(&cfg)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	for _, want := range []string{"[reading]", "keep_latin = true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in encoded config:\n%s", want, out)
		}
	}
}
