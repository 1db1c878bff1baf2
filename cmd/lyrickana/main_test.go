package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestToggleFromStdin(t *testing.T) {
	out, _, err := runCLI(t, []string{"toggle", "wa"}, "わたしは\n")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if out != "はたしわ\n" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, _, err := runCLI(t, []string{"toggle", "xx"}, "は"); err == nil {
		t.Fatal("expected error for unknown toggle")
	}
}

func TestToggleIgnoresBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("nonsense = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, err := runCLI(t, []string{"--config", path, "toggle", "he"}, "へや")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if out != "えや" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "lyrickana", "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample config")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse an existing file")
	}

	out, _, err = runCLI(t, []string{"--config", target, "config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "loaded from "+target)
	requireContains(t, out, "[conversion]")
}

func TestConvertKana(t *testing.T) {
	out, _, err := runCLI(t, []string{"convert", "--merge-sokuon", "--split"}, "かっこ\n\nかっこ")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "かっ こ\n\nかっ こ\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertFromFileWithToggleAndDump(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lyrics.txt")
	if err := os.WriteFile(input, []byte("こんにちは\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	dumpDir := filepath.Join(dir, "dumps")

	out, _, err := runCLI(t, []string{"convert", "--split=false", "--wa", "--dump-dir", dumpDir, input}, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "こんにちわ\n" {
		t.Fatalf("unexpected output %q", out)
	}

	dumps, err := filepath.Glob(filepath.Join(dumpDir, "*.json"))
	if err != nil || len(dumps) != 1 {
		t.Fatalf("expected one dump, got %v (%v)", dumps, err)
	}
	data, err := os.ReadFile(dumps[0])
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	requireContains(t, string(data), `"request_id"`)
}

func TestConvertMissingFile(t *testing.T) {
	_, _, err := runCLI(t, []string{"convert", filepath.Join(t.TempDir(), "missing.txt")}, "")
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestInspectShowsSpans(t *testing.T) {
	out, _, err := runCLI(t, []string{"inspect"}, "DTMとキャット\n")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "latin:DTM")
	requireContains(t, out, "DTM|と|きゃ|っ|と")
}
