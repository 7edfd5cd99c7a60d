package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tdop.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[parser]
timeout = "250ms"
buffer = 8

[render]
indent = "\t"

[log]
verbosity = 2
file = "tdop.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Parser.Timeout.Duration != 250*time.Millisecond {
		t.Errorf("timeout = %s, want 250ms", cfg.Parser.Timeout)
	}
	if cfg.Parser.Buffer != 8 {
		t.Errorf("buffer = %d, want 8", cfg.Parser.Buffer)
	}
	if cfg.Render.Indent != "\t" {
		t.Errorf("indent = %q, want tab", cfg.Render.Indent)
	}
	if cfg.Log.Verbosity != 2 || cfg.Log.File != "tdop.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "[render]\nindent = \"  \"\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Parser != def.Parser {
		t.Errorf("parser = %+v, want defaults %+v", cfg.Parser, def.Parser)
	}
	if cfg.Render.Indent != "  " {
		t.Errorf("indent = %q", cfg.Render.Indent)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Parser.Timeout.Duration != 5*time.Second {
		t.Errorf("timeout = %s, want 5s", cfg.Parser.Timeout)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad duration", "[parser]\ntimeout = \"soon\"\n", "soon"},
		{"zero timeout", "[parser]\ntimeout = \"0s\"\n", "timeout must be positive"},
		{"negative buffer", "[parser]\nbuffer = -1\n", "buffer must not be negative"},
		{"unknown key", "[parser]\nlookahead = 2\n", "unknown key parser.lookahead"},
		{"syntax", "[parser\n", "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for explicit missing file")
	}
}
