package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "log_level: debug\nlog_format: json\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := loadConfigFrom(path)
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level: got %q want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("log_format: got %q want json", cfg.LogFormat)
	}
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	cfg := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if cfg != (Config{}) {
		t.Fatalf("missing file should give a zero config, got %+v", cfg)
	}
}

func TestLoadConfigFromBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := loadConfigFrom(path)
	if cfg != (Config{}) {
		t.Fatalf("unparsable file should give a zero config, got %+v", cfg)
	}
}
