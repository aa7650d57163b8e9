// ABOUTME: Tests for configuration loading, defaults, and the backend factory.
// ABOUTME: Uses XDG env overrides so nothing touches the real home directory.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fitpro/fitpro/internal/storage"
)

func TestGetBackendDefault(t *testing.T) {
	c := &Config{}
	if got := c.GetBackend(); got != "sqlite" {
		t.Errorf("Default backend = %q, want sqlite", got)
	}

	c.Backend = "badger"
	if got := c.GetBackend(); got != "badger" {
		t.Errorf("Backend = %q, want badger", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	c := &Config{Backend: "sqlite", DataDir: t.TempDir()}

	repo, err := c.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer repo.Close()

	if _, ok := repo.(*storage.DB); !ok {
		t.Errorf("Expected *storage.DB, got %T", repo)
	}
}

func TestOpenStorageBadger(t *testing.T) {
	c := &Config{Backend: "badger", DataDir: t.TempDir()}

	repo, err := c.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer repo.Close()

	if _, ok := repo.(*storage.DocStore); !ok {
		t.Errorf("Expected *storage.DocStore, got %T", repo)
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	c := &Config{Backend: "mongodb"}
	if _, err := c.OpenStorage(); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := &Config{Backend: "badger", User: "alice"}
	if err := c.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "badger" || loaded.User != "alice" {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}

func TestLoadMissingConfigIsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.GetBackend() != "sqlite" {
		t.Errorf("Missing config should default to sqlite, got %q", c.GetBackend())
	}
}
