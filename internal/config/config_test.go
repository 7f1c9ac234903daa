package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			content: `hash:
  seed: -1
  remove_whitespaces: true
storage:
  type: sqlite
  sqlite_path: /tmp/fp.db
log:
  format: json
  level: debug
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Hash.Seed != -1 {
					t.Errorf("expected seed -1, got %d", cfg.Hash.Seed)
				}
				if !cfg.Hash.RemoveWhitespaces {
					t.Error("expected remove_whitespaces true")
				}
				if cfg.Storage.Type != StorageSQLite {
					t.Errorf("expected sqlite storage, got %q", cfg.Storage.Type)
				}
				if cfg.Storage.SQLitePath != "/tmp/fp.db" {
					t.Errorf("expected sqlite path /tmp/fp.db, got %q", cfg.Storage.SQLitePath)
				}
				if cfg.Log.Format != "json" || cfg.Log.Level != "debug" {
					t.Errorf("unexpected log config %+v", cfg.Log)
				}
			},
		},
		{
			name:    "empty uses defaults",
			content: ``,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Hash.Seed != 0 || cfg.Hash.RemoveWhitespaces {
					t.Errorf("unexpected hash config %+v", cfg.Hash)
				}
				if cfg.Storage.Type != StorageMemory {
					t.Errorf("expected memory storage, got %q", cfg.Storage.Type)
				}
				if cfg.Log.Format != "text" || cfg.Log.Level != "info" {
					t.Errorf("unexpected log config %+v", cfg.Log)
				}
			},
		},
		{
			name: "unknown storage falls back to memory",
			content: `storage:
  type: redis
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Storage.Type != StorageMemory {
					t.Errorf("expected memory storage, got %q", cfg.Storage.Type)
				}
			},
		},
		{
			name: "sqlite without path",
			content: `storage:
  type: sqlite
`,
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: `hash: [invalid`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content))

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tmpFile, []byte("hash:\n  seed: 42\n"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Hash.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Hash.Seed)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}
