package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/servicehall/hallkeeper/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
project_name = "Test Hall"
static_dir = "/srv/static"

[server]
listen_addr = "127.0.0.1:9090"

[logging]
dir = "/var/log/hallkeeper"
level = "debug"

[db]
path = "/var/lib/hallkeeper/records.db"

[[admin_keys]]
username = "alice"
key = "alpha-secret"

[[admin_keys]]
username = "bob"
key = "bravo-secret"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ProjectName != "Test Hall" {
		t.Errorf("project_name = %q", cfg.ProjectName)
	}
	if cfg.Server.ListenAddr != "127.0.0.1:9090" {
		t.Errorf("listen_addr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
	if cfg.DB.Path != "/var/lib/hallkeeper/records.db" {
		t.Errorf("db path = %q", cfg.DB.Path)
	}
	if len(cfg.AdminKeys) != 2 || cfg.AdminKeys[1].Username != "bob" {
		t.Errorf("admin_keys = %+v", cfg.AdminKeys)
	}
}

func TestLoad_DefaultsFillMissingFields(t *testing.T) {
	path := writeConfig(t, `project_name = "Minimal"`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := config.Default()
	if cfg.Server.ListenAddr != def.Server.ListenAddr {
		t.Errorf("expected default listen addr, got %q", cfg.Server.ListenAddr)
	}
	if cfg.DB.Path != def.DB.Path {
		t.Errorf("expected default db path, got %q", cfg.DB.Path)
	}
	if len(cfg.AdminKeys) != 0 {
		t.Errorf("expected no admin keys, got %+v", cfg.AdminKeys)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoad_RejectsIncompleteAdminKey(t *testing.T) {
	path := writeConfig(t, `
[[admin_keys]]
username = "alice"
key = ""
`)
	if _, err := config.Load(path); err == nil {
		t.Error("expected an error for an admin key without a secret")
	}
}

func TestLoad_RejectsBadTOML(t *testing.T) {
	path := writeConfig(t, `project_name = `)
	if _, err := config.Load(path); err == nil {
		t.Error("expected a parse error")
	}
}
