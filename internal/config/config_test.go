package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-at-least-16-chars!!")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Address != ":9090" {
		t.Errorf("address = %q, want %q", cfg.HTTPServer.Address, ":9090")
	}
	if cfg.Auth.TokenTTL != 3*time.Hour {
		t.Errorf("token ttl = %v, want 3h default", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("bcrypt cost = %d, want 12 default", cfg.Auth.BcryptCost)
	}
	if cfg.Env != "local" {
		t.Errorf("env = %q, want %q default", cfg.Env, "local")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(""); err == nil {
		t.Fatal("Load() without JWT_SECRET should fail")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
env: prod
db:
  path: /var/lib/staffdesk/staffdesk.db
http_server:
  address: ":8081"
  read_timeout: 5s
auth:
  jwt_secret: "file-secret-at-least-16-chars"
  token_ttl: 1h
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("env = %q, want %q", cfg.Env, "prod")
	}
	if cfg.HTTPServer.Address != ":8081" {
		t.Errorf("address = %q, want %q", cfg.HTTPServer.Address, ":8081")
	}
	if cfg.HTTPServer.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %v, want 5s", cfg.HTTPServer.ReadTimeout)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("token ttl = %v, want 1h", cfg.Auth.TokenTTL)
	}
}
