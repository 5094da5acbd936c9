package config_test

import (
	"os"
	"strings"
	"testing"

	"github.com/calderb/inkblot/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "blog.db" {
		t.Fatalf("expected default database path blog.db, got %s", cfg.DatabasePath)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected cookies to default to secure")
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for missing SESSION_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "32") {
		t.Fatalf("expected length error, got %v", err)
	}
}

func TestLoad_BcryptCostBounds(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET", testSecret)

	tests := []struct {
		name    string
		cost    string
		wantErr bool
	}{
		{"minimum", "4", false},
		{"maximum", "14", false},
		{"too low", "3", true},
		{"too high", "15", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tc.cost)
			_, err := config.Load()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET", testSecret)

	if err := os.WriteFile(".env", []byte("PORT=9090\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090 from .env, got %s", cfg.Port)
	}
}
