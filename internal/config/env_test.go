package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FISHNET_TEST_VALUE", "pond")
	if got := GetEnv("FISHNET_TEST_VALUE", "x"); got != "pond" {
		t.Errorf("GetEnv = %q, want pond", got)
	}
	if got := GetEnv("FISHNET_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want fallback", got)
	}
}

func TestGetEnvNumbers(t *testing.T) {
	t.Setenv("FISHNET_TEST_INT", "42")
	t.Setenv("FISHNET_TEST_FLOAT", "2.5")
	t.Setenv("FISHNET_TEST_BAD", "fish")

	if got := GetEnvInt("FISHNET_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("FISHNET_TEST_BAD", 1); got != 1 {
		t.Errorf("GetEnvInt bad = %d, want fallback 1", got)
	}
	if got := GetEnvFloat("FISHNET_TEST_FLOAT", 1); got != 2.5 {
		t.Errorf("GetEnvFloat = %f, want 2.5", got)
	}
	if got := GetEnvFloat("FISHNET_TEST_BAD", 0.5); got != 0.5 {
		t.Errorf("GetEnvFloat bad = %f, want fallback 0.5", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("FISHNET_DOTENV_A=from-file\nFISHNET_DOTENV_B=from-file\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("FISHNET_DOTENV_B", "from-env")
	// t.Setenv restores on cleanup; make sure A is cleared afterwards too.
	t.Setenv("FISHNET_DOTENV_A", "")
	os.Unsetenv("FISHNET_DOTENV_A")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("FISHNET_DOTENV_A"); got != "from-file" {
		t.Errorf("A = %q, want from-file", got)
	}
	if got := os.Getenv("FISHNET_DOTENV_B"); got != "from-env" {
		t.Errorf("B = %q, existing env must win", got)
	}
}
