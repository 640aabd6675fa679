package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return path
}

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestLoadTuningPartialOverride(t *testing.T) {
	path := writeTuning(t, "baseSpeed: 4.5\nmaxLives: 5\n")

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tuning.BaseSpeed != 4.5 || tuning.MaxLives != 5 {
		t.Errorf("overrides not applied: %+v", tuning)
	}
	if tuning.FishSize != FishSize || tuning.PlayWidth != PlayWidth {
		t.Errorf("defaults lost: %+v", tuning)
	}
}

func TestLoadTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"narrow pond", "playWidth: 150\n", "too small"},
		{"zero speed", "baseSpeed: 0\n", "base speed"},
		{"no lives", "maxLives: 0\n", "max lives"},
		{"negative margin", "marginLeft: -1\n", "margins"},
		{"bad yaml", "baseSpeed: [1, 2\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTuning(writeTuning(t, tt.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestResolveTuning(t *testing.T) {
	tuning, err := ResolveTuning("")
	if err != nil || tuning != DefaultTuning() {
		t.Fatalf("empty path: %+v, %v", tuning, err)
	}

	tuning, err = ResolveTuning(writeTuning(t, "fishSize: 80\n"))
	if err != nil || tuning.FishSize != 80 {
		t.Fatalf("file path: %+v, %v", tuning, err)
	}
}
