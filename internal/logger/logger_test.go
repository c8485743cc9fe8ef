package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchkit.log")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = path

	l, closer, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Info().Str("fixture", "closure").Msg("fixture written")
	l.Debug().Msg("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"fixture":"closure"`) || !strings.Contains(out, `"message":"fixture written"`) {
		t.Errorf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %s", out)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"level", Config{Level: "loud", Format: "json"}},
		{"format", Config{Level: "info", Format: "xml"}},
	}
	for _, tt := range tests {
		if _, _, err := New(tt.cfg); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestInitSetsGlobalLogger(t *testing.T) {
	closer, err := Init(DefaultConfig())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer closer.Close()
	if Logger.GetLevel().String() != "info" {
		t.Errorf("expected info level, got %s", Logger.GetLevel())
	}
}
