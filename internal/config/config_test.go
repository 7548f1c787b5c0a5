package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("MOUSETRACK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MOUSETRACK_DEVICE", "")
	t.Setenv("MOUSETRACK_RECORD_SECONDS", "")
	t.Setenv("MOUSETRACK_PLOT_OUTPUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tracking.RecordSeconds != 3 {
		t.Errorf("RecordSeconds = %d, want default 3", cfg.Tracking.RecordSeconds)
	}
	if cfg.Tracking.GracePeriod().Milliseconds() != 1000 {
		t.Errorf("GracePeriod = %v, want 1s", cfg.Tracking.GracePeriod())
	}
	if cfg.Plot.Output != "mouse-path.png" {
		t.Errorf("Plot.Output = %q, want default", cfg.Plot.Output)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("device:\n  path: /dev/input/event4\ntracking:\n  record_seconds: 10\n  grace_period_ms: 250\nplot:\n  output: out.png\n  keep_svg: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOUSETRACK_CONFIG", path)
	t.Setenv("MOUSETRACK_DEVICE", "")
	t.Setenv("MOUSETRACK_RECORD_SECONDS", "")
	t.Setenv("MOUSETRACK_PLOT_OUTPUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Path != "/dev/input/event4" {
		t.Errorf("Device.Path = %q", cfg.Device.Path)
	}
	if cfg.Tracking.RecordSeconds != 10 {
		t.Errorf("RecordSeconds = %d, want 10", cfg.Tracking.RecordSeconds)
	}
	if cfg.Tracking.GracePeriod().Milliseconds() != 250 {
		t.Errorf("GracePeriod = %v, want 250ms", cfg.Tracking.GracePeriod())
	}
	if !cfg.Plot.KeepSVG {
		t.Error("KeepSVG not loaded")
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("device:\n  path: /dev/input/event4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOUSETRACK_CONFIG", path)
	t.Setenv("MOUSETRACK_DEVICE", "/dev/input/event8")
	t.Setenv("MOUSETRACK_RECORD_SECONDS", "7")
	t.Setenv("MOUSETRACK_PLOT_OUTPUT", "override.png")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Path != "/dev/input/event8" {
		t.Errorf("Device.Path = %q, want env override", cfg.Device.Path)
	}
	if cfg.Tracking.RecordSeconds != 7 {
		t.Errorf("RecordSeconds = %d, want 7", cfg.Tracking.RecordSeconds)
	}
	if cfg.Plot.Output != "override.png" {
		t.Errorf("Plot.Output = %q, want override.png", cfg.Plot.Output)
	}
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("MOUSETRACK_CONFIG", path)
	t.Setenv("MOUSETRACK_DEVICE", "")
	t.Setenv("MOUSETRACK_RECORD_SECONDS", "")
	t.Setenv("MOUSETRACK_PLOT_OUTPUT", "")

	cfg := Defaults()
	cfg.Device.Path = "/dev/input/event5"
	cfg.Tracking.RecordSeconds = 12
	cfg.Plot.Output = "session.png"
	if err := WriteConfigFile(cfg); err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Device.Path != "/dev/input/event5" {
		t.Errorf("Device.Path = %q", loaded.Device.Path)
	}
	if loaded.Tracking.RecordSeconds != 12 {
		t.Errorf("RecordSeconds = %d, want 12", loaded.Tracking.RecordSeconds)
	}
	if loaded.Plot.Output != "session.png" {
		t.Errorf("Plot.Output = %q, want session.png", loaded.Plot.Output)
	}
}

func TestWriteConfigFileCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	t.Setenv("MOUSETRACK_CONFIG", path)

	if err := WriteConfigFile(Defaults()); err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOUSETRACK_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("expected a parse error")
	}
}
