package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup is linux-only")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if dir != filepath.Join(xdg, "rsx-arm") {
		t.Errorf("Dir() = %q, want under %q", dir, xdg)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Path() = %q, should end with config.yaml", path)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if len(cfg.CameraTopics) != 3 || cfg.CameraTopics[0] != "/camera/image_raw" {
		t.Errorf("CameraTopics = %v", cfg.CameraTopics)
	}
}

func TestDefaultDoesNotAliasTopics(t *testing.T) {
	cfg := Default()
	cfg.CameraTopics[0] = "/changed"
	if DefaultCameraTopics[0] != "/camera/image_raw" {
		t.Error("Default() must copy DefaultCameraTopics")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		Version:      1,
		Stylesheet:   "/etc/rsx/styles.yaml",
		CameraTopics: []string{"/wrist_cam/image_raw"},
		LogLevel:     "debug",
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# RSX Arm control panel settings") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Stylesheet != cfg.Stylesheet || loaded.LogLevel != "debug" {
		t.Errorf("loaded = %+v", loaded)
	}
	if len(loaded.CameraTopics) != 1 || loaded.CameraTopics[0] != "/wrist_cam/image_raw" {
		t.Errorf("CameraTopics = %v", loaded.CameraTopics)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "version: [", "failed to parse"},
		{"wrong version", "version: 2\n", "unsupported config version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadWithoutVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != CurrentVersion || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v, want current version with debug level", cfg)
	}
}

func TestLoadFillsEmptyTopics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.CameraTopics) != len(DefaultCameraTopics) {
		t.Errorf("CameraTopics = %v, want defaults", cfg.CameraTopics)
	}
}
