package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test garden defaults
	if cfg.Garden.Seed == 0 {
		t.Error("expected a non-zero default seed")
	}
	if cfg.Garden.FlowerCount != 2000 {
		t.Errorf("expected 2000 flowers, got %d", cfg.Garden.FlowerCount)
	}
	if cfg.Garden.FieldRadius <= cfg.Garden.ClearRadius {
		t.Error("expected field radius to exceed clear radius")
	}
	if cfg.Garden.BloomStrategy != "surface" {
		t.Errorf("expected bloom strategy 'surface', got %s", cfg.Garden.BloomStrategy)
	}

	// Test audio defaults
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	// Defaults must always validate.
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

garden:
  seed: 42
  flower_count: 500
  field_radius: 18
  clear_radius: 2.5
  bloom_strategy: "layered"
  heart_count: 12
  tap_cooldown: 1.5

sky:
  sun_elevation: 35
  sun_azimuth: 120
  sun_intensity: 0.9

audio:
  master_volume: 0.5
  muted: true

logging:
  level: "debug"
  log_file: "garden.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Garden.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Garden.Seed)
	}
	if cfg.Garden.FlowerCount != 500 {
		t.Errorf("expected 500 flowers, got %d", cfg.Garden.FlowerCount)
	}
	if cfg.Garden.BloomStrategy != "layered" {
		t.Errorf("expected bloom strategy 'layered', got %s", cfg.Garden.BloomStrategy)
	}
	if cfg.Garden.TapCooldown != 1.5 {
		t.Errorf("expected tap cooldown 1.5, got %f", cfg.Garden.TapCooldown)
	}

	if cfg.Sky.SunElevation != 35 {
		t.Errorf("expected sun elevation 35, got %f", cfg.Sky.SunElevation)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Sky.Exposure != Default().Sky.Exposure {
		t.Errorf("expected default exposure, got %f", cfg.Sky.Exposure)
	}

	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("expected master volume 0.5, got %f", cfg.Audio.MasterVolume)
	}
	if !cfg.Audio.Muted {
		t.Error("expected muted to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "garden.log" {
		t.Errorf("expected log file 'garden.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mod     func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero flowers", func(c *Config) { c.Garden.FlowerCount = 0 }, true},
		{"negative clear radius", func(c *Config) { c.Garden.ClearRadius = -1 }, true},
		{"field inside clearing", func(c *Config) { c.Garden.FieldRadius = 1; c.Garden.ClearRadius = 2 }, true},
		{"unknown bloom strategy", func(c *Config) { c.Garden.BloomStrategy = "impressionist" }, true},
		{"negative hearts", func(c *Config) { c.Garden.HeartCount = -1 }, true},
		{"negative cooldown", func(c *Config) { c.Garden.TapCooldown = -0.5 }, true},
		{"zero exposure", func(c *Config) { c.Sky.Exposure = 0 }, true},
		{"volume above one", func(c *Config) { c.Audio.MasterVolume = 1.5 }, true},
		{"zero window", func(c *Config) { c.Graphics.Width = 0 }, true},
		{"layered strategy", func(c *Config) { c.Garden.BloomStrategy = "layered" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := Default()
	cfg.Garden.Seed = 777
	cfg.Garden.FlowerCount = 321

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	reloaded := Default()
	if err := loadFromFile(reloaded, path); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.Garden.Seed != 777 {
		t.Errorf("seed after round trip = %d, want 777", reloaded.Garden.Seed)
	}
	if reloaded.Garden.FlowerCount != 321 {
		t.Errorf("flower count after round trip = %d, want 321", reloaded.Garden.FlowerCount)
	}
}
