// Package config handles scene configuration loading and management.
package config

import "fmt"

// Config holds all scene settings. It is constructed once at boot and
// treated as read-only afterwards; every component receives the same
// pointer and none may mutate it.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Garden   GardenConfig   `yaml:"garden"`
	Sky      SkyConfig      `yaml:"sky"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// GardenConfig holds the procedural generation settings.
type GardenConfig struct {
	Seed           uint32  `yaml:"seed"`
	FlowerCount    int     `yaml:"flower_count"`
	FieldRadius    float32 `yaml:"field_radius"`
	ClearRadius    float32 `yaml:"clear_radius"`
	PositionJitter float32 `yaml:"position_jitter"`
	BloomStrategy  string  `yaml:"bloom_strategy"` // "surface" or "layered"
	HeartCount     int     `yaml:"heart_count"`
	TapCooldown    float64 `yaml:"tap_cooldown"` // seconds
}

// SkyConfig holds the sky shading constants, consumed every frame by the
// sky shader and once at boot to derive the sun direction.
type SkyConfig struct {
	TopColor     [3]float32 `yaml:"top_color"`
	HorizonColor [3]float32 `yaml:"horizon_color"`
	BottomColor  [3]float32 `yaml:"bottom_color"`

	SunElevation float32 `yaml:"sun_elevation"` // degrees above horizon
	SunAzimuth   float32 `yaml:"sun_azimuth"`   // degrees around Y
	SunIntensity float32 `yaml:"sun_intensity"`
	SunSize      float32 `yaml:"sun_size"` // dot-product threshold; closer to 1 = smaller disk

	Glow           float32 `yaml:"glow"`            // narrow disk glow strength
	Scatter        float32 `yaml:"scatter"`         // wide atmospheric glow strength
	HorizonFalloff float32 `yaml:"horizon_falloff"` // haze sharpness exponent
	Exposure       float32 `yaml:"exposure"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	Muted        bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Garden: GardenConfig{
			Seed:           20240214,
			FlowerCount:    2000,
			FieldRadius:    26,
			ClearRadius:    3.5,
			PositionJitter: 0.5,
			BloomStrategy:  "surface",
			HeartCount:     40,
			TapCooldown:    0.6,
		},
		Sky: SkyConfig{
			TopColor:       [3]float32{0.35, 0.52, 0.86},
			HorizonColor:   [3]float32{0.96, 0.72, 0.60},
			BottomColor:    [3]float32{0.82, 0.66, 0.58},
			SunElevation:   18,
			SunAzimuth:     215,
			SunIntensity:   1.1,
			SunSize:        0.9985,
			Glow:           0.55,
			Scatter:        0.35,
			HorizonFalloff: 5.5,
			Exposure:       1.05,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			Muted:        false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the configured values for degenerate geometry parameters.
// Any error here is boot-fatal: the scene is never built from a config that
// would produce broken meshes.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	g := c.Garden
	if g.FlowerCount <= 0 {
		return fmt.Errorf("config: flower_count %d must be positive", g.FlowerCount)
	}
	if g.ClearRadius < 0 {
		return fmt.Errorf("config: clear_radius %g must not be negative", g.ClearRadius)
	}
	if g.FieldRadius <= g.ClearRadius {
		return fmt.Errorf("config: field_radius %g must exceed clear_radius %g", g.FieldRadius, g.ClearRadius)
	}
	if g.PositionJitter < 0 {
		return fmt.Errorf("config: position_jitter %g must not be negative", g.PositionJitter)
	}
	if g.BloomStrategy != "surface" && g.BloomStrategy != "layered" {
		return fmt.Errorf("config: bloom_strategy %q, want \"surface\" or \"layered\"", g.BloomStrategy)
	}
	if g.HeartCount < 0 {
		return fmt.Errorf("config: heart_count %d must not be negative", g.HeartCount)
	}
	if g.TapCooldown < 0 {
		return fmt.Errorf("config: tap_cooldown %g must not be negative", g.TapCooldown)
	}
	if c.Sky.SunIntensity < 0 || c.Sky.Exposure <= 0 {
		return fmt.Errorf("config: sun_intensity %g / exposure %g", c.Sky.SunIntensity, c.Sky.Exposure)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("config: master_volume %g outside [0, 1]", c.Audio.MasterVolume)
	}
	return nil
}
