package config

import (
	_ "embed"
)

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

//go:embed defaults/app.yaml
var defaultAppYAML []byte

// DefaultLanesConfig returns the default Lane Racer configuration.
func DefaultLanesConfig() LanesConfig {
	return LanesConfig{
		Lanes: LanesLayout{
			Count:         3,
			ObstacleCount: 3,
		},
		Timing: LanesTiming{
			TickIntervalMS: 30,
		},
		Speed: LanesSpeed{
			Base:     6,
			PerPoint: 0.3,
		},
		Spawn: LanesSpawn{
			MinY: -600,
			MaxY: -100,
		},
		Field: LanesField{
			Height:       844,
			PlayerOffset: 100,
		},
		Entity: LanesEntity{
			Width:  60,
			Height: 100,
		},
	}
}

// DefaultAppConfig returns the default application settings.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Appearance: AppearanceConfig{
			DarkMode: false,
		},
		Notifications: NotificationsConfig{
			Push:  true,
			Email: false,
		},
		Slideshow: SlideshowConfig{
			IntervalSeconds: 6,
		},
		Sound: SoundConfig{
			Volume: 0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "lanes":
		return defaultLanesYAML
	case "app":
		return defaultAppYAML
	default:
		return nil
	}
}
