package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

//go:embed defaults/gradient.yaml
var defaultGradientYAML []byte

// DefaultBounceConfig returns the default bounce scene configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Balls: []BallConfig{
			{Color: "red", RadiusX: 4, RadiusY: 2.5, SpeedX: 0.9, SpeedY: 0.5},
			{Color: "cyan", RadiusX: 3, RadiusY: 2, SpeedX: -0.6, SpeedY: 0.8},
			{Color: "yellow", RadiusX: 2, RadiusY: 1.5, SpeedX: 0.4, SpeedY: -1.1},
		},
		Background: "default",
		ShowHelp:   true,
	}
}

// DefaultOrbitConfig returns the default orbit scene configuration.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Points:     24,
		RadiusX:    0.35,
		RadiusY:    0.3,
		Speed:      0.03,
		Color:      "cyan",
		DepthFade:  true,
		Background: "default",
	}
}

// DefaultGradientConfig returns the default gradient scene configuration.
func DefaultGradientConfig() GradientConfig {
	return GradientConfig{
		Background: "default",
		ScanSpeed:  0.5,
	}
}
