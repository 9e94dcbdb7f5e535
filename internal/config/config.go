// Package config provides YAML-based scene configuration loading for
// the demo platform.
package config

// BounceConfig contains all configuration for the bounce scene.
type BounceConfig struct {
	Balls      []BallConfig `yaml:"balls"`
	Background string       `yaml:"background"`
	ShowHelp   bool         `yaml:"show_help"`
}

// BallConfig defines one ball in the bounce scene.
type BallConfig struct {
	Color   string  `yaml:"color"`
	RadiusX float64 `yaml:"radius_x"`
	RadiusY float64 `yaml:"radius_y"`
	SpeedX  float64 `yaml:"speed_x"`
	SpeedY  float64 `yaml:"speed_y"`
}

// OrbitConfig contains all configuration for the orbit scene.
type OrbitConfig struct {
	Points     int     `yaml:"points"`     // dots on the ring
	RadiusX    float64 `yaml:"radius_x"`   // horizontal radius as a fraction of the canvas
	RadiusY    float64 `yaml:"radius_y"`   // vertical radius as a fraction of the canvas
	Speed      float64 `yaml:"speed"`      // radians per tick
	Color      string  `yaml:"color"`      // dot color name
	DepthFade  bool    `yaml:"depth_fade"` // scale intensity by orbital depth
	Background string  `yaml:"background"` // canvas background color name
}

// GradientConfig contains all configuration for the gradient scene.
type GradientConfig struct {
	Background string  `yaml:"background"`
	ScanSpeed  float64 `yaml:"scan_speed"` // sub-pixel rows per tick for the sweep line
}
