package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBounce loads the bounce scene configuration.
// Search order: customPath -> ~/.halfpix/configs/bounce.yaml -> ./configs/bounce.yaml -> embedded default
func LoadBounce(customPath string) (BounceConfig, error) {
	var cfg BounceConfig
	if err := load("bounce.yaml", customPath, defaultBounceYAML, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Balls == nil && customPath == "" {
		cfg = DefaultBounceConfig()
	}
	return cfg, nil
}

// LoadOrbit loads the orbit scene configuration.
// Search order: customPath -> ~/.halfpix/configs/orbit.yaml -> ./configs/orbit.yaml -> embedded default
func LoadOrbit(customPath string) (OrbitConfig, error) {
	var cfg OrbitConfig
	if err := load("orbit.yaml", customPath, defaultOrbitYAML, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Points == 0 && customPath == "" {
		cfg = DefaultOrbitConfig()
	}
	return cfg, nil
}

// LoadGradient loads the gradient scene configuration.
// Search order: customPath -> ~/.halfpix/configs/gradient.yaml -> ./configs/gradient.yaml -> embedded default
func LoadGradient(customPath string) (GradientConfig, error) {
	var cfg GradientConfig
	if err := load("gradient.yaml", customPath, defaultGradientYAML, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ScanSpeed == 0 && customPath == "" {
		cfg = DefaultGradientConfig()
	}
	return cfg, nil
}

// load resolves one config file through the standard search order.
// A custom path is authoritative: read or parse failures there are
// reported. The fallback locations fail soft down to the embedded
// default.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	//nolint:errcheck // Embedded defaults are known-good YAML
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".halfpix", "configs", filename)
}
