package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

const fileName = "arena.yaml"

// Load loads and validates the arena configuration.
// Search order: customPath -> ~/.rps-arena/arena.yaml -> ./configs/arena.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultArenaYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig. It does not validate.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rps-arena", filename)
}

// Validate reports every out-of-range parameter, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		invalid("arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Entity.Size <= 0 {
		invalid("entity size must be positive, got %d", c.Entity.Size)
	}
	if c.Population.Rocks < 0 || c.Population.Papers < 0 || c.Population.Scissors < 0 {
		invalid("population counts must not be negative, got %d/%d/%d",
			c.Population.Rocks, c.Population.Papers, c.Population.Scissors)
	}
	// Bands are width/3 wide; a narrower arena has nowhere to place entities.
	if c.Arena.Width > 0 && c.Arena.Width < 3 && c.Population.Total() > 0 {
		invalid("arena width %d is too narrow for three spawn bands", c.Arena.Width)
	}
	if c.Interaction.Threshold <= 0 {
		invalid("interaction threshold must be positive, got %d", c.Interaction.Threshold)
	}
	switch c.Interaction.Resolution {
	case ResolutionAtomic, ResolutionSequential:
	default:
		invalid("unknown interaction resolution %q", c.Interaction.Resolution)
	}
	if c.Timing.TickRate <= 0 {
		invalid("tick rate must be positive, got %d", c.Timing.TickRate)
	}

	return errors.Join(errs...)
}
