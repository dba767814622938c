// Package config loads finecode configuration from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration when --config is not given.
const DefaultPath = ".finecode/config.yaml"

// Config holds all finecode configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Carousel  CarouselConfig  `yaml:"carousel"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	UI        UIConfig        `yaml:"ui"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "finecode",
		Version: "1.0.0",

		Carousel: CarouselConfig{
			Interval: "3s",
		},

		Portfolio: PortfolioConfig{
			Company: "Fine Code",
			Projects: []Project{
				{
					ID:          "portfolio-site",
					Title:       "Portfolio Site",
					Description: "The site you are looking at: a **React** front end with an auto-advancing screenshot carousel.",
					Images: []string{
						"images/portfolio/landing.png",
						"images/portfolio/projects.png",
						"images/portfolio/contact.png",
					},
				},
			},
		},

		UI: *DefaultUIConfig(),

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FINECODE_CAROUSEL_INTERVAL"); v != "" {
		c.Carousel.Interval = v
	}
	if os.Getenv("FINECODE_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
	if os.Getenv("FINECODE_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Carousel.Validate(); err != nil {
		return err
	}
	if err := c.Portfolio.Validate(); err != nil {
		return err
	}
	return c.UI.Validate()
}
