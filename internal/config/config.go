package config

import (
	"os"
	"path/filepath"

	"swatch/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the swatch tool configuration. It controls where the
// token record is exported, which override file is layered on top of the
// built-in tokens, and how the terminal commands render.
type Config struct {
	Export struct {
		Path   string `yaml:"path"`   // Output file ("" means stdout)
		Format string `yaml:"format"` // "json" or "js"
	} `yaml:"export"`
	Overrides string `yaml:"overrides"` // Theme override YAML file ("" disables)
	Content   struct {
		Root string `yaml:"root"` // Root directory for content scanning
	} `yaml:"content"`
	WatchMode struct {
		Enabled  bool `yaml:"enabled"`  // Re-export on override file changes
		Debounce int  `yaml:"debounce"` // Debounce window in milliseconds
	} `yaml:"watch_mode"`
	Terminal struct {
		Theme string `yaml:"theme"` // Terminal palette for show/browse output
	} `yaml:"terminal"`
}

// LoadConfig loads configuration from the default location
// (~/.config/swatch/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "swatch", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path. A missing
// file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewFileError("cannot read config file", path, errors.FileAccessDenied, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, errors.NewConfigError("cannot parse config file", path, errors.InvalidConfig, err)
	}

	// Merge over defaults so unset fields keep their default values.
	if loaded.Export.Path != "" {
		cfg.Export.Path = loaded.Export.Path
	}
	if loaded.Export.Format != "" {
		cfg.Export.Format = loaded.Export.Format
	}
	if loaded.Overrides != "" {
		cfg.Overrides = loaded.Overrides
	}
	if loaded.Content.Root != "" {
		cfg.Content.Root = loaded.Content.Root
	}
	cfg.WatchMode.Enabled = loaded.WatchMode.Enabled
	if loaded.WatchMode.Debounce > 0 {
		cfg.WatchMode.Debounce = loaded.WatchMode.Debounce
	}
	if loaded.Terminal.Theme != "" {
		cfg.Terminal.Theme = loaded.Terminal.Theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Export.Path = "" // stdout
	cfg.Export.Format = "json"
	cfg.Overrides = ""
	cfg.Content.Root = "."
	cfg.WatchMode.Enabled = false
	cfg.WatchMode.Debounce = 250
	cfg.Terminal.Theme = "default"
	return cfg
}

// New creates a configuration with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the given path, creating parent
// directories as needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewFileError("cannot create config directory", filepath.Dir(path), errors.FileAccessDenied, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewConfigError("cannot marshal config", path, errors.InvalidConfig, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewFileError("cannot write config file", path, errors.FileAccessDenied, err)
	}
	return nil
}

// Validate checks the configuration for invalid settings.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Export.Format != "json" && c.Export.Format != "js" {
		return errors.NewConfigError("export format must be json or js", "export.format", errors.InvalidConfig, nil)
	}

	if c.WatchMode.Debounce < 0 {
		return errors.NewConfigError("debounce must be >= 0 milliseconds", "watch_mode.debounce", errors.InvalidConfig, nil)
	}

	if c.WatchMode.Enabled && c.Overrides == "" {
		return errors.NewConfigError("watch mode requires an overrides file", "watch_mode.enabled", errors.InvalidConfig, nil)
	}

	if _, ok := terminalThemes[c.Terminal.Theme]; !ok {
		return errors.NewConfigError("unknown terminal theme", "terminal.theme", errors.InvalidConfig, nil)
	}

	return nil
}
