package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"docpane/internal/eventbus"
	"docpane/internal/theme"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	DocsDir    string     `toml:"docs_dir"`
	Theme      string     `toml:"theme"` // "auto", "light" or "dark"
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowNumbers  bool `toml:"show_numbers"`
	RememberLast bool `toml:"remember_last"`
	LastIndex    int  `toml:"last_index"` // restored when remember_last is set
}

// FallbackName is the per-directory config file looked for in the
// docs dir when no user-level config exists
const FallbackName = ".docpane.toml"

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	SetFallbackDir(dir string)
}

// configService is the concrete implementation
type configService struct {
	bus          eventbus.EventBus
	filePath     string
	fallbackPath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	docpaneDir := filepath.Join(configDir, "docpane")
	os.MkdirAll(docpaneDir, 0o755)

	return &configService{
		filePath: filepath.Join(docpaneDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// SetFallbackDir points the service at a docs directory whose
// .docpane.toml is consulted when the user-level config is absent
func (cs *configService) SetFallbackDir(dir string) {
	cs.fallbackPath = filepath.Join(dir, FallbackName)
}

// Load loads the configuration from the default path, trying the
// docs-dir fallback before giving up and returning defaults
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		if cs.fallbackPath != "" {
			if _, ferr := os.Stat(cs.fallbackPath); ferr == nil {
				cfg, lerr := cs.LoadFromPath(cs.fallbackPath)
				if lerr != nil {
					return nil, lerr
				}
				cs.publishLoaded(cfg)
				return cfg, nil
			}
		}
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			DocsDir: cfg.DocsDir,
			Theme:   cfg.Theme,
		})
	}
}

// normalize fixes up values a hand-edited file may have broken
func (c *Config) normalize() {
	switch c.Theme {
	case theme.PrefAuto, theme.PrefLight, theme.PrefDark:
	default:
		c.Theme = theme.PrefAuto
	}
	if c.DocsDir == "" {
		c.DocsDir = defaultDocsDir()
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		DocsDir: defaultDocsDir(),
		Theme:   theme.PrefAuto,
		UISettings: UISettings{
			ShowNumbers:  true,
			RememberLast: true,
		},
	}
}

func defaultDocsDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "docs"
	}
	return filepath.Join(wd, "docs")
}
