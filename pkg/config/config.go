package config

import (
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
	"slices"
)

const (
	AppName    = "ezoverlay"
	EnvPrefix  = "EZOVERLAY"
	configName = "config"
	configType = "yaml"
)

const (
	StoreMemory = "memory"
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Debug        bool     `mapstructure:"debug"`
	Opacity      float64  `mapstructure:"opacity"`
	ClickThrough bool     `mapstructure:"click_through"`
	ToggleHotkey string   `mapstructure:"toggle_hotkey"`
	LayerHotkeys bool     `mapstructure:"layer_hotkeys"`
	Store        string   `mapstructure:"store"`
	ExportPaths  []string `mapstructure:"export_paths"`
	Watch        bool     `mapstructure:"watch"`
}

func Default() Config {
	return Config{
		Opacity:      0.85,
		ClickThrough: true,
		ToggleHotkey: "ctrl+alt+super+l",
		LayerHotkeys: true,
		Store:        StoreSQLite,
		ExportPaths:  []string{ImportPath(), "keymap.json", "../keymap.json"},
		Watch:        true,
	}
}

// Dir is where config.yaml is looked up first.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir holds the imported export and the settings stores.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// ImportPath is where the import command keeps the active export.
func ImportPath() string {
	return filepath.Join(DataDir(), "keymap.json")
}

// LogPath is where the TUI writes its log.
func LogPath() (string, error) {
	return xdg.StateFile(filepath.Join(AppName, AppName+".log"))
}

// SettingsPath returns the settings file for the given store backend.
func SettingsPath(store string) string {
	switch store {
	case StoreJSON:
		return filepath.Join(DataDir(), "settings.json")
	default:
		return filepath.Join(DataDir(), "settings.db")
	}
}

func newViper(dirs []string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("debug", def.Debug)
	v.SetDefault("opacity", def.Opacity)
	v.SetDefault("click_through", def.ClickThrough)
	v.SetDefault("toggle_hotkey", def.ToggleHotkey)
	v.SetDefault("layer_hotkeys", def.LayerHotkeys)
	v.SetDefault("store", def.Store)
	v.SetDefault("export_paths", def.ExportPaths)
	v.SetDefault("watch", def.Watch)

	return v
}

// Load reads config.yaml from dirs, or from Dir and the working directory
// when none are given. A missing file is not an error.
func Load(dirs ...string) (*Config, error) {
	if len(dirs) == 0 {
		dirs = []string{Dir(), "."}
	}

	v := newViper(dirs)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Opacity < 0.2 || c.Opacity > 1.0 {
		return fmt.Errorf("%w: opacity %.2f not within 0.2-1.0", ErrInvalid, c.Opacity)
	}
	if !slices.Contains([]string{StoreMemory, StoreJSON, StoreSQLite}, c.Store) {
		return fmt.Errorf("%w: unknown store %q", ErrInvalid, c.Store)
	}
	if len(c.ExportPaths) == 0 {
		return fmt.Errorf("%w: no export paths", ErrInvalid)
	}
	return nil
}

// Save writes cfg to filename, or to config.yaml in Dir when filename is
// empty.
func Save(cfg *Config, filename string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if filename == "" {
		filename = filepath.Join(Dir(), configName+"."+configType)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.Set("debug", cfg.Debug)
	v.Set("opacity", cfg.Opacity)
	v.Set("click_through", cfg.ClickThrough)
	v.Set("toggle_hotkey", cfg.ToggleHotkey)
	v.Set("layer_hotkeys", cfg.LayerHotkeys)
	v.Set("store", cfg.Store)
	v.Set("export_paths", cfg.ExportPaths)
	v.Set("watch", cfg.Watch)

	if err := v.WriteConfigAs(filename); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
