package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "planner.db"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	PrevMonth  string `toml:"prev_month"`
	NextMonth  string `toml:"next_month"`
	Today      string `toml:"today"`
	Search     string `toml:"search"`
	CycleWeeks string `toml:"cycle_weeks"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	NextField  string `toml:"next_field"`
}

type Config struct {
	DBPath       string `toml:"db_path"`
	DefaultWeeks int    `toml:"default_weeks_window"`
	Keys         Keymap `toml:"keys"`
}

// ResolveConfigPath prefers a config.toml next to the binary's working
// directory, falling back to the user config dir.
func ResolveConfigPath() string {
	if _, err := os.Stat(DefaultConfigFileName); err == nil {
		return DefaultConfigFileName
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "plancal", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.DefaultWeeks < 0 || cfg.DefaultWeeks > 3 {
		cfg.DefaultWeeks = 0
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:       DefaultDBName,
		DefaultWeeks: 0,
		Keys: Keymap{
			Quit:       "q",
			PrevMonth:  "[",
			NextMonth:  "]",
			Today:      "t",
			Search:     "/",
			CycleWeeks: "w",
			Confirm:    "enter",
			Cancel:     "esc",
			NextField:  "tab",
		},
	}
}
