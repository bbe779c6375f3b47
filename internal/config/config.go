package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultAPIURL         = "http://localhost:4000/api/todos"
	DefaultStateName      = "todo-state.db"
	DefaultLogName        = "todo.log"
)

// DefaultTimeout of zero leaves requests without a deadline.
const DefaultTimeout time.Duration = 0

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	Copy    string `toml:"copy"`
}

type Config struct {
	APIURL         string `toml:"api_url"`
	StatePath      string `toml:"state_path"`
	LogPath        string `toml:"log_path"`
	LogLevel       string `toml:"log_level"`
	RequestTimeout string `toml:"request_timeout"`
	Keys           Keymap `toml:"keys"`
}

// Timeout parses RequestTimeout. Blank, zero, negative or unparsable
// values all mean no timeout.
func (c Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

// ResolveConfigPath prefers $XDG_CONFIG_HOME/tada/config.toml, then
// ~/.config/tada/config.toml, then the working directory.
func ResolveConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tada", DefaultConfigFileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "tada", DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
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
	backfill(&cfg, defaultConfig(filepath.Dir(path)))
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func backfill(cfg *Config, def Config) {
	if cfg.APIURL == "" {
		cfg.APIURL = def.APIURL
	}
	if cfg.StatePath == "" {
		cfg.StatePath = def.StatePath
	}
	if cfg.LogPath == "" {
		cfg.LogPath = def.LogPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = def.RequestTimeout
	}
	k, d := &cfg.Keys, def.Keys
	for _, pair := range []struct {
		dst *string
		src string
	}{
		{&k.Quit, d.Quit}, {&k.Add, d.Add}, {&k.Up, d.Up}, {&k.Down, d.Down},
		{&k.Toggle, d.Toggle}, {&k.Delete, d.Delete}, {&k.Confirm, d.Confirm},
		{&k.Cancel, d.Cancel}, {&k.Copy, d.Copy},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.src
		}
	}
}

func defaultConfig(dir string) Config {
	return Config{
		APIURL:         DefaultAPIURL,
		StatePath:      filepath.Join(dir, DefaultStateName),
		LogPath:        filepath.Join(dir, DefaultLogName),
		LogLevel:       "info",
		RequestTimeout: DefaultTimeout.String(),
		Keys:           DefaultKeymap(),
	}
}

func DefaultKeymap() Keymap {
	return Keymap{
		Quit:    "q",
		Add:     "a",
		Up:      "k",
		Down:    "j",
		Toggle:  " ",
		Delete:  "d",
		Confirm: "enter",
		Cancel:  "esc",
		Copy:    "y",
	}
}
