// Package config resolves runtime settings from .env, the environment and flags
package config

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/portfolio-quest/theme"
)

// Environment keys
const (
	EnvTheme  = "PORTFOLIO_THEME"
	EnvAudio  = "PORTFOLIO_AUDIO"
	EnvVolume = "PORTFOLIO_VOLUME"
	EnvDebug  = "PORTFOLIO_DEBUG"
	EnvPort   = "PORT"
	EnvDB     = "PORTFOLIO_DB"
	EnvGin    = "GIN_MODE"
)

// Config is the resolved settings for every binary
type Config struct {
	Theme   theme.Mode
	Audio   bool
	Volume  int
	Debug   bool
	Port    string
	DBPath  string
	GinMode string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Theme:   theme.Light,
		Audio:   true,
		Volume:  60,
		Port:    "8080",
		DBPath:  "portfolio.db",
		GinMode: "release",
	}
}

// Load reads the given .env files (".env" when none), then the process environment.
// A missing file is not an error; variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Default(), err
		}
	}
	return FromEnv(os.Getenv), nil
}

// FromEnv builds a Config from a lookup function; invalid values keep their defaults
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv(EnvTheme); v != "" {
		if m, err := theme.ParseMode(v); err == nil {
			cfg.Theme = m
		} else {
			log.Printf("config: %s: %v", EnvTheme, err)
		}
	}
	if v := getenv(EnvAudio); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio = b
		}
	}
	if v := getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 100 {
			cfg.Volume = n
		}
	}
	if v := getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	if v := getenv(EnvPort); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.Port = v
		}
	}
	if v := getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	switch v := getenv(EnvGin); v {
	case "debug", "release", "test":
		cfg.GinMode = v
	}
	return cfg
}

// RegisterFlags binds flags that override cfg; call flag.Parse afterwards
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Var((*modeFlag)(&c.Theme), "theme", "color theme: light or dark")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "enable sound effects")
	fs.IntVar(&c.Volume, "volume", c.Volume, "master volume 0-100")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write debug log to logs/")
	fs.StringVar(&c.Port, "port", c.Port, "HTTP listen port")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "sqlite database path")
}

type modeFlag theme.Mode

func (m *modeFlag) String() string { return theme.Mode(*m).String() }

func (m *modeFlag) Set(s string) error {
	mode, err := theme.ParseMode(s)
	if err != nil {
		return err
	}
	*m = modeFlag(mode)
	return nil
}
