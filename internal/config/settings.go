package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvTabify  = "STEPLOG_TABIFY"
	EnvColor   = "STEPLOG_COLOR"
	EnvDebug   = "STEPLOG_DEBUG"
	EnvAddr    = "STEPLOG_ADDR"
	EnvNoColor = "NO_COLOR"
)

// DefaultAddr is the serve command's bind address.
const DefaultAddr = "127.0.0.1:8787"

// Settings holds the CLI's runtime options. There is no config file;
// values come from the environment and are overridden by flags.
type Settings struct {
	Tabify bool
	Color  bool
	Debug  bool
	Addr   string
}

// Defaults returns the settings used when nothing is set.
func Defaults() Settings {
	return Settings{Tabify: true, Addr: DefaultAddr}
}

// FromEnv overlays environment variables on Defaults. Unparseable
// booleans are reported rather than silently ignored. NO_COLOR, when
// non-empty, wins over STEPLOG_COLOR.
func FromEnv() (Settings, error) {
	s := Defaults()
	var err error
	if s.Tabify, err = envBool(EnvTabify, s.Tabify); err != nil {
		return s, err
	}
	if s.Color, err = envBool(EnvColor, s.Color); err != nil {
		return s, err
	}
	if s.Debug, err = envBool(EnvDebug, s.Debug); err != nil {
		return s, err
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		s.Addr = v
	}
	if os.Getenv(EnvNoColor) != "" {
		s.Color = false
	}
	return s, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
