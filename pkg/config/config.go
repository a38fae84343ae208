package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/icubam/bedmap-colorize/pkg/colorize"
)

const (
	ConstantConfigFilename = "/etc/default/bedmap-colorize"

	// Service defaults
	DefaultServicePort         = 8246
	DefaultServiceHost         = "127.0.0.1"
	DefaultInsecureAllowRemote = false

	// logger
	DefaultLogLevel = "info"
	DefaultLogFile  = "/var/log/bedmap-colorize.log"

	// Colorizer defaults, matching the dashboard's table script.
	DefaultTheme        = colorize.DefaultTheme
	DefaultReadable     = true
	DefaultPercent      = false
	DefaultZeroAnchored = true
)

type Config struct {
	ServiceHost         string
	ServicePort         int
	InsecureAllowRemote bool
	LogLevel            string
	LogFile             string

	Theme        string
	ThemesFile   string
	Readable     bool
	Percent      bool
	ZeroAnchored bool
	Min          *float64
	Max          *float64
	Center       *float64
}

func (c *Config) Validate() error {
	if !isLocalhostAddr(c.ServiceHost) {
		if !c.InsecureAllowRemote {
			return fmt.Errorf(`binding to non-localhost address %q exposes an unauthenticated API.

If you understand the risks and want to proceed anyway, use:
    --insecure-allow-remote
    or set COLORIZE_INSECURE_ALLOW_REMOTE=true`, c.ServiceHost)
		}
		fmt.Fprintf(os.Stderr, "WARNING: Binding to %q - unauthenticated API will be network-accessible!\n", c.ServiceHost)
	}
	return nil
}

func isLocalhostAddr(host string) bool {
	switch host {
	case "127.0.0.1", "localhost", "::1", "":
		return true
	}
	return false
}

// Load reads the env file (if present) and then the process environment.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		ServiceHost:         getEnv("COLORIZE_HOST", DefaultServiceHost),
		ServicePort:         getEnvInt("COLORIZE_PORT", DefaultServicePort),
		InsecureAllowRemote: getEnvBool("COLORIZE_INSECURE_ALLOW_REMOTE", DefaultInsecureAllowRemote),
		LogLevel:            getEnv("COLORIZE_LOG_LEVEL", DefaultLogLevel),
		LogFile:             getEnv("COLORIZE_LOG_FILE", DefaultLogFile),
		Theme:               getEnv("COLORIZE_THEME", DefaultTheme),
		ThemesFile:          getEnv("COLORIZE_THEMES_FILE", ""),
		Readable:            getEnvBool("COLORIZE_READABLE", DefaultReadable),
		Percent:             getEnvBool("COLORIZE_PERCENT", DefaultPercent),
		ZeroAnchored:        getEnvBool("COLORIZE_ZERO_ANCHORED", DefaultZeroAnchored),
		Min:                 getEnvFloat("COLORIZE_MIN"),
		Max:                 getEnvFloat("COLORIZE_MAX"),
		Center:              getEnvFloat("COLORIZE_CENTER"),
	}
}

// Options builds colorizer options from the config, with themes loaded from
// ThemesFile on top of the built-ins.
func (c *Config) Options() (colorize.Options, error) {
	themes, err := LoadThemes(c.ThemesFile)
	if err != nil {
		return colorize.Options{}, err
	}
	opts := colorize.DefaultOptions()
	opts.Themes = themes
	opts.Theme = c.Theme
	opts.Readable = c.Readable
	opts.Percent = c.Percent
	opts.ZeroAnchored = c.ZeroAnchored
	opts.Min = c.Min
	opts.Max = c.Max
	opts.Center = c.Center
	return opts, nil
}

// LoadThemes returns the built-in themes merged with the YAML file at path.
// An empty path yields the built-ins only.
func LoadThemes(path string) (map[string]colorize.Theme, error) {
	themes := colorize.BuiltinThemes()
	if path == "" {
		return themes, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read themes file: %w", err)
	}

	var custom map[string]colorize.Theme
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return nil, fmt.Errorf("failed to parse themes file %s: %w", path, err)
	}
	for name, t := range custom {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("theme %q: %w", name, err)
		}
		themes[name] = t
	}
	return themes, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvFloat returns nil when the variable is unset or not a finite number.
func getEnvFloat(key string) *float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
