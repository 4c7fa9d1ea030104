package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/corey/wordgrid/internal/domain/grid"
	"gopkg.in/yaml.v3"
)

// Engine names accepted by Config.Engine.
const (
	EngineStride    = "stride"
	EngineAutomaton = "automaton"
	EngineAuto      = "auto"
)

// Config holds every tunable. Precedence, lowest first: DefaultConfig, the YAML
// file, WORDGRID_* environment variables, command-line flags.
type Config struct {
	Directions string        `yaml:"directions"`  // used when a command is given no direction string
	IgnoreCase bool          `yaml:"ignore_case"` // fold words and cells before searching
	Engine     string        `yaml:"engine"`      // stride | automaton | auto
	Workers    int           `yaml:"workers"`     // stride engine parallelism; <= 1 is sequential
	Cache      bool          `yaml:"cache"`       // reuse results for identical inputs
	DBPath     string        `yaml:"db_path"`     // empty disables cache and history
	LogLevel   string        `yaml:"log_level"`   // debug | info | warn | error
	LogFormat  string        `yaml:"log_format"`  // text | json
	Debounce   time.Duration `yaml:"debounce"`    // watch mode quiet period
	Debug      bool          `yaml:"-"`           // WORDGRID_DEBUG=1
}

// DefaultConfig returns the built-in defaults for a working directory.
func DefaultConfig(workDir string) Config {
	return Config{
		Directions: grid.Codes,
		Engine:     EngineStride,
		Cache:      true,
		DBPath:     NewPaths(workDir).DB,
		LogLevel:   "warn",
		LogFormat:  "text",
		Debounce:   100 * time.Millisecond,
	}
}

// LoadConfigFile overlays the YAML file at path onto cfg. A missing file is
// not an error unless required is set (the user named it explicitly).
func LoadConfigFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays WORDGRID_* variables onto cfg.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("WORDGRID_DEBUG"); v == "1" {
		c.Debug = true
		c.LogLevel = "debug"
	}
	if v := getenv("WORDGRID_DB"); v != "" {
		c.DBPath = v
	}
	if v := getenv("WORDGRID_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("WORDGRID_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("WORDGRID_ENGINE"); v != "" {
		c.Engine = v
	}
	if v := getenv("WORDGRID_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDGRID_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks enumerated fields and the default direction string.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineStride, EngineAutomaton, EngineAuto:
	default:
		return fmt.Errorf("unknown engine %q (want stride, automaton or auto)", c.Engine)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if _, err := grid.ParseDirections(c.Directions); err != nil {
		return fmt.Errorf("default directions: %w", err)
	}
	return nil
}
