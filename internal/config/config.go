package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gameofgraphs/internal/defense"
	"gameofgraphs/internal/parser"
)

const DefaultPath = "gameofgraphs.yaml"

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNeo4j    = "neo4j"
)

type Config struct {
	Version int           `yaml:"version"`
	Defense DefenseConfig `yaml:"defense"`
	Phrases PhraseConfig  `yaml:"phrases"`
	Source  SourceConfig  `yaml:"source"`
	Log     LogConfig     `yaml:"log"`
}

type DefenseConfig struct {
	Protected string `yaml:"protected"`
	Radius    int    `yaml:"radius"`
}

type PhraseConfig struct {
	Friendship string `yaml:"friendship"`
	Plot       string `yaml:"plot"`
}

// SourceConfig tells serve where to read relations from. The links and
// plots commands take their files on the command line instead.
type SourceConfig struct {
	Driver      string      `yaml:"driver"`
	Friendships string      `yaml:"friendships"`
	Plots       string      `yaml:"plots"`
	DSN         string      `yaml:"dsn"`
	Neo4j       Neo4jConfig `yaml:"neo4j"`
}

type Neo4jConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Version: 1,
		Defense: DefenseConfig{
			Protected: defense.DefaultProtected,
			Radius:    2,
		},
		Phrases: PhraseConfig{
			Friendship: parser.DefaultFriendshipPhrase,
			Plot:       parser.DefaultPlotPhrase,
		},
		Source: SourceConfig{Driver: DriverFile},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault falls back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) fillDefaults() {
	defaults := Default()
	if c.Phrases.Friendship == "" {
		c.Phrases.Friendship = defaults.Phrases.Friendship
	}
	if c.Phrases.Plot == "" {
		c.Phrases.Plot = defaults.Phrases.Plot
	}
	if c.Source.Driver == "" {
		c.Source.Driver = defaults.Source.Driver
	}
	if c.Source.Driver == DriverNeo4j && c.Source.Neo4j.Database == "" {
		c.Source.Neo4j.Database = "neo4j"
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
}

func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported version: %d", c.Version)
	}
	if strings.TrimSpace(c.Defense.Protected) == "" {
		return fmt.Errorf("defense protected is required")
	}
	if c.Defense.Radius < 0 {
		return fmt.Errorf("defense radius must not be negative: %d", c.Defense.Radius)
	}
	if c.Phrases.Friendship == c.Phrases.Plot {
		return fmt.Errorf("friendship and plot phrases must differ")
	}

	switch c.Source.Driver {
	case DriverFile:
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(c.Source.DSN) == "" {
			return fmt.Errorf("source dsn is required for driver %s", c.Source.Driver)
		}
	case DriverNeo4j:
		if strings.TrimSpace(c.Source.Neo4j.URI) == "" {
			return fmt.Errorf("source neo4j uri is required")
		}
	default:
		return fmt.Errorf("unknown source driver: %s", c.Source.Driver)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}

	return nil
}

func (c *Config) ParserPhrases() parser.Phrases {
	return parser.Phrases{Friendship: c.Phrases.Friendship, Plot: c.Phrases.Plot}
}

func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", value)
	}
}

// Marshal renders the config the way init writes it.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
