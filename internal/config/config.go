package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/trie"
)

// EnvPrefix is prepended to environment variable overrides, e.g.
// PREFIXTRIE_SERVER_PORT.
const EnvPrefix = "PREFIXTRIE"

// Segmentation modes accepted in trie.segmentation.
const (
	SegmentationRune     = "rune"
	SegmentationGrapheme = "grapheme"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Trie       TrieConfig       `mapstructure:"trie"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DictionaryConfig points at the word list loaded on startup
type DictionaryConfig struct {
	Path string `mapstructure:"path"`
}

// TrieConfig holds trie related configuration
type TrieConfig struct {
	Segmentation string `mapstructure:"segmentation"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("dictionary.path", "")

	v.SetDefault("trie.segmentation", SegmentationRune)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Addr returns the host:port the server listens on
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Options returns the trie options for the configured segmentation
func (c *TrieConfig) Options() []trie.Option {
	switch c.Segmentation {
	case SegmentationGrapheme:
		return []trie.Option{trie.WithSegmenter(trie.GraphemeSegmenter)}
	default:
		return []trie.Option{trie.WithSegmenter(trie.RuneSegmenter)}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}

	switch c.Trie.Segmentation {
	case SegmentationRune, SegmentationGrapheme:
	default:
		return fmt.Errorf("unknown trie segmentation %q", c.Trie.Segmentation)
	}

	if c.Log.Level == "" {
		return fmt.Errorf("log level is required")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}
