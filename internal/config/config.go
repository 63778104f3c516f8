package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	History  HistoryConfig
	UI       UIConfig
	Deck     DeckConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// HistoryConfig controls the answer log.
type HistoryConfig struct {
	Enabled bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Color bool
}

// DeckConfig holds dealing settings. Seed 0 means seed from the clock.
type DeckConfig struct {
	Seed int64
}

// Load reads configuration from file and env. Env var overrides use prefix CRIBTRAIN_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "cribtrain", "cribtrain.db"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("ui.color", true)
	v.SetDefault("deck.seed", 0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CRIBTRAIN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cribtrain"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CRIBTRAIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
