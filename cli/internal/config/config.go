package config

import (
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem the CLI reads through; tests swap in a memory
// backed one.
var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	NoColor       bool
	LinesAbove    int
	LinesBelow    int
	WatchDebounce time.Duration
}

// LoadConfig loads configuration from config files, environment variables
// and .env files.
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".jsondiag")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "jsondiag"))

	// Set environment variable prefix
	viper.SetEnvPrefix("JSONDIAG")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("no_color", false)
	viper.SetDefault("lines_above", 2)
	viper.SetDefault("lines_below", 3)
	viper.SetDefault("watch_debounce_ms", 500)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	return &Config{
		NoColor:       viper.GetBool("no_color"),
		LinesAbove:    viper.GetInt("lines_above"),
		LinesBelow:    viper.GetInt("lines_below"),
		WatchDebounce: time.Duration(viper.GetInt("watch_debounce_ms")) * time.Millisecond,
	}, nil
}
