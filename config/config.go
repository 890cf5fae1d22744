package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// ServerConfig holds the daemon listen settings
type ServerConfig struct {
	Port int
}

// WatchConfig holds the address watch settings
type WatchConfig struct {
	Interval time.Duration // push interval for WebSocket watchers
	Schedule string        // cron spec for the change logger
}

// Config is the daemon configuration, loaded once at startup
type Config struct {
	Server ServerConfig
	Watch  WatchConfig
}

var v *viper.Viper

func init() {
	v = viper.New()

	// Set default values
	v.SetDefault("server.port", 28060)
	v.SetDefault("watch.interval", 10*time.Second)
	v.SetDefault("watch.schedule", "@every 1m")
	v.SetDefault("client.endpoint", "http://localhost:28060")

	// Environment variables
	v.AutomaticEnv()
	v.BindEnv("server.port", "PORT")
	v.BindEnv("watch.interval", "WATCH_INTERVAL")
	v.BindEnv("watch.schedule", "WATCH_SCHEDULE")
	v.BindEnv("client.endpoint", "API_ENDPOINT")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Look for config in the following paths
	configPaths := []string{
		".",
		"$HOME/.yxa",
		filepath.Join(xdg.ConfigHome, "yxa"),
		"/etc/yxa",
	}

	for _, path := range configPaths {
		v.AddConfigPath(os.ExpandEnv(path))
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			panic(fmt.Sprintf("Fatal error reading config file: %s", err))
		}
		// Config file not found; ignore error and use defaults
	}
}

var (
	instance *Config
	once     sync.Once
)

// GetInstance returns the daemon configuration, reading it on first use
func GetInstance() *Config {
	once.Do(func() {
		instance = &Config{
			Server: ServerConfig{
				Port: v.GetInt("server.port"),
			},
			Watch: WatchConfig{
				Interval: v.GetDuration("watch.interval"),
				Schedule: v.GetString("watch.schedule"),
			},
		}
	})
	return instance
}

// GetClientEndpoint returns the daemon endpoint the CLI talks to. Read live
// so API_ENDPOINT set after program start is still honored.
func GetClientEndpoint() string {
	return v.GetString("client.endpoint")
}
