// Package config loads the EUI server configuration from an INI file, with
// environment overrides for secrets, and validates it before use.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/ini.v1"
)

type Config struct {
	Server ServerConfig
	Charts ChartsConfig
	Sim    SimConfig
	Log    LogConfig
}

type ServerConfig struct {
	Addr       string
	WebDir     string
	AuthSecret string
	// CommandTimeout bounds every remote command invocation.
	CommandTimeout time.Duration
}

type ChartsConfig struct {
	// CacheSize is the default per-chart retention, in samples.
	CacheSize int
	// PushInterval throttles chart and snapshot pushes to clients.
	PushInterval time.Duration
}

type SimConfig struct {
	// TelemetryInterval is the cadence of simulated telemetry publications.
	TelemetryInterval time.Duration
	// CommandLatency delays simulated command acknowledgements.
	CommandLatency time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Load reads the configuration file, applies MSEUI_AUTH_SECRET from the
// environment and validates the result.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:           file.Section("server").Key("Addr").MustString(":9000"),
			WebDir:         file.Section("server").Key("WebDir").MustString(""),
			AuthSecret:     file.Section("server").Key("AuthSecret").MustString(""),
			CommandTimeout: file.Section("server").Key("CommandTimeout").MustDuration(5 * time.Second),
		},
		Charts: ChartsConfig{
			CacheSize:    file.Section("charts").Key("CacheSize").MustInt(1000),
			PushInterval: file.Section("charts").Key("PushInterval").MustDuration(time.Second),
		},
		Sim: SimConfig{
			TelemetryInterval: file.Section("sim").Key("TelemetryInterval").MustDuration(50 * time.Millisecond),
			CommandLatency:    file.Section("sim").Key("CommandLatency").MustDuration(10 * time.Millisecond),
		},
		Log: LogConfig{
			Level:      file.Section("log").Key("Level").MustString("info"),
			File:       file.Section("log").Key("File").MustString(""),
			MaxSizeMB:  file.Section("log").Key("MaxSizeMB").MustInt(50),
			MaxBackups: file.Section("log").Key("MaxBackups").MustInt(5),
		},
	}

	if secret := os.Getenv("MSEUI_AUTH_SECRET"); secret != "" {
		cfg.Server.AuthSecret = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges. The auth secret is checked at server
// startup, not here, so offline commands work without one.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server Addr must not be empty")
	}
	if c.Server.CommandTimeout <= 0 {
		return fmt.Errorf("server CommandTimeout must be positive, got %v", c.Server.CommandTimeout)
	}
	if c.Charts.CacheSize <= 0 {
		return fmt.Errorf("charts CacheSize must be positive, got %d", c.Charts.CacheSize)
	}
	if c.Charts.PushInterval <= 0 {
		return fmt.Errorf("charts PushInterval must be positive, got %v", c.Charts.PushInterval)
	}
	if c.Sim.TelemetryInterval <= 0 {
		return fmt.Errorf("sim TelemetryInterval must be positive, got %v", c.Sim.TelemetryInterval)
	}
	if c.Sim.CommandLatency < 0 {
		return fmt.Errorf("sim CommandLatency must not be negative, got %v", c.Sim.CommandLatency)
	}
	return nil
}
