package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the GratiLog CLI.
type Config struct {
	ServerEndpointAddr string
	DBPath             string
	RequestTimeout     time.Duration

	// OnlineCheckInterval is how often the REPL probes the server.
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DBPath = "gratilog.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config from defaults, then JSON, then flags taken
// from os.Args. It panics on unreadable input.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
