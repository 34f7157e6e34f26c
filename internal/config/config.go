// Package config handles application configuration.
package config

import (
	"os"
)

// Config holds all application configuration
type Config struct {
	// Logging
	Quiet bool
	Debug bool

	// MountRoot is the prefix drive letters are mounted under (wsl.conf automount.root)
	MountRoot string
}

// Load loads configuration from environment
func Load() (*Config, error) {
	cfg := &Config{
		Quiet:     envBool("WSLPWD_QUIET", true),
		Debug:     envBool("WSLPWD_DEBUG", false),
		MountRoot: envStr("WSLPWD_MOUNT_ROOT", "/mnt/"),
	}
	// Debug output is useless if quiet hides it
	if cfg.Debug {
		cfg.Quiet = false
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
