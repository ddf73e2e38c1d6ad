package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config holds user-configurable defaults. Flags override every field.
type Config struct {
	Unit         string `json:"unit"`          // "C" or "F"
	SmartctlPath string `json:"smartctl_path"` // empty = search PATH
	TimeoutSec   int    `json:"timeout_sec"`   // per-device smartctl deadline
	ListenAddr   string `json:"listen_addr"`   // daemon TCP address
	HTTPAddr     string `json:"http_addr"`     // daemon HTTP address, empty disables
	WarnC        int    `json:"warn_c"`        // column coloring threshold, Celsius
	CritC        int    `json:"crit_c"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		Unit:       "C",
		TimeoutSec: 10,
		ListenAddr: "127.0.0.1:7634",
		WarnC:      45,
		CritC:      55,
	}
}

// Path returns ~/.config/hddtemp/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "" // refuse to fall back to /tmp (security risk)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hddtemp", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		logrus.WithField("path", p).WithError(err).Warn("config parse error, using defaults")
		return Default()
	}
	return cfg
}
