package config

import (
	"os"
	"path/filepath"
)

// Environment variables read by the launcher. Every command-line argument
// belongs to the child, so the environment is the only configuration channel.
const (
	EnvInstallRoot = "MICROMACHINE_INSTALL_ROOT"
	EnvSearchPath  = "MICROMACHINE_PATH"
	EnvDebug       = "MICROMACHINE_DEBUG"
	EnvNodePath    = "NODE_PATH"
	EnvNoColor     = "NO_COLOR"
)

type Config struct {
	InstallRoot string
	SearchPath  []string // MICROMACHINE_PATH entries, then NODE_PATH entries
	HomeDir     string
	NoColor     bool
	Debug       bool
}

// Load reads the configuration from the process environment.
func Load() *Config {
	home, _ := os.UserHomeDir()
	return FromEnv(os.LookupEnv, home)
}

// FromEnv builds a Config from an arbitrary lookup function.
func FromEnv(lookup func(string) (string, bool), home string) *Config {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	cfg := &Config{
		InstallRoot: get(EnvInstallRoot),
		HomeDir:     home,
		NoColor:     get(EnvNoColor) != "",
		Debug:       truthy(get(EnvDebug)),
	}
	cfg.SearchPath = append(cfg.SearchPath, splitList(get(EnvSearchPath))...)
	cfg.SearchPath = append(cfg.SearchPath, splitList(get(EnvNodePath))...)
	return cfg
}

// GlobalFolders returns the per-user package folders Node also consults.
func (c *Config) GlobalFolders() []string {
	if c.HomeDir == "" {
		return nil
	}
	return []string{
		filepath.Join(c.HomeDir, ".node_modules"),
		filepath.Join(c.HomeDir, ".node_libraries"),
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range filepath.SplitList(v) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func truthy(v string) bool {
	switch v {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
