// config.go
// Copyright (C) 2024 Yahia Zakaria
// This file loads sokosolve's runtime configuration from a YAML file,
// a .env file, and the environment, in that order of increasing
// precedence.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package sokosolve

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ArenaConfig sizes the Context pools a server or batch run should
// build ahead of time.
type ArenaConfig struct {
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
	Capacity  int `yaml:"capacity"`
}

// SearchConfig carries the default search knobs the CLI and server
// apply when a request does not override them. HFactor and GFactor are
// not read by the CLI or server: Preset derives both factors from
// Algorithm alone.
type SearchConfig struct {
	Algorithm        string  `yaml:"algorithm"` // "bfs", "astar", "greedy", "ucs"
	HFactor          float64 `yaml:"h_factor"`
	GFactor          float64 `yaml:"g_factor"`
	MaxIterations    uint64  `yaml:"max_iterations"`
	ProblemCacheSize int     `yaml:"problem_cache_size"`
}

// ServerConfig configures the gin-based HTTP API.
type ServerConfig struct {
	Port             string `yaml:"port"`
	AccessKey        string `yaml:"access_key"`
	AllowedOrigins   string `yaml:"allowed_origins"`
	DatastoreProject string `yaml:"datastore_project"` // empty disables the solve ledger
}

// Config is sokosolve's full runtime configuration.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
}

// DefaultConfig returns sokosolve's built-in defaults.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			MaxWidth:  64,
			MaxHeight: 64,
			Capacity:  1 << 20,
		},
		Search: SearchConfig{
			Algorithm:        "astar",
			HFactor:          1,
			GFactor:          1,
			MaxIterations:    0,
			ProblemCacheSize: 128,
		},
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: "*",
		},
	}
}

// LoadConfig builds a Config by starting from DefaultConfig, merging in
// configPath if non-empty (a YAML file), loading envPath as a .env file
// if present (without overriding variables already set in the real
// environment), and finally applying environment variable overrides.
// configPath and envPath may both be empty.
func LoadConfig(configPath, envPath string) (Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("sokosolve: read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("sokosolve: parse config file: %w", err)
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("sokosolve: load env file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SOKOSOLVE_MAX_WIDTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Arena.MaxWidth = i
		}
	}
	if v := os.Getenv("SOKOSOLVE_MAX_HEIGHT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Arena.MaxHeight = i
		}
	}
	if v := os.Getenv("SOKOSOLVE_CAPACITY"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Arena.Capacity = i
		}
	}
	if v := os.Getenv("SOKOSOLVE_ALGORITHM"); v != "" {
		cfg.Search.Algorithm = v
	}
	if v := os.Getenv("SOKOSOLVE_MAX_ITERATIONS"); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Search.MaxIterations = i
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("ACCESS_KEY"); v != "" {
		cfg.Server.AccessKey = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = v
	}
	if v := os.Getenv("SOKOSOLVE_DATASTORE_PROJECT"); v != "" {
		cfg.Server.DatastoreProject = v
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Arena.MaxWidth < 1 || c.Arena.MaxHeight < 1 {
		return fmt.Errorf("sokosolve: arena.max_width and arena.max_height must be >= 1")
	}
	if c.Arena.Capacity < 1 {
		return fmt.Errorf("sokosolve: arena.capacity must be >= 1")
	}
	switch c.Search.Algorithm {
	case "bfs", "astar", "greedy", "ucs":
	default:
		return fmt.Errorf("sokosolve: search.algorithm must be one of bfs, astar, greedy, ucs")
	}
	return nil
}

// Preset resolves the named search algorithm to its (hFactor, gFactor)
// pair, per the weighted best-first presets: ucs is (h=0, g=1), astar
// is (h=1, g=1), greedy is (h=1, g=0).
func (c SearchConfig) Preset() (hFactor, gFactor float64, useAStar bool) {
	switch c.Algorithm {
	case "ucs":
		return 0, 1, true
	case "astar":
		return 1, 1, true
	case "greedy":
		return 1, 0, true
	default: // "bfs"
		return 0, 0, false
	}
}
