// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the process's runtime configuration from three
// layers, in ascending priority: compiled-in defaults, an optional YAML
// file, and ACROPOLIS_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PeerConfig names one upstream node to dial.
type PeerConfig struct {
	Address      string `yaml:"address"`
	NetworkMagic uint32 `yaml:"networkMagic"`
}

// Config is the full process configuration.
type Config struct {
	Debug          bool         `yaml:"debug"`
	ListenPort     int          `yaml:"listenPort"`
	ListenAddress  string       `yaml:"listenAddress"`
	NetworkMagic   uint32       `yaml:"networkMagic"`
	HistoryDepth   int          `yaml:"historyDepth"`
	BusCapacity    int          `yaml:"busCapacity"`
	Peers          []PeerConfig `yaml:"peers"`
	CacheDirectory string       `yaml:"cacheDirectory"`
}

// Default returns the compiled-in configuration every layer builds on.
func Default() Config {
	return Config{
		ListenPort:     4000,
		NetworkMagic:   764824073, // mainnet
		HistoryDepth:   2161,      // common.RollbackWindow
		BusCapacity:    256,
		CacheDirectory: "./data/cache",
	}
}

// Load builds a Config by applying, in order, the compiled-in defaults,
// an optional YAML file at path (skipped entirely if path is empty or the
// file does not exist), and ACROPOLIS_-prefixed environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides mutates cfg in place from any of the ACROPOLIS_*
// environment variables that are set, the highest-priority layer.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("ACROPOLIS_DEBUG"); ok {
		cfg.Debug = v == "1" || strings.EqualFold(v, "true")
	}
	if v, ok := os.LookupEnv("ACROPOLIS_LISTEN_PORT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ListenPort = n
		}
	}
	if v, ok := os.LookupEnv("ACROPOLIS_LISTEN_ADDRESS"); ok {
		cfg.ListenAddress = v
	}
	if v, ok := os.LookupEnv("ACROPOLIS_NETWORK_MAGIC"); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.NetworkMagic = uint32(n)
		}
	}
	if v, ok := os.LookupEnv("ACROPOLIS_CACHE_DIRECTORY"); ok {
		cfg.CacheDirectory = v
	}
}
