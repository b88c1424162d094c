// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".arbor.yaml"

type RenderConfig struct {
	Color bool `yaml:"color"`
}

type StressConfig struct {
	Iterations int   `yaml:"iterations"`
	MaxValue   int   `yaml:"max_value"`
	Seed       int64 `yaml:"seed"`
}

type ExploreConfig struct {
	CacheMinutes int `yaml:"cache_minutes"`
}

type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Stress  StressConfig  `yaml:"stress"`
	Explore ExploreConfig `yaml:"explore"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		Color: true,
	},
	Stress: StressConfig{
		Iterations: 5000,
		MaxValue:   1000,
		Seed:       1,
	},
	Explore: ExploreConfig{
		CacheMinutes: 30,
	},
}

// CacheTTL returns the explorer outline cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Explore.CacheMinutes) * time.Minute
}

// LoadConfig reads ~/.arbor.yaml. A missing or unreadable file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// Keys absent from the file keep their default values
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 Arbor Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")

	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sRendering:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scolor%s: %t\n", Green, Reset, config.Render.Color)
	fmt.Fprintf(w, "    Colour tree outlines when writing to a terminal\n\n")

	fmt.Fprintf(w, "🎲 %sStress runs:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %siterations%s: %d\n", Green, Reset, config.Stress.Iterations)
	fmt.Fprintf(w, "  • %smax_value%s: %d\n", Green, Reset, config.Stress.MaxValue)
	fmt.Fprintf(w, "  • %sseed%s: %d\n\n", Green, Reset, config.Stress.Seed)

	fmt.Fprintf(w, "🔍 %sExplorer:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scache_minutes%s: %d\n", Green, Reset, config.Explore.CacheMinutes)
	fmt.Fprintf(w, "    How long rendered outlines stay cached\n\n")

	fmt.Fprintf(w, "💡 Edit %s to change these values.\n", configPath)
	return nil
}
