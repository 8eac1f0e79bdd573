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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlcore.yaml"

type StressConfig struct {
	Operations   int    `yaml:"operations"`
	KeySpace     int    `yaml:"key_space"`
	Seed         uint64 `yaml:"seed"`
	CheckEvery   int    `yaml:"check_every"`
	ShowProgress bool   `yaml:"show_progress"`
}

type RenderConfig struct {
	DotBinary string        `yaml:"dot_binary"`
	Format    string        `yaml:"format"`
	OutputDir string        `yaml:"output_dir"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

type SessionConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type Config struct {
	Stress  StressConfig  `yaml:"stress"`
	Render  RenderConfig  `yaml:"render"`
	Session SessionConfig `yaml:"session"`
}

var defaultConfig = Config{
	Stress: StressConfig{
		Operations:   5000,
		KeySpace:     2000,
		Seed:         1,
		CheckEvery:   100,
		ShowProgress: true,
	},
	Render: RenderConfig{
		DotBinary: "dot",
		Format:    "png",
		OutputDir: ".",
		CacheTTL:  30 * time.Minute,
	},
	Session: SessionConfig{
		BloomSize:   1 << 16,
		BloomHashes: 5,
	},
}

// DefaultConfig returns a fresh copy of the built-in settings.
func DefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

// LoadConfig reads ~/.avlcore.yaml. Any problem locating or parsing the
// file falls back to the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	// Unset keys keep their default values
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), nil
	}
	config.normalize()

	return config, nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	if c.Stress.Operations <= 0 {
		c.Stress.Operations = defaultConfig.Stress.Operations
	}
	if c.Stress.KeySpace <= 0 {
		c.Stress.KeySpace = defaultConfig.Stress.KeySpace
	}
	if c.Stress.CheckEvery <= 0 {
		c.Stress.CheckEvery = defaultConfig.Stress.CheckEvery
	}
	if c.Render.DotBinary == "" {
		c.Render.DotBinary = defaultConfig.Render.DotBinary
	}
	if c.Render.Format == "" {
		c.Render.Format = defaultConfig.Render.Format
	}
	if c.Render.CacheTTL <= 0 {
		c.Render.CacheTTL = defaultConfig.Render.CacheTTL
	}
	if c.Session.BloomSize == 0 {
		c.Session.BloomSize = defaultConfig.Session.BloomSize
	}
	if c.Session.BloomHashes == 0 {
		c.Session.BloomHashes = defaultConfig.Session.BloomHashes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avlcore Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Printf("🌲 %sStress runs:%s\n", Green, Reset)
	fmt.Printf("  • operations: %d\n", config.Stress.Operations)
	fmt.Printf("  • key_space: %d\n", config.Stress.KeySpace)
	fmt.Printf("  • seed: %d\n", config.Stress.Seed)
	fmt.Printf("  • check_every: %d\n", config.Stress.CheckEvery)
	fmt.Printf("  • show_progress: %t\n\n", config.Stress.ShowProgress)

	fmt.Printf("🖼  %sRendering:%s\n", Green, Reset)
	fmt.Printf("  • dot_binary: %s\n", config.Render.DotBinary)
	fmt.Printf("  • format: %s\n", config.Render.Format)
	fmt.Printf("  • output_dir: %s\n", config.Render.OutputDir)
	fmt.Printf("  • cache_ttl: %s\n\n", config.Render.CacheTTL)

	fmt.Printf("🔍 %sSession:%s\n", Green, Reset)
	fmt.Printf("  • bloom_size: %d\n", config.Session.BloomSize)
	fmt.Printf("  • bloom_hashes: %d\n", config.Session.BloomHashes)
}
