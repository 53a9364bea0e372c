// Package config handles threadmesh configuration loading. Settings come
// from an optional YAML file layered over defaults, with environment
// variables taking final precedence for secrets and endpoints.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all threadmesh configuration.
type Config struct {
	Listen    ListenConfig    `yaml:"listen"`
	Router    RouterConfig    `yaml:"router"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Summary   SummaryConfig   `yaml:"summary"`
	Agents    AgentsConfig    `yaml:"agents"`
	LogLevel  string          `yaml:"log_level"`
	LogFormat string          `yaml:"log_format"`
}

// ListenConfig defines the HTTP bind address.
type ListenConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

// RouterConfig defines the OpenAI-compatible router backend (e.g. LiteLLM).
// The router is used when BaseURL is set and is preferred over the direct
// vendor backend.
type RouterConfig struct {
	BaseURL string `yaml:"base_url"`
	// APIKey defaults to a placeholder accepted by LiteLLM deployments.
	APIKey string `yaml:"api_key"`
	Name   string `yaml:"name"`
}

// AnthropicConfig defines the direct Anthropic fallback backend.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// SummaryConfig defines the dedicated topic-summary model and sampling.
type SummaryConfig struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
}

// AgentsConfig tunes background agent execution.
type AgentsConfig struct {
	// PoolSize is the number of concurrent slots for parallel agents.
	PoolSize int `yaml:"pool_size"`
	// TimeoutSec bounds each agent run in seconds.
	TimeoutSec int `yaml:"timeout_sec"`
}

// Default returns the baseline configuration used when no file is present.
func Default() Config {
	return Config{
		Listen: ListenConfig{Address: "", Port: 5001},
		Router: RouterConfig{
			APIKey: "sk-1234",
			Name:   "litellm",
		},
		Anthropic: AnthropicConfig{Model: "claude-3-haiku-20240307"},
		Summary: SummaryConfig{
			Model:       "claude-3-haiku-20240307",
			Temperature: 0.5,
			MaxTokens:   200,
		},
		Agents:    AgentsConfig{PoolSize: 5, TimeoutSec: 10},
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays well-known environment variables. Secrets are expected
// to arrive this way in containerized deployments.
func (c *Config) applyEnv() {
	if v := os.Getenv("LITELLM_BASE_URL"); v != "" {
		c.Router.BaseURL = v
	}
	if v := os.Getenv("LITELLM_API_KEY"); v != "" {
		c.Router.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Anthropic.APIKey = v
	}
	if v := os.Getenv("THREADMESH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Listen.Port = port
		}
	}
	if v := os.Getenv("THREADMESH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
