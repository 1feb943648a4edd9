package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"

	"github.com/artem13815/roadmap/pkg/llm/openai"
)

const (
	DefaultLLMBaseURL = openai.DefaultBaseURL
	DefaultLLMModel   = openai.DefaultModel
	DefaultLLMTimeout = 60 * time.Second

	DefaultSystemPrompt = openai.DefaultSystemPrompt
)

type Config struct {
	Port    string `yaml:"port"`
	LogMode string `yaml:"log_mode"`
	LLM     LLM    `yaml:"llm"`
}

// LLM configures the chat-completion endpoint used to generate roadmaps.
type LLM struct {
	BaseURL      string        `yaml:"base_url"`
	Model        string        `yaml:"model"`
	APIKey       string        `yaml:"api_key"`
	SystemPrompt string        `yaml:"system_prompt"`
	Timeout      time.Duration `yaml:"timeout"`
	// DebugLog enables logging of raw model output and rejected payloads.
	DebugLog bool `yaml:"debug_log"`
}

func defaults() Config {
	return Config{
		Port:    "8080",
		LogMode: "dev",
		LLM: LLM{
			BaseURL:      DefaultLLMBaseURL,
			Model:        DefaultLLMModel,
			SystemPrompt: DefaultSystemPrompt,
			Timeout:      DefaultLLMTimeout,
		},
	}
}

// Load reads environment variables, optionally from a .env file if present.
// When CONFIG_FILE points to a YAML file it is applied first; environment
// variables take precedence over it.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogMode = getEnv("LOG_MODE", cfg.LogMode)
	cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.APIKey = getEnv("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.SystemPrompt = getEnv("LLM_SYSTEM_PROMPT", cfg.LLM.SystemPrompt)
	cfg.LLM.Timeout = getEnvDuration("LLM_TIMEOUT", cfg.LLM.Timeout)
	cfg.LLM.DebugLog = getEnvBool("LLM_DEBUG_LOG", cfg.LLM.DebugLog)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}
