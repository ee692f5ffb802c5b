// Package config loads service configuration from FARAID_* environment
// variables, e.g. FARAID_HTTP_ADDR, FARAID_REDIS_ADDR, FARAID_BOT_TOKEN.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "FARAID"

type Config struct {
	// HTTPAddr is the listen address of the JSON API.
	HTTPAddr string
	// RedisAddr enables the redis-backed cache; empty falls back to memory.
	RedisAddr string
	// BotToken enables the Telegram surface; empty disables it.
	BotToken string

	AIAPIKey       string
	AIBaseURL      string
	AIModel        string
	AISystemPrompt string

	// Rate limiting of the HTTP API, requests per window per client IP.
	RateLimit       int
	RateLimitWindow time.Duration
}

// Load builds the configuration from environment variables with sane
// defaults. Nested keys map to env vars with "." replaced by "_", so
// "ai.api_key" resolves to FARAID_AI_API_KEY.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("redis.addr", "")
	v.SetDefault("bot.token", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.system_prompt", "")
	v.SetDefault("rate.limit", 5)
	v.SetDefault("rate.window", time.Minute)

	return &Config{
		HTTPAddr:        v.GetString("http.addr"),
		RedisAddr:       v.GetString("redis.addr"),
		BotToken:        v.GetString("bot.token"),
		AIAPIKey:        v.GetString("ai.api_key"),
		AIBaseURL:       v.GetString("ai.base_url"),
		AIModel:         v.GetString("ai.model"),
		AISystemPrompt:  v.GetString("ai.system_prompt"),
		RateLimit:       v.GetInt("rate.limit"),
		RateLimitWindow: v.GetDuration("rate.window"),
	}
}
