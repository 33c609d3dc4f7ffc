package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Outbound services
	Ollama    OllamaConfig
	WebSearch WebSearchConfig

	// Uploads
	Upload UploadConfig

	// Outbound rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig controls the cross-origin policy.
// Empty allowed_origins keeps the wide-open default.
type CORSConfig struct {
	AllowedOrigins []string
}

// OllamaConfig holds Ollama Cloud connection settings.
type OllamaConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// WebSearchConfig holds the web search API settings.
type WebSearchConfig struct {
	APIKey     string
	BaseURL    string
	MaxResults int
	Timeout    time.Duration
	CacheSize  int
	CacheTTL   time.Duration
}

// UploadConfig bounds incoming file uploads.
type UploadConfig struct {
	MaxFileBytes      int64
	MaxImageDimension int
}

// RateLimitConfig throttles outbound model calls.
type RateLimitConfig struct {
	OutboundPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS: comma-separated list; empty means allow all origins.
	var origins []string
	if raw := viper.GetString("cors.allowed_origins"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// Ollama Cloud
	cfg.Ollama.APIKey = expandEnvVar(viper.GetString("ollama.api_key"))
	cfg.Ollama.BaseURL = viper.GetString("ollama.base_url")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	cfg.Ollama.Timeout = viper.GetDuration("ollama.timeout")
	if key := viper.GetString("cloud_api_key"); key != "" {
		cfg.Ollama.APIKey = key
	}

	// Web search
	cfg.WebSearch.APIKey = expandEnvVar(viper.GetString("websearch.api_key"))
	cfg.WebSearch.BaseURL = viper.GetString("websearch.base_url")
	cfg.WebSearch.MaxResults = viper.GetInt("websearch.max_results")
	cfg.WebSearch.Timeout = viper.GetDuration("websearch.timeout")
	cfg.WebSearch.CacheSize = viper.GetInt("websearch.cache_size")
	cfg.WebSearch.CacheTTL = viper.GetDuration("websearch.cache_ttl")
	if key := viper.GetString("web_search_api_key"); key != "" {
		cfg.WebSearch.APIKey = key
	}

	// Uploads
	cfg.Upload.MaxFileBytes = viper.GetInt64("upload.max_file_bytes")
	cfg.Upload.MaxImageDimension = viper.GetInt("upload.max_image_dimension")

	// Outbound rate limit
	cfg.RateLimit.OutboundPerMin = viper.GetInt("ratelimit.outbound_per_min")

	// Missing API keys degrade to a logged error at call time,
	// not a startup failure.
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("ollama.base_url", "https://ollama.com")
	viper.SetDefault("ollama.model", "gpt-oss:20b-cloud")
	viper.SetDefault("ollama.timeout", "60s")

	viper.SetDefault("websearch.base_url", "https://ollama.com")
	viper.SetDefault("websearch.max_results", 3)
	viper.SetDefault("websearch.timeout", "15s")
	viper.SetDefault("websearch.cache_size", 128)
	viper.SetDefault("websearch.cache_ttl", "60s")

	viper.SetDefault("upload.max_file_bytes", 20*1024*1024)
	viper.SetDefault("upload.max_image_dimension", 1024)

	// 0 disables the outbound throttle.
	viper.SetDefault("ratelimit.outbound_per_min", 0)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
