package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Weather   WeatherConfig   `yaml:"weather"`
	LLM       LLMConfig       `yaml:"llm"`
	Assistant AssistantConfig `yaml:"assistant"`
	Session   SessionConfig   `yaml:"session"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	StaticDir    string          `yaml:"staticDir"`
	CORSOrigins  []string        `yaml:"corsOrigins"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// WeatherConfig points at the current-conditions API.
type WeatherConfig struct {
	APIURL  string        `yaml:"apiUrl"`
	APIKey  string        `yaml:"apiKey"`
	Timeout time.Duration `yaml:"timeout"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// AssistantConfig tunes the activity and fun-fact prompts.
type AssistantConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	Persona      string        `yaml:"persona"`
	FunFactCount int           `yaml:"funFactCount"`
}

// SessionConfig controls where chat sessions live and for how long.
type SessionConfig struct {
	TTL    time.Duration `yaml:"ttl"`
	Valkey ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the shared session store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// AssetsConfig decides how background keys become URLs.
type AssetsConfig struct {
	BaseURL string       `yaml:"baseUrl"`
	Bucket  BucketConfig `yaml:"bucket"`
}

// BucketConfig describes an S3-compatible bucket holding the backgrounds.
type BucketConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Endpoint  string        `yaml:"endpoint"`
	AccessKey string        `yaml:"accessKey"`
	SecretKey string        `yaml:"secretKey"`
	Name      string        `yaml:"name"`
	Region    string        `yaml:"region"`
	Prefix    string        `yaml:"prefix"`
	URLTTL    time.Duration `yaml:"urlTtl"`
}

// Load reads configuration from defaults, .env, a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if err := loadDotEnv(os.Getenv("DOTENV_PATH")); err != nil {
		return nil, err
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv populates the process environment from a .env file without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_STATIC_DIR"); v != "" {
		cfg.HTTP.StaticDir = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("WEATHER_API_URL"); v != "" {
		cfg.Weather.APIURL = v
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.Timeout = parsed
		}
	}
	if v := firstEnv("LLM_API_KEY", "OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := firstEnv("LLM_BASE_URL", "OPENAI_API_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("ASSISTANT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Assistant.Timeout = parsed
		}
	}
	if v := os.Getenv("ASSISTANT_PERSONA"); v != "" {
		cfg.Assistant.Persona = v
	}
	if v := os.Getenv("ASSISTANT_FUN_FACT_COUNT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Assistant.FunFactCount = parsed
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Session.TTL = parsed
		}
	}
	if v := os.Getenv("SESSION_VALKEY_ENABLED"); v != "" {
		cfg.Session.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("SESSION_VALKEY_ADDR"); v != "" {
		cfg.Session.Valkey.Addr = v
	}
	if v := os.Getenv("SESSION_VALKEY_PREFIX"); v != "" {
		cfg.Session.Valkey.Prefix = v
	}
	if v := os.Getenv("ASSETS_BASE_URL"); v != "" {
		cfg.Assets.BaseURL = v
	}
	if v := os.Getenv("ASSETS_BUCKET_ENABLED"); v != "" {
		cfg.Assets.Bucket.Enabled = parseBool(v)
	}
	if v := os.Getenv("ASSETS_BUCKET_ENDPOINT"); v != "" {
		cfg.Assets.Bucket.Endpoint = v
	}
	if v := os.Getenv("ASSETS_BUCKET_ACCESS_KEY"); v != "" {
		cfg.Assets.Bucket.AccessKey = v
	}
	if v := os.Getenv("ASSETS_BUCKET_SECRET_KEY"); v != "" {
		cfg.Assets.Bucket.SecretKey = v
	}
	if v := os.Getenv("ASSETS_BUCKET_NAME"); v != "" {
		cfg.Assets.Bucket.Name = v
	}
	if v := os.Getenv("ASSETS_BUCKET_REGION"); v != "" {
		cfg.Assets.Bucket.Region = v
	}
	if v := os.Getenv("ASSETS_BUCKET_PREFIX"); v != "" {
		cfg.Assets.Bucket.Prefix = v
	}
	if v := os.Getenv("ASSETS_BUCKET_URL_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Assets.Bucket.URLTTL = parsed
		}
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 60 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Weather: WeatherConfig{
			APIURL:  "https://api.openweathermap.org/data/2.5/weather",
			Timeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-3.5-turbo",
		},
		Assistant: AssistantConfig{
			Timeout:      35 * time.Second,
			Persona:      "FlorAI",
			FunFactCount: 5,
		},
		Session: SessionConfig{
			TTL: 2 * time.Hour,
			Valkey: ValkeyConfig{
				Prefix: "companion",
			},
		},
		Assets: AssetsConfig{
			Bucket: BucketConfig{
				Region: "auto",
				URLTTL: time.Hour,
			},
		},
	}
}

// Validate ensures the configuration is safe to use. API keys are
// deliberately not checked; a missing key fails the upstream call instead.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	// A turn runs one weather lookup and one assistant call back to back.
	if turn := c.Weather.Timeout + c.Assistant.Timeout; c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout <= turn {
		return fmt.Errorf("http.writeTimeout must exceed weather.timeout + assistant.timeout (%s)", turn)
	}
	if c.Assistant.Timeout <= 0 {
		return errors.New("assistant.timeout must be positive")
	}
	if c.Assistant.FunFactCount < 0 {
		return errors.New("assistant.funFactCount cannot be negative")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.Session.TTL < 0 {
		return errors.New("session.ttl cannot be negative")
	}
	if c.Session.Valkey.Enabled && strings.TrimSpace(c.Session.Valkey.Addr) == "" {
		return errors.New("session.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Assets.Bucket.Enabled {
		if strings.TrimSpace(c.Assets.Bucket.Endpoint) == "" {
			return errors.New("assets.bucket.endpoint cannot be empty when the bucket is enabled")
		}
		if strings.TrimSpace(c.Assets.Bucket.Name) == "" {
			return errors.New("assets.bucket.name cannot be empty when the bucket is enabled")
		}
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
