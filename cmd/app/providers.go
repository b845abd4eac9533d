package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-companion/internal/domain/assistant"
	"github.com/yanqian/weather-companion/internal/domain/conversation"
	"github.com/yanqian/weather-companion/internal/infra/assets"
	"github.com/yanqian/weather-companion/internal/infra/config"
	"github.com/yanqian/weather-companion/internal/infra/llm/chatgpt"
	"github.com/yanqian/weather-companion/internal/infra/sessionstore"
	"github.com/yanqian/weather-companion/internal/infra/weather/openweather"
	"github.com/yanqian/weather-companion/pkg/util"
)

func provideAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		Model:        cfg.LLM.Model,
		Temperature:  cfg.LLM.Temperature,
		Timeout:      cfg.Assistant.Timeout,
		Persona:      cfg.Assistant.Persona,
		FunFactCount: cfg.Assistant.FunFactCount,
	}
}

func provideConversationConfig(cfg *config.Config) conversation.Config {
	return conversation.Config{SessionTTL: cfg.Session.TTL}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideWeatherClient(cfg *config.Config) *openweather.Client {
	return openweather.NewClient(cfg.Weather.APIURL, cfg.Weather.APIKey, cfg.Weather.Timeout)
}

func provideClock() util.Clock {
	return util.SystemClock()
}

func provideSessionStore(cfg *config.Config, logger *slog.Logger) (conversation.Store, func()) {
	noop := func() {}
	if !cfg.Session.Valkey.Enabled {
		return sessionstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Session.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return sessionstore.NewMemoryStore(), noop
	}
	logger.Info("session valkey store enabled", "addr", cfg.Session.Valkey.Addr)
	return sessionstore.NewValkeyStore(client, cfg.Session.Valkey.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideAssetResolver(cfg *config.Config, logger *slog.Logger) conversation.AssetResolver {
	static := assets.NewStaticResolver(cfg.Assets.BaseURL)
	bucket := cfg.Assets.Bucket
	if !bucket.Enabled {
		return static
	}
	resolver, err := assets.NewBucketResolver(assets.BucketConfig{
		Endpoint:  bucket.Endpoint,
		AccessKey: bucket.AccessKey,
		SecretKey: bucket.SecretKey,
		Bucket:    bucket.Name,
		Region:    bucket.Region,
		Prefix:    bucket.Prefix,
		URLTTL:    bucket.URLTTL,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize asset bucket, serving static backgrounds", "error", err)
		return static
	}
	logger.Info("asset bucket enabled", "bucket", bucket.Name)
	return resolver
}
