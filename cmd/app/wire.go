//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/weather-companion/internal/bootstrap"
	"github.com/yanqian/weather-companion/internal/domain/assistant"
	"github.com/yanqian/weather-companion/internal/domain/conversation"
	"github.com/yanqian/weather-companion/internal/infra/config"
	"github.com/yanqian/weather-companion/internal/infra/llm/chatgpt"
	"github.com/yanqian/weather-companion/internal/infra/llm/tokens"
	"github.com/yanqian/weather-companion/internal/infra/weather/openweather"
	httpiface "github.com/yanqian/weather-companion/internal/interface/http"
	"github.com/yanqian/weather-companion/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAssistantConfig,
		provideConversationConfig,
		provideChatGPTClient,
		provideWeatherClient,
		provideClock,
		provideSessionStore,
		provideAssetResolver,
		tokens.NewCounter,
		assistant.NewService,
		conversation.NewService,
		wire.Bind(new(assistant.ChatClient), new(*chatgpt.Client)),
		wire.Bind(new(assistant.TokenCounter), new(*tokens.Counter)),
		wire.Bind(new(conversation.WeatherClient), new(*openweather.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
