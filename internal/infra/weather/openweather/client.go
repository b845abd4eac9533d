package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/weather-companion/internal/domain/weather"
	apperrors "github.com/yanqian/weather-companion/pkg/errors"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultTimeout = 10 * time.Second
)

// Client fetches current conditions from the OpenWeatherMap API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client. The key is not checked here; the API
// rejects unauthenticated calls.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup retrieves the current weather for a city name.
func (c *Client) Lookup(ctx context.Context, city string) (weather.Record, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Record{}, apperrors.Wrap(apperrors.CodeWeatherError, "build weather request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Record{}, apperrors.Wrap(apperrors.CodeWeatherError, "weather request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return weather.Record{}, fmt.Errorf("%w: %q", weather.ErrCityNotFound, city)
	}
	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Record{}, apperrors.Wrap(apperrors.CodeWeatherError, fmt.Sprintf("weather request error: status=%d body=%s", resp.StatusCode, string(payload)), nil)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.Record{}, apperrors.Wrap(apperrors.CodeWeatherError, "decode weather response", err)
	}
	return normalize(raw, city)
}

type apiResponse struct {
	Name     string       `json:"name"`
	Main     *apiMain     `json:"main"`
	Weather  []apiWeather `json:"weather"`
	Sys      apiSys       `json:"sys"`
	Timezone *int64       `json:"timezone"`
}

type apiMain struct {
	Temp     float64 `json:"temp"`
	Pressure float64 `json:"pressure"`
	Humidity float64 `json:"humidity"`
}

type apiWeather struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type apiSys struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}

func normalize(raw apiResponse, city string) (weather.Record, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return weather.Record{}, fmt.Errorf("%w: %q", weather.ErrCityNotFound, city)
	}
	if raw.Main == nil || len(raw.Weather) == 0 {
		return weather.Record{}, apperrors.Wrap(apperrors.CodeWeatherError, "decode weather response: missing main or weather block", nil)
	}
	return weather.Record{
		City:           raw.Name,
		Temperature:    raw.Main.Temp,
		Description:    raw.Weather[0].Description,
		Icon:           raw.Weather[0].Icon,
		Pressure:       raw.Main.Pressure,
		Humidity:       raw.Main.Humidity,
		Sunrise:        raw.Sys.Sunrise,
		Sunset:         raw.Sys.Sunset,
		TimezoneOffset: raw.Timezone,
	}, nil
}
