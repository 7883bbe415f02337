// Package openmeteo implements the forecast.Provider interface against the
// Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pistepick/pistepick/internal/forecast"
	"github.com/pistepick/pistepick/internal/provider/resilience"
	"github.com/pistepick/pistepick/internal/resort"
)

const (
	// ProviderName identifies this forecast provider.
	ProviderName = "open-meteo"

	// DefaultBaseURL is the Open-Meteo forecast API endpoint.
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"
)

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// BaseURL is the API endpoint (optional, defaults to the public API).
	BaseURL string

	// Timezone is the IANA name sent with each request; timestamps in the
	// response are local to it. Required.
	Timezone string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo API client.
type Client struct {
	baseURL    string
	timezone   string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		timezone:   cfg.Timezone,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Resilience exposes the underlying resilient client for health reporting.
func (c *Client) Resilience() *resilience.Client {
	return c.httpClient
}

// FetchHourly fetches the hourly dataset for a resort covering forecastDays
// calendar days starting today, with wind in km/h and precipitation in mm.
func (c *Client) FetchHourly(ctx context.Context, r resort.Resort, forecastDays int) (*forecast.HourlyDataset, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(r.Lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(r.Lon, 'f', 4, 64))
	params.Set("hourly", strings.Join(forecast.HourlyVars, ","))
	params.Set("timezone", c.timezone)
	params.Set("forecast_days", strconv.Itoa(forecastDays))
	params.Set("wind_speed_unit", "kmh")
	params.Set("precipitation_unit", "mm")

	reqURL := c.baseURL + "?" + params.Encode()

	c.logger.Debug().
		Str("resort", r.ID).
		Int("forecast_days", forecastDays).
		Msg("fetching hourly forecast")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return nil, fmt.Errorf("%w: circuit breaker open", forecast.ErrProviderUnavailable)
		}
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var omResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&omResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return toDataset(&omResp)
}

// toDataset converts an Open-Meteo response to the domain dataset.
func toDataset(resp *forecastResponse) (*forecast.HourlyDataset, error) {
	if len(resp.Hourly.Time) == 0 {
		return nil, forecast.ErrNoHourlyData
	}

	ds := &forecast.HourlyDataset{
		Times:   resp.Hourly.Time,
		Columns: make(map[string][]float64, len(forecast.HourlyVars)),
	}

	setColumn := func(name string, col []float64) {
		if len(col) > 0 {
			ds.Columns[name] = col
		}
	}
	setColumn(forecast.VarTemperature, resp.Hourly.Temperature2m)
	setColumn(forecast.VarApparentTemp, resp.Hourly.ApparentTemperature)
	setColumn(forecast.VarPrecipitation, resp.Hourly.Precipitation)
	setColumn(forecast.VarSnowfall, resp.Hourly.Snowfall)
	setColumn(forecast.VarSnowDepth, resp.Hourly.SnowDepth)
	setColumn(forecast.VarCloudCover, resp.Hourly.CloudCover)
	setColumn(forecast.VarCloudLow, resp.Hourly.CloudCoverLow)
	setColumn(forecast.VarCloudMid, resp.Hourly.CloudCoverMid)
	setColumn(forecast.VarVisibility, resp.Hourly.Visibility)
	setColumn(forecast.VarWindSpeed, resp.Hourly.WindSpeed10m)
	setColumn(forecast.VarWindGusts, resp.Hourly.WindGusts10m)
	setColumn(forecast.VarFreezingLevel, resp.Hourly.FreezingLevelHeight)
	setColumn(forecast.VarSunshine, resp.Hourly.SunshineDuration)
	setColumn(forecast.VarWeatherCode, resp.Hourly.WeatherCode)

	return ds, nil
}

// Open-Meteo API response structures.

type forecastResponse struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Hourly    hourlyBlock `json:"hourly"`
}

type hourlyBlock struct {
	Time                []string  `json:"time"`
	Temperature2m       []float64 `json:"temperature_2m"`
	ApparentTemperature []float64 `json:"apparent_temperature"`
	Precipitation       []float64 `json:"precipitation"`
	Snowfall            []float64 `json:"snowfall"`
	SnowDepth           []float64 `json:"snow_depth"`
	CloudCover          []float64 `json:"cloud_cover"`
	CloudCoverLow       []float64 `json:"cloud_cover_low"`
	CloudCoverMid       []float64 `json:"cloud_cover_mid"`
	Visibility          []float64 `json:"visibility"`
	WindSpeed10m        []float64 `json:"wind_speed_10m"`
	WindGusts10m        []float64 `json:"wind_gusts_10m"`
	FreezingLevelHeight []float64 `json:"freezing_level_height"`
	SunshineDuration    []float64 `json:"sunshine_duration"`
	WeatherCode         []float64 `json:"weather_code"`
}
