package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pistepick/pistepick/internal/forecast"
	"github.com/pistepick/pistepick/internal/forecast/openmeteo"
	"github.com/pistepick/pistepick/internal/provider/resilience"
	"github.com/pistepick/pistepick/internal/resort"
)

func testResort() resort.Resort {
	return resort.Resort{
		ID:           "corviglia",
		Name:         "Corviglia",
		Region:       "Engadin",
		Lat:          46.5079,
		Lon:          9.8192,
		ElevationM:   2486,
		Aspect:       resort.AspectSouth,
		WindExposure: 0.85,
	}
}

func newTestClient(baseURL string) *openmeteo.Client {
	httpClient := resilience.NewClient(resilience.ClientConfig{
		Name:       "open-meteo-test",
		MaxRetries: 1,
	})
	return openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    baseURL,
		Timezone:   "Europe/Zurich",
		HTTPClient: httpClient,
		Logger:     zerolog.Nop(),
	})
}

func TestFetchHourly(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"latitude":           r.URL.Query().Get("latitude"),
			"longitude":          r.URL.Query().Get("longitude"),
			"timezone":           r.URL.Query().Get("timezone"),
			"forecast_days":      r.URL.Query().Get("forecast_days"),
			"wind_speed_unit":    r.URL.Query().Get("wind_speed_unit"),
			"precipitation_unit": r.URL.Query().Get("precipitation_unit"),
			"hourly":             r.URL.Query().Get("hourly"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"latitude": 46.5,
			"longitude": 9.82,
			"hourly": {
				"time": ["2026-01-15T09:00", "2026-01-15T10:00"],
				"temperature_2m": [-8.5, -7.2],
				"apparent_temperature": [-13.1, -11.8],
				"wind_gusts_10m": [22.0, 25.0],
				"visibility": [18000, 20000],
				"weather_code": [1, 2]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ds, err := client.FetchHourly(context.Background(), testResort(), 6)
	require.NoError(t, err)

	assert.Equal(t, "46.5079", gotQuery["latitude"])
	assert.Equal(t, "9.8192", gotQuery["longitude"])
	assert.Equal(t, "Europe/Zurich", gotQuery["timezone"])
	assert.Equal(t, "6", gotQuery["forecast_days"])
	assert.Equal(t, "kmh", gotQuery["wind_speed_unit"])
	assert.Equal(t, "mm", gotQuery["precipitation_unit"])
	assert.Contains(t, gotQuery["hourly"], forecast.VarTemperature)
	assert.Contains(t, gotQuery["hourly"], forecast.VarFreezingLevel)

	require.Len(t, ds.Times, 2)
	assert.Equal(t, "2026-01-15T09:00", ds.Times[0])
	assert.Equal(t, []float64{-8.5, -7.2}, ds.Columns[forecast.VarTemperature])
	assert.Equal(t, []float64{22.0, 25.0}, ds.Columns[forecast.VarWindGusts])

	_, ok := ds.Columns[forecast.VarSnowfall]
	assert.False(t, ok, "absent columns should not be materialized")
}

func TestFetchHourlyEmptyTimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly": {"time": []}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchHourly(context.Background(), testResort(), 6)
	assert.ErrorIs(t, err, forecast.ErrNoHourlyData)
}

func TestFetchHourlyBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchHourly(context.Background(), testResort(), 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestFetchHourlyMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly": `))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchHourly(context.Background(), testResort(), 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestFetchHourlyCircuitOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	httpClient := resilience.NewClient(resilience.ClientConfig{
		Name:            "open-meteo-trip",
		MaxRetries:      4,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
	})
	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    server.URL,
		Timezone:   "Europe/Zurich",
		HTTPClient: httpClient,
		Logger:     zerolog.Nop(),
	})

	// First fetch exhausts retries against a failing upstream and trips
	// the breaker; it surfaces as a bad status.
	_, err := client.FetchHourly(context.Background(), testResort(), 6)
	require.Error(t, err)

	_, err = client.FetchHourly(context.Background(), testResort(), 6)
	assert.ErrorIs(t, err, forecast.ErrProviderUnavailable)
}

func TestName(t *testing.T) {
	client := newTestClient("http://example.invalid")
	assert.Equal(t, openmeteo.ProviderName, client.Name())
}
