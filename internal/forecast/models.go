// Package forecast provides the hourly forecast data model, the per-field
// default resolution step, and the daytime window extractor.
package forecast

import (
	"context"
	"errors"

	"github.com/pistepick/pistepick/internal/resort"
)

// Forecast errors.
var (
	ErrProviderUnavailable = errors.New("forecast provider unavailable")
	ErrNoHourlyData        = errors.New("no hourly data in response")
)

// Hourly variable names, matching the upstream column keys.
const (
	VarTemperature   = "temperature_2m"
	VarApparentTemp  = "apparent_temperature"
	VarPrecipitation = "precipitation"
	VarSnowfall      = "snowfall"
	VarSnowDepth     = "snow_depth"
	VarCloudCover    = "cloud_cover"
	VarCloudLow      = "cloud_cover_low"
	VarCloudMid      = "cloud_cover_mid"
	VarVisibility    = "visibility"
	VarWindSpeed     = "wind_speed_10m"
	VarWindGusts     = "wind_gusts_10m"
	VarFreezingLevel = "freezing_level_height"
	VarSunshine      = "sunshine_duration"
	VarWeatherCode   = "weather_code"
)

// HourlyVars lists every hourly variable requested from the provider,
// in request order.
var HourlyVars = []string{
	VarTemperature,
	VarApparentTemp,
	VarPrecipitation,
	VarSnowfall,
	VarSnowDepth,
	VarCloudCover,
	VarCloudLow,
	VarCloudMid,
	VarVisibility,
	VarWindSpeed,
	VarWindGusts,
	VarFreezingLevel,
	VarSunshine,
	VarWeatherCode,
}

// Provider defines the interface for hourly forecast providers.
type Provider interface {
	// FetchHourly fetches the hourly dataset for a resort covering
	// forecastDays calendar days starting today, in the provider's
	// configured local timezone.
	FetchHourly(ctx context.Context, r resort.Resort, forecastDays int) (*HourlyDataset, error)

	// Name returns the provider name for logging.
	Name() string
}

// HourlyDataset holds per-variable columns aligned to a shared ordered
// sequence of ISO-8601 local timestamps ("2006-01-02T15:04"). A missing
// column, or a column shorter than Times, simply yields missing readings
// for the affected hours; defaults are resolved later by Readings.
type HourlyDataset struct {
	// Times are the shared hourly timestamps, in chronological order.
	Times []string

	// Columns maps variable name to its value series.
	Columns map[string][]float64
}

// Record is one hour of forecast data: a timestamp plus the readings that
// were present for that hour.
type Record struct {
	// Time is the ISO-8601 local timestamp.
	Time string

	// Hour is the local hour-of-day parsed from Time.
	Hour int

	values map[string]float64
}

// NewRecord builds a record from explicit values. Used by tests and by the
// window extractor.
func NewRecord(ts string, hour int, values map[string]float64) Record {
	return Record{Time: ts, Hour: hour, values: values}
}

// Value returns the reading for key, or fallback if the reading is absent.
func (r Record) Value(key string, fallback float64) float64 {
	if v, ok := r.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether the record carries a reading for key.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}
