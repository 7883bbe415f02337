package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pistepick/pistepick/internal/forecast"
)

func TestExtractWindow(t *testing.T) {
	ds := &forecast.HourlyDataset{
		Times: []string{
			"2026-01-10T08:00",
			"2026-01-10T09:00",
			"2026-01-10T12:00",
			"2026-01-10T15:00",
			"2026-01-10T16:00",
			"2026-01-11T09:00",
		},
		Columns: map[string][]float64{
			forecast.VarTemperature: {-4, -5, -3, -2, -1, -8},
		},
	}

	records := forecast.ExtractWindow(ds, "2026-01-10", forecast.Window{StartHour: 9, EndHour: 16})
	require.Len(t, records, 3)

	// Half-open: 09:00 included, 16:00 excluded; order preserved.
	assert.Equal(t, "2026-01-10T09:00", records[0].Time)
	assert.Equal(t, 9, records[0].Hour)
	assert.Equal(t, "2026-01-10T15:00", records[2].Time)
	assert.Equal(t, -5.0, records[0].Value(forecast.VarTemperature, 0))
}

func TestExtractWindow_NoMatch(t *testing.T) {
	ds := &forecast.HourlyDataset{
		Times:   []string{"2026-01-10T09:00"},
		Columns: map[string][]float64{},
	}

	// Date beyond the horizon yields an empty window, not an error.
	records := forecast.ExtractWindow(ds, "2026-02-01", forecast.DefaultWindow)
	assert.Empty(t, records)
}

func TestExtractWindow_ShortColumn(t *testing.T) {
	ds := &forecast.HourlyDataset{
		Times: []string{"2026-01-10T09:00", "2026-01-10T10:00"},
		Columns: map[string][]float64{
			forecast.VarTemperature: {-4}, // second hour missing
			forecast.VarWindSpeed:   {10, 12},
		},
	}

	records := forecast.ExtractWindow(ds, "2026-01-10", forecast.DefaultWindow)
	require.Len(t, records, 2)

	assert.True(t, records[0].Has(forecast.VarTemperature))
	assert.False(t, records[1].Has(forecast.VarTemperature))
	assert.Equal(t, 12.0, records[1].Value(forecast.VarWindSpeed, 0))
}

func TestExtractWindow_MalformedTimestamps(t *testing.T) {
	ds := &forecast.HourlyDataset{
		Times:   []string{"2026-01-10", "garbage", "2026-01-10Txx:00", "2026-01-10T10:00"},
		Columns: map[string][]float64{},
	}

	records := forecast.ExtractWindow(ds, "2026-01-10", forecast.DefaultWindow)
	require.Len(t, records, 1)
	assert.Equal(t, 10, records[0].Hour)
}

func TestResolve_Defaults(t *testing.T) {
	// An empty record resolves to zeros except the documented fallbacks.
	empty := forecast.NewRecord("2026-01-10T10:00", 10, nil)
	r := forecast.Resolve(empty)

	assert.Equal(t, 0.0, r.Temperature)
	assert.Equal(t, 0.0, r.ApparentTemp)
	assert.Equal(t, float64(forecast.DefaultVisibility), r.Visibility)
	assert.Equal(t, 0.0, r.Snowfall)
	assert.Equal(t, 0, r.WeatherCode)
}

func TestResolve_ApparentFollowsTemperature(t *testing.T) {
	rec := forecast.NewRecord("2026-01-10T10:00", 10, map[string]float64{
		forecast.VarTemperature: -7.5,
	})
	r := forecast.Resolve(rec)

	assert.Equal(t, -7.5, r.Temperature)
	assert.Equal(t, -7.5, r.ApparentTemp)
}

func TestResolve_PresentValuesWin(t *testing.T) {
	rec := forecast.NewRecord("2026-01-10T10:00", 10, map[string]float64{
		forecast.VarTemperature:  -3,
		forecast.VarApparentTemp: -11,
		forecast.VarVisibility:   800,
		forecast.VarWeatherCode:  75,
	})
	r := forecast.Resolve(rec)

	assert.Equal(t, -11.0, r.ApparentTemp)
	assert.Equal(t, 800.0, r.Visibility)
	assert.Equal(t, 75, r.WeatherCode)
}
