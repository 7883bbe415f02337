// Package scoring turns hourly forecast readings into skiability scores
// and aggregates them into per-day results.
package scoring

import (
	"fmt"

	"github.com/pistepick/pistepick/internal/forecast"
	"github.com/pistepick/pistepick/internal/resort"
)

// HourScore is the scored result for a single forecast hour.
type HourScore struct {
	// Score is the skiability score in [0, 100].
	Score float64

	// Concerns lists human-readable condition warnings for the hour.
	Concerns []string
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rule evaluates one condition band, returning an additive score delta
// (negative for penalties) and an optional concern string.
type rule func(r resort.Resort, rd forecast.Readings) (delta float64, concern string)

// hourRules is the ordered rule list ScoreHour reduces over. Deltas are
// additive so order only affects concern ordering.
var hourRules = []rule{
	gustRule,
	sustainedWindRule,
	visibilityRule,
	lowCloudRule,
	precipitationRule,
	freshSnowRule,
	temperatureRule,
	windChillRule,
	freezingLevelRule,
	aspectRule,
	weatherCodeRule,
}

// ScoreHour scores one hour of conditions at a resort. The score starts at
// 100, each rule applies an additive penalty or bonus, and the running total
// is clamped to [0, 100] only once, at the end, so that several severe
// penalties cannot be masked by an early clamp.
func ScoreHour(r resort.Resort, rd forecast.Readings) HourScore {
	score := 100.0
	var concerns []string

	for _, rl := range hourRules {
		delta, concern := rl(r, rd)
		score += delta
		if concern != "" {
			concerns = append(concerns, concern)
		}
	}

	return HourScore{
		Score:    clamp(score, 0, 100),
		Concerns: concerns,
	}
}

// gustRule penalizes wind gusts, the biggest factor for lift operations.
// Concerns report the raw gust speed even though the penalty bands use the
// exposure-adjusted value.
func gustRule(r resort.Resort, rd forecast.Readings) (float64, string) {
	gustEff := r.EffectiveGust(rd.WindGusts)
	switch {
	case gustEff > 60:
		return -50, fmt.Sprintf("Severe gusts (%.0f km/h)", rd.WindGusts)
	case gustEff > 45:
		return -clamp((gustEff-45)*2.5, 0, 35), fmt.Sprintf("High gusts (%.0f km/h)", rd.WindGusts)
	case gustEff > 30:
		return -clamp((gustEff-30)*0.8, 0, 12), ""
	}
	return 0, ""
}

// sustainedWindRule applies a small always-on penalty for sustained wind.
func sustainedWindRule(r resort.Resort, rd forecast.Readings) (float64, string) {
	return -clamp((r.EffectiveWind(rd.WindSpeed)-20)*0.3, 0, 10), ""
}

func visibilityRule(_ resort.Resort, rd forecast.Readings) (float64, string) {
	switch {
	case rd.Visibility < 500:
		return -40, "Very poor visibility (<500m)"
	case rd.Visibility < 1500:
		return -clamp((1500-rd.Visibility)/40, 0, 25), fmt.Sprintf("Low visibility (%.0fm)", rd.Visibility)
	case rd.Visibility < 3000:
		return -clamp((3000-rd.Visibility)/150, 0, 10), ""
	}
	return 0, ""
}

// lowCloudRule penalizes flat light even when visibility holds up.
func lowCloudRule(_ resort.Resort, rd forecast.Readings) (float64, string) {
	switch {
	case rd.CloudLow > 80:
		return -15, "Heavy low cloud (flat light)"
	case rd.CloudLow > 60:
		return -clamp((rd.CloudLow-60)/4, 0, 8), ""
	}
	return 0, ""
}

func precipitationRule(_ resort.Resort, rd forecast.Readings) (float64, string) {
	switch {
	case rd.Precipitation > 3:
		return -30, fmt.Sprintf("Heavy precip (%.1fmm/h)", rd.Precipitation)
	case rd.Precipitation > 1:
		return -clamp((rd.Precipitation-1)*12, 0, 24), fmt.Sprintf("Moderate precip (%.1fmm/h)", rd.Precipitation)
	case rd.Precipitation > 0.3:
		return -clamp((rd.Precipitation-0.3)*6, 0, 8), ""
	}
	return 0, ""
}

// freshSnowRule grants a bonus as long as wind is not stripping the snow away.
func freshSnowRule(r resort.Resort, rd forecast.Readings) (float64, string) {
	if rd.Snowfall > 0 && r.EffectiveGust(rd.WindGusts) < 40 && rd.Precipitation < 1.5 {
		return clamp(rd.Snowfall*2, 0, 8), ""
	}
	return 0, ""
}

func temperatureRule(_ resort.Resort, rd forecast.Readings) (float64, string) {
	switch {
	case rd.Temperature > 0:
		return -clamp(rd.Temperature*8, 0, 30), fmt.Sprintf("Above freezing (%.1f°C)", rd.Temperature)
	case rd.Temperature > -2:
		return -clamp((rd.Temperature+2)*4, 0, 10), ""
	case rd.Temperature < -18:
		return -clamp((-18-rd.Temperature)*2, 0, 20), fmt.Sprintf("Very cold (%.1f°C)", rd.Temperature)
	case rd.Temperature < -12:
		return -clamp((-12-rd.Temperature)*1.2, 0, 10), ""
	}
	return 0, ""
}

// windChillRule stacks on top of the raw temperature penalty.
func windChillRule(_ resort.Resort, rd forecast.Readings) (float64, string) {
	if rd.ApparentTemp < -20 {
		return -clamp((-20-rd.ApparentTemp)*0.8, 0, 12), ""
	}
	return 0, ""
}

// freezingLevelRule penalizes a freezing level well above the resort, which
// softens the snowpack. Only a large penalty earns a concern.
func freezingLevelRule(r resort.Resort, rd forecast.Readings) (float64, string) {
	if rd.FreezingLevel <= float64(r.ElevationM)+200 {
		return 0, ""
	}
	penalty := clamp((rd.FreezingLevel-float64(r.ElevationM)-200)*0.015, 0, 20)
	if penalty > 10 {
		return -penalty, fmt.Sprintf("High freezing level (%.0fm)", rd.FreezingLevel)
	}
	return -penalty, ""
}

// aspectRule: south faces bake in mild sun, north faces hold their snow.
func aspectRule(r resort.Resort, rd forecast.Readings) (float64, string) {
	switch r.Aspect {
	case resort.AspectSouth:
		if rd.Temperature > -3 && rd.CloudCover < 50 {
			return -clamp((rd.Temperature+3)*2.5, 0, 10), ""
		}
	case resort.AspectNorth:
		if rd.Temperature > -2 && rd.CloudCover < 60 {
			return clamp((rd.Temperature+5)*0.8, 0, 6), ""
		}
	}
	return 0, ""
}

// weatherCodeRule penalizes WMO weather codes signalling storms or rain.
func weatherCodeRule(_ resort.Resort, rd forecast.Readings) (float64, string) {
	switch {
	case rd.WeatherCode >= 95:
		return -40, "Thunderstorm risk"
	case rd.WeatherCode == 75 || rd.WeatherCode == 77:
		return -5, ""
	case rd.WeatherCode >= 80:
		return -15, "Rain showers"
	case rd.WeatherCode >= 61 && rd.WeatherCode <= 67:
		return -20, "Rain/freezing rain"
	}
	return 0, ""
}
