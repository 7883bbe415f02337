package scoring

import (
	"math"

	"github.com/pistepick/pistepick/internal/forecast"
	"github.com/pistepick/pistepick/internal/resort"
)

// maxDayConcerns caps how many distinct concerns a day carries.
const maxDayConcerns = 4

// NoDataConcern is the single concern reported when a resort has no
// forecast hours inside the day window.
const NoDataConcern = "No forecast data"

// DaySummary collects condition statistics across the scored window.
type DaySummary struct {
	TempAvg     float64
	TempMin     float64
	TempMax     float64
	GustMax     float64
	GustEffMax  float64
	WindAvg     float64
	CloudAvg    float64
	CloudLowAvg float64
	VisMin      float64
	SunSeconds  float64
	PrecipTotal float64

	SnowfallTotal float64
	SnowDepthAvg  float64

	// FreezeThawRisk is set when the window crosses freezing in both
	// directions, which usually means crusty refrozen snow.
	FreezeThawRisk bool

	// SnowQualityHint is a short label for fresh-snow quality, or empty.
	SnowQualityHint string

	// FlatLightRisk is set when low cloud or poor visibility will wash
	// out terrain contrast.
	FlatLightRisk bool
}

// DayResult is the scored outcome for one resort on one day.
type DayResult struct {
	ResortID string
	Name     string
	Emoji    string
	Region   string
	Score    float64
	Concerns []string
	Summary  *DaySummary
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ScoreDay scores every record in the window and aggregates them into a
// day result. Records must be in hour order. An empty window yields a zero
// score with a single no-data concern and no summary.
func ScoreDay(r resort.Resort, records []forecast.Record) DayResult {
	result := DayResult{
		ResortID: r.ID,
		Name:     r.Name,
		Emoji:    r.Emoji,
		Region:   r.Region,
	}

	if len(records) == 0 {
		result.Concerns = []string{NoDataConcern}
		return result
	}

	var (
		scoreSum float64
		concerns []string
		seen     = map[string]bool{}

		tempSum, windSum, cloudSum, cloudLowSum float64
		snowDepthSum, sunSum, precipSum         float64
		snowfallSum                             float64

		tempMin    = math.Inf(1)
		tempMax    = math.Inf(-1)
		visMin     = math.Inf(1)
		gustMax    float64
		gustEffMax float64
	)

	for _, rec := range records {
		rd := forecast.Resolve(rec)
		hs := ScoreHour(r, rd)
		scoreSum += hs.Score

		for _, c := range hs.Concerns {
			if !seen[c] {
				seen[c] = true
				concerns = append(concerns, c)
			}
		}

		tempSum += rd.Temperature
		tempMin = math.Min(tempMin, rd.Temperature)
		tempMax = math.Max(tempMax, rd.Temperature)
		gustMax = math.Max(gustMax, rd.WindGusts)
		gustEffMax = math.Max(gustEffMax, r.EffectiveGust(rd.WindGusts))
		windSum += rd.WindSpeed
		cloudSum += rd.CloudCover
		cloudLowSum += rd.CloudLow
		visMin = math.Min(visMin, rd.Visibility)
		sunSum += rd.Sunshine
		precipSum += rd.Precipitation
		snowfallSum += rd.Snowfall
		snowDepthSum += rd.SnowDepth
	}

	n := float64(len(records))
	tempAvg := tempSum / n
	cloudLowAvg := cloudLowSum / n

	summary := &DaySummary{
		TempAvg:        round1(tempAvg),
		TempMin:        round1(tempMin),
		TempMax:        round1(tempMax),
		GustMax:        math.Round(gustMax),
		GustEffMax:     math.Round(gustEffMax),
		WindAvg:        math.Round(windSum / n),
		CloudAvg:       math.Round(cloudSum / n),
		CloudLowAvg:    math.Round(cloudLowAvg),
		VisMin:         math.Round(visMin),
		SunSeconds:     math.Round(sunSum),
		PrecipTotal:    round1(precipSum),
		SnowfallTotal:  round1(snowfallSum),
		SnowDepthAvg:   round1(snowDepthSum / n),
		FreezeThawRisk: tempMax > 0 && tempMin < -2,
		FlatLightRisk:  cloudLowAvg > 70 || visMin < 1500,
	}
	summary.SnowQualityHint = snowQualityHint(snowfallSum, tempAvg, gustEffMax)

	if len(concerns) > maxDayConcerns {
		concerns = concerns[:maxDayConcerns]
	}

	result.Score = round1(scoreSum / n)
	result.Concerns = concerns
	result.Summary = summary
	return result
}

// snowQualityHint labels fresh snow by how cold and how windy the day is.
func snowQualityHint(snowfallTotal, tempAvg, gustEffMax float64) string {
	switch {
	case snowfallTotal > 2 && tempAvg < -6 && gustEffMax < 40:
		return "Dry powder-ish"
	case snowfallTotal > 2 && gustEffMax > 45:
		return "Wind slab risk"
	default:
		return ""
	}
}
