package render

import (
	"fmt"
	"strings"

	"github.com/pistepick/pistepick/internal/scoring"
)

// Conditions summarizes a day across all resorts as a short chip string,
// for the outlook table. Returns "✓ Good" when nothing stands out.
func Conditions(results []scoring.DayResult) string {
	var (
		tempMax, tempMin      float64
		precipMax, snowMax    float64
		gustEffMax, sunHours  float64
		flatLight, freezeThaw bool
		snowQuality           string
		first                 = true
	)

	for _, res := range results {
		s := res.Summary
		if s == nil {
			continue
		}
		if first {
			tempMax, tempMin = s.TempAvg, s.TempAvg
			first = false
		} else {
			tempMax = max(tempMax, s.TempAvg)
			tempMin = min(tempMin, s.TempAvg)
		}
		precipMax = max(precipMax, s.PrecipTotal)
		snowMax = max(snowMax, s.SnowfallTotal)
		gustEffMax = max(gustEffMax, s.GustEffMax)
		sunHours = max(sunHours, s.SunSeconds/3600)
		flatLight = flatLight || s.FlatLightRisk
		freezeThaw = freezeThaw || s.FreezeThawRisk
		if snowQuality == "" && s.SnowQualityHint != "" {
			snowQuality = s.SnowQualityHint
		}
	}

	var parts []string

	if tempMax > 0 {
		parts = append(parts, "☀️ Warm")
	} else if tempMin < -12 {
		parts = append(parts, "🥶 Cold")
	}

	if snowMax > 2 || precipMax > 5 {
		parts = append(parts, "🌨️ Snowy")
		if snowQuality != "" {
			parts = append(parts, "("+snowQuality+")")
		}
	} else if snowMax > 0.5 || precipMax > 1 {
		parts = append(parts, "❄️ Light snow")
	}

	if gustEffMax > 50 {
		parts = append(parts, "💨 Windy")
	}

	if flatLight {
		parts = append(parts, "☁️ Flat light")
	} else if sunHours > 5 {
		parts = append(parts, fmt.Sprintf("☀️ %.1fh sun", sunHours))
	}

	if freezeThaw {
		parts = append(parts, "⚠️ Freeze-thaw")
	}

	if len(parts) == 0 {
		return "✓ Good"
	}
	return strings.Join(parts, " ")
}

// liftEmoji maps a lift disruption risk label to its traffic light.
func liftEmoji(risk string) string {
	switch risk {
	case "Low":
		return "🟢"
	case "Moderate":
		return "🟡"
	case "High":
		return "🟠"
	default:
		return "🔴"
	}
}
