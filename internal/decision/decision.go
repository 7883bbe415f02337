// Package decision ranks scored resorts and picks the day's best option.
package decision

import (
	"fmt"
	"sort"

	"github.com/pistepick/pistepick/internal/scoring"
)

// Confidence expresses how clearly the top pick separates from the field.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Emoji returns the symbol used for this confidence level in reports.
func (c Confidence) Emoji() string {
	switch c {
	case ConfidenceHigh:
		return "🎯"
	case ConfidenceMedium:
		return "⚖️"
	default:
		return "🎲"
	}
}

// Decision is the pick for a single day.
type Decision struct {
	// Pick is the chosen resort's name, or "N/A" when nothing scored.
	Pick string

	// Emoji is the chosen resort's emoji.
	Emoji string

	// Reason is a one-line justification for the pick.
	Reason string

	// Confidence rates the separation between first and second place.
	Confidence Confidence

	// Spread12 is the score gap between first and second place.
	Spread12 float64

	// Spread15 is the score gap between first and fifth place, when at
	// least five resorts are ranked.
	Spread15 float64
}

// Rank returns a copy of results sorted by score, best first. The sort is
// stable so equal scores keep their registration order.
func Rank(results []scoring.DayResult) []scoring.DayResult {
	ranked := make([]scoring.DayResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Decide ranks the day's results and picks the winner.
func Decide(results []scoring.DayResult) Decision {
	ranked := Rank(results)

	if len(ranked) == 0 {
		return Decision{
			Pick:       "N/A",
			Emoji:      "❓",
			Reason:     "No forecast data",
			Confidence: ConfidenceHigh,
		}
	}

	best := ranked[0]
	if len(ranked) == 1 {
		return Decision{
			Pick:       best.ResortID,
			Emoji:      best.Emoji,
			Reason:     "Best available score",
			Confidence: ConfidenceHigh,
		}
	}

	runnerUp := ranked[1]
	spread12 := best.Score - runnerUp.Score

	var spread15 float64
	if len(ranked) >= 5 {
		spread15 = best.Score - ranked[4].Score
	}

	var confidence Confidence
	switch {
	case spread12 >= 10:
		confidence = ConfidenceHigh
	case spread12 >= 5:
		confidence = ConfidenceMedium
	default:
		confidence = ConfidenceLow
	}

	var reason string
	if spread12 >= 8 {
		reason = fmt.Sprintf("%s leads by %.0f pts over %s", best.ResortID, spread12, runnerUp.ResortID)
	} else {
		reason = fmt.Sprintf("Close call: %s +%.0f pts vs %s", best.ResortID, spread12, runnerUp.ResortID)
	}

	return Decision{
		Pick:       best.ResortID,
		Emoji:      best.Emoji,
		Reason:     reason,
		Confidence: confidence,
		Spread12:   spread12,
		Spread15:   spread15,
	}
}

// RegionBest returns the best-scoring result per region, in the order the
// regions first appear in results.
func RegionBest(results []scoring.DayResult) []scoring.DayResult {
	bestIdx := map[string]int{}
	var order []string

	for i, res := range results {
		idx, ok := bestIdx[res.Region]
		if !ok {
			bestIdx[res.Region] = i
			order = append(order, res.Region)
			continue
		}
		if res.Score > results[idx].Score {
			bestIdx[res.Region] = i
		}
	}

	bests := make([]scoring.DayResult, 0, len(order))
	for _, region := range order {
		bests = append(bests, results[bestIdx[region]])
	}
	return bests
}

// LiftRisk classifies how likely wind is to close lifts, from the day's
// maximum effective gust.
func LiftRisk(gustEffMax float64) string {
	switch {
	case gustEffMax >= 60:
		return "Very High"
	case gustEffMax >= 50:
		return "High"
	case gustEffMax >= 35:
		return "Moderate"
	default:
		return "Low"
	}
}
