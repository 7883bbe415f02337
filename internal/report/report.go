// Package report orchestrates a forecast run: it fetches hourly data for
// every resort, scores each day, and assembles the multi-day outlook.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pistepick/pistepick/internal/decision"
	"github.com/pistepick/pistepick/internal/forecast"
	"github.com/pistepick/pistepick/internal/resort"
	"github.com/pistepick/pistepick/internal/scoring"
)

// DayOutlook is the scored outlook for a single calendar day.
type DayOutlook struct {
	// Date is the day in ISO format (2006-01-02), local to the run's
	// timezone.
	Date string

	// Weekday is the short weekday label, e.g. "Mon".
	Weekday string

	// Results holds every resort's result for the day, best score first.
	Results []scoring.DayResult

	// RegionBests holds the best result per region.
	RegionBests []scoring.DayResult

	// Decision is the day's pick.
	Decision decision.Decision
}

// Report is the output of one forecast run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string

	// GeneratedAt is when the run started, in the run's timezone.
	GeneratedAt time.Time

	// Days holds one outlook per day, today first.
	Days []DayOutlook
}

// GeneratorConfig holds configuration for the report generator.
type GeneratorConfig struct {
	// Provider supplies hourly forecasts. Required.
	Provider forecast.Provider

	// Registry holds the resorts to evaluate. Required.
	Registry *resort.Registry

	// Window is the daily scoring window (optional, defaults to 09-16).
	Window forecast.Window

	// Days is how many days to report on (optional, default 5).
	Days int

	// Location is the run's timezone. Required.
	Location *time.Location

	// FetchConcurrency bounds parallel provider calls (optional,
	// default 4).
	FetchConcurrency int

	// Clock is the time source (optional, defaults to the real clock).
	Clock clockwork.Clock

	// Logger for run progress.
	Logger zerolog.Logger
}

// Generator runs forecast reports.
type Generator struct {
	provider    forecast.Provider
	registry    *resort.Registry
	window      forecast.Window
	days        int
	location    *time.Location
	concurrency int
	clock       clockwork.Clock
	logger      zerolog.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Window == (forecast.Window{}) {
		cfg.Window = forecast.DefaultWindow
	}
	if cfg.Days <= 0 {
		cfg.Days = 5
	}
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 4
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	return &Generator{
		provider:    cfg.Provider,
		registry:    cfg.Registry,
		window:      cfg.Window,
		days:        cfg.Days,
		location:    cfg.Location,
		concurrency: cfg.FetchConcurrency,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
	}
}

// Generate fetches forecasts for every resort and scores each day. The
// fetch horizon is one day longer than the report so the last day is fully
// covered regardless of when the run starts. Any fetch failure aborts the
// whole run.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	resorts := g.registry.All()
	datasets := make([]*forecast.HourlyDataset, len(resorts))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(g.concurrency)

	for i, r := range resorts {
		i, r := i, r
		group.Go(func() error {
			ds, err := g.provider.FetchHourly(gctx, r, g.days+1)
			if err != nil {
				return fmt.Errorf("fetching forecast for %s: %w", r.ID, err)
			}
			datasets[i] = ds
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	now := g.clock.Now().In(g.location)
	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: now,
		Days:        make([]DayOutlook, 0, g.days),
	}

	for d := 0; d < g.days; d++ {
		day := now.AddDate(0, 0, d)
		date := day.Format("2006-01-02")

		results := make([]scoring.DayResult, 0, len(resorts))
		for i, r := range resorts {
			records := forecast.ExtractWindow(datasets[i], date, g.window)
			results = append(results, scoring.ScoreDay(r, records))
		}

		dec := decision.Decide(results)
		g.logger.Info().
			Str("date", date).
			Str("pick", dec.Pick).
			Str("confidence", string(dec.Confidence)).
			Msg("day decided")

		report.Days = append(report.Days, DayOutlook{
			Date:        date,
			Weekday:     day.Format("Mon"),
			Results:     decision.Rank(results),
			RegionBests: decision.RegionBest(results),
			Decision:    dec,
		})
	}

	return report, nil
}
