// Package main provides the entrypoint for the pistepick ski decision
// engine: it fetches forecasts, scores every resort, picks the day's best
// option, and emails the report.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/pistepick/pistepick/internal/config"
	"github.com/pistepick/pistepick/internal/decision"
	"github.com/pistepick/pistepick/internal/email"
	"github.com/pistepick/pistepick/internal/forecast"
	"github.com/pistepick/pistepick/internal/forecast/openmeteo"
	"github.com/pistepick/pistepick/internal/preview"
	"github.com/pistepick/pistepick/internal/provider/resilience"
	"github.com/pistepick/pistepick/internal/render"
	"github.com/pistepick/pistepick/internal/report"
	"github.com/pistepick/pistepick/internal/resort"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "pistepick"

	dryRun := flag.Bool("dry-run", false, "generate the report without sending email")
	htmlOut := flag.String("html-out", "", "save the HTML body to a file for preview")
	days := flag.Int("days", 0, "override the number of forecast days")
	serveAddr := flag.String("serve", "", "serve the report over HTTP on this address after the run")
	flag.Parse()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err == nil {
		log = log.Level(level)
	}

	log.Info().Str("build_time", BuildTime).Msg("starting pistepick")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load timezone")
	}

	registry := resort.DefaultRegistry()
	if cfg.ResortsFile != "" {
		registry, err = resort.LoadFile(cfg.ResortsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.ResortsFile).Msg("failed to load resorts file")
		}
	}

	providerHealth := resilience.NewRegistry()
	httpClient := resilience.NewClient(resilience.DefaultClientConfig(openmeteo.ProviderName))
	providerHealth.Register(openmeteo.ProviderName, httpClient)

	provider := openmeteo.NewClient(openmeteo.ClientConfig{
		Timezone:   cfg.Timezone,
		HTTPClient: httpClient,
		Logger:     log,
	})

	forecastDays := cfg.ForecastDays
	if *days > 0 {
		forecastDays = *days
	}

	generator := report.NewGenerator(report.GeneratorConfig{
		Provider:         provider,
		Registry:         registry,
		Window:           forecast.Window{StartHour: cfg.StartHour, EndHour: cfg.EndHour},
		Days:             forecastDays,
		Location:         loc,
		FetchConcurrency: cfg.FetchConcurrency,
		Logger:           log,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	rep, err := generator.Generate(ctx)
	cancel()
	if err != nil {
		providerHealth.RecordFailure(openmeteo.ProviderName, err)
		for _, h := range providerHealth.AllHealth() {
			log.Warn().
				Str("provider", h.Name).
				Str("circuit", h.CircuitState.String()).
				Str("last_error", h.LastError).
				Msg("provider health")
		}
		log.Error().Err(err).Msg("forecast generation failed")
		os.Exit(1)
	}

	printSummary(rep)

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}
	rendered, err := renderer.Render(rep)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render report")
	}

	if *htmlOut != "" {
		if err := os.WriteFile(*htmlOut, []byte(rendered.BodyHTML), 0o644); err != nil {
			log.Fatal().Err(err).Str("file", *htmlOut).Msg("failed to save html preview")
		}
		fmt.Printf("\n✓ HTML saved to %s\n", *htmlOut)
	}

	if *dryRun {
		fmt.Println("\n[Dry run - email not sent]")
	} else {
		if err := sendReport(cfg, rendered, log); err != nil {
			fmt.Printf("✗ Email failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Email sent to %s\n", cfg.RecipientEmail)
	}

	if *serveAddr != "" {
		serve(*serveAddr, rep, rendered, providerHealth, log)
	}
}

func sendReport(cfg *config.Config, rendered *render.RenderedReport, log zerolog.Logger) error {
	if !cfg.CanEmail() {
		return email.ErrMissingCredentials
	}
	sender, err := email.NewSender(email.SenderConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SenderEmail,
		Password: cfg.SenderPassword,
		To:       cfg.RecipientEmail,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	return sender.Send(rendered)
}

// printSummary mirrors the email content on the console.
func printSummary(rep *report.Report) {
	today := rep.Days[0]
	dec := today.Decision

	fmt.Printf("\nToday's pick: %s — %s\n", dec.Pick, dec.Reason)
	fmt.Printf("Confidence: %s\n", dec.Confidence)

	for _, best := range today.RegionBests {
		fmt.Printf("Best %s: %s %s\n", best.Region, best.Emoji, best.ResortID)
	}

	fmt.Println("\nTop today:")
	limit := min(6, len(today.Results))
	for _, res := range today.Results[:limit] {
		var gustEff float64
		if res.Summary != nil {
			gustEff = res.Summary.GustEffMax
		}
		risk := decision.LiftRisk(gustEff)
		fmt.Printf("  %s %-12s %5.1f (%s) | Wind: %.0f km/h (%s lift risk)\n",
			res.Emoji, res.ResortID, res.Score, res.Region, gustEff, risk)
	}

	fmt.Printf("\n%d-Day Outlook:\n", len(rep.Days))
	for _, day := range rep.Days {
		top := day.Results[:min(3, len(day.Results))]
		topStr := ""
		for i, res := range top {
			if i > 0 {
				topStr += ", "
			}
			topStr += fmt.Sprintf("%s:%.0f", res.ResortID, res.Score)
		}
		fmt.Printf("  %s %s | Pick %-12s | Top3 %s\n",
			day.Weekday, day.Date[5:], day.Decision.Pick, topStr)
	}
}

// serve publishes the finished report over HTTP until interrupted.
func serve(addr string, rep *report.Report, rendered *render.RenderedReport, providers *resilience.Registry, log zerolog.Logger) {
	store := &preview.Store{}
	store.Set(rep, rendered)

	router := preview.NewRouter(preview.RouterConfig{
		Store:     store,
		Providers: providers,
		Logger:    log,
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("preview server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("preview server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("preview server forced to shutdown")
	}
}
