// Package render turns a report into email-ready HTML and plain text.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/pistepick/pistepick/internal/decision"
	"github.com/pistepick/pistepick/internal/report"
	"github.com/pistepick/pistepick/internal/scoring"
)

//go:embed templates/report.html templates/report.txt
var templateFS embed.FS

// maxReportConcerns caps the concern list shown for the day, drawn from the
// pick and the runner-up.
const maxReportConcerns = 5

// RenderedReport holds the rendered email content ready for transmission.
type RenderedReport struct {
	Subject  string
	BodyHTML string
	BodyText string
}

// scoreCard is one resort's card in the today section.
type scoreCard struct {
	Emoji    string
	Name     string
	Region   string
	Score    string
	Metrics  string
	RankLine string
	Winner   bool
}

// regionPick labels the best resort in one region.
type regionPick struct {
	Region string
	Label  string
}

// outlookRow is one day in the multi-day table.
type outlookRow struct {
	Weekday    string
	DateShort  string
	PickEmoji  string
	PickName   string
	PickClass  string
	Scores     []string
	ScoresText string
	Conditions string
}

// reportView is the template data for both the HTML and text bodies.
type reportView struct {
	DateLong        string
	Pick            string
	PickUpper       string
	PickEmoji       string
	PickRegion      string
	Reason          string
	Confidence      string
	ConfidenceEmoji string
	RegionPicks     []regionPick
	Cards           []scoreCard
	Concerns        []string
	Outlook         []outlookRow
	OutlookDays     int
	GeneratedAt     string
}

// Renderer renders reports through the embedded templates.
type Renderer struct {
	html *template.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parsing html template: %w", err)
	}
	textTmpl, err := texttemplate.ParseFS(templateFS, "templates/report.txt")
	if err != nil {
		return nil, fmt.Errorf("parsing text template: %w", err)
	}
	return &Renderer{html: htmlTmpl, text: textTmpl}, nil
}

// Render produces the subject line and both bodies for a report. The report
// must contain at least one day.
func (r *Renderer) Render(rep *report.Report) (*RenderedReport, error) {
	if len(rep.Days) == 0 {
		return nil, fmt.Errorf("report has no days")
	}

	view := buildView(rep)

	var htmlBuf bytes.Buffer
	if err := r.html.Execute(&htmlBuf, view); err != nil {
		return nil, fmt.Errorf("rendering html body: %w", err)
	}

	var textBuf bytes.Buffer
	if err := r.text.Execute(&textBuf, view); err != nil {
		return nil, fmt.Errorf("rendering text body: %w", err)
	}

	return &RenderedReport{
		Subject:  Subject(rep),
		BodyHTML: htmlBuf.String(),
		BodyText: textBuf.String(),
	}, nil
}

// Subject builds the email subject from the report's first day.
func Subject(rep *report.Report) string {
	pick := "N/A"
	if len(rep.Days) > 0 {
		pick = rep.Days[0].Decision.Pick
	}
	return fmt.Sprintf("🎿 %s Today | St. Moritz %s", pick, rep.GeneratedAt.Format("Jan 2"))
}

func buildView(rep *report.Report) reportView {
	today := rep.Days[0]
	dec := today.Decision

	view := reportView{
		DateLong:        rep.GeneratedAt.Format("Monday, January 2, 2006"),
		Pick:            dec.Pick,
		PickUpper:       strings.ToUpper(dec.Pick),
		PickEmoji:       dec.Emoji,
		Reason:          dec.Reason,
		Confidence:      string(dec.Confidence),
		ConfidenceEmoji: dec.Confidence.Emoji(),
		Concerns:        topConcerns(today.Results),
		OutlookDays:     len(rep.Days),
		GeneratedAt:     rep.GeneratedAt.Format("2006-01-02 15:04"),
	}

	for _, best := range today.RegionBests {
		view.RegionPicks = append(view.RegionPicks, regionPick{
			Region: best.Region,
			Label:  best.Emoji + " " + best.ResortID,
		})
		if best.ResortID == dec.Pick {
			view.PickRegion = best.Region
		}
	}

	for _, res := range today.Results {
		view.Cards = append(view.Cards, buildCard(res, dec.Pick))
	}

	for _, day := range rep.Days {
		view.Outlook = append(view.Outlook, buildOutlookRow(day))
	}

	return view
}

func buildCard(res scoring.DayResult, pick string) scoreCard {
	card := scoreCard{
		Emoji:  res.Emoji,
		Name:   res.ResortID,
		Region: res.Region,
		Score:  fmt.Sprintf("%.0f", res.Score),
		Winner: res.ResortID == pick,
	}

	var gustEff float64
	metrics := []string{"-"}
	if s := res.Summary; s != nil {
		gustEff = s.GustEffMax
		metrics = []string{
			fmt.Sprintf("%.1f°C (%.1f to %.1f)", s.TempAvg, s.TempMin, s.TempMax),
			fmt.Sprintf("💨 %.0f km/h %s", s.GustEffMax, liftEmoji(decision.LiftRisk(s.GustEffMax))),
		}
		if s.SnowDepthAvg > 0 {
			metrics = append(metrics, fmt.Sprintf("Base %.0fcm", s.SnowDepthAvg))
		}
	}
	card.Metrics = strings.Join(metrics, " | ")

	risk := decision.LiftRisk(gustEff)
	card.RankLine = fmt.Sprintf("%s %-12s %5.1f  (Wind: %.0f km/h, Lift: %s)",
		res.Emoji, res.ResortID, res.Score, gustEff, risk)
	return card
}

func buildOutlookRow(day report.DayOutlook) outlookRow {
	row := outlookRow{
		Weekday:    day.Weekday,
		Conditions: Conditions(day.Results),
	}
	if len(day.Date) >= 10 {
		row.DateShort = day.Date[5:]
	}

	pick := day.Decision.Pick
	row.PickName = pick
	row.PickEmoji = day.Decision.Emoji
	for _, res := range day.Results {
		if res.ResortID == pick {
			row.PickClass = "pick-" + strings.ToLower(res.Region)
		}
		row.Scores = append(row.Scores, fmt.Sprintf("%s %s %.0f", res.Emoji, res.ResortID, res.Score))
	}
	row.ScoresText = strings.Join(scoresShort(day.Results), ", ")
	return row
}

func scoresShort(results []scoring.DayResult) []string {
	out := make([]string, 0, len(results))
	for _, res := range results {
		out = append(out, fmt.Sprintf("%s %.0f", res.ResortID, res.Score))
	}
	return out
}

// topConcerns merges the concerns of the pick and the runner-up, keeping
// first occurrences.
func topConcerns(ranked []scoring.DayResult) []string {
	var concerns []string
	seen := map[string]bool{}

	limit := min(2, len(ranked))
	for _, res := range ranked[:limit] {
		for _, c := range res.Concerns {
			if !seen[c] {
				seen[c] = true
				concerns = append(concerns, c)
			}
		}
	}
	if len(concerns) > maxReportConcerns {
		concerns = concerns[:maxReportConcerns]
	}
	return concerns
}
