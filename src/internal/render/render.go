// FILE: ecosnap/src/internal/render/render.go
package render

import (
	"fmt"
	"io"
	"strings"

	"ecosnap/src/internal/aggregate"
	"ecosnap/src/internal/core"
	"ecosnap/src/internal/score"
	"ecosnap/src/internal/service"
	"ecosnap/src/internal/tip"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	barGlyph      = "█"
	minBarWidth   = 10
	maxLabelWidth = 16
	defaultWidth  = 80
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true)
	styleHarmful  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleHarmless = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
)

// Options controls terminal output
type Options struct {
	Width int  // terminal columns, defaultWidth when <= 0
	Color bool // ANSI styling
}

// Renderer draws scan results and dashboards as plain terminal text
type Renderer struct {
	w     io.Writer
	opts  Options
	bands map[score.Band]*color.Color
}

// New creates a renderer writing to w
func New(w io.Writer, opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	bands := map[score.Band]*color.Color{
		score.BandGreat: color.New(color.FgGreen, color.Bold),
		score.BandOK:    color.New(color.FgYellow, color.Bold),
		score.BandPoor:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range bands {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Renderer{w: w, opts: opts, bands: bands}
}

// Result prints the predicted label, its tip and the refreshed dashboard
func (r *Renderer) Result(res *service.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.paint(styleTitle, "Predicted:"), res.Label)
	fmt.Fprintf(&b, "%s %s\n\n", r.paint(styleTitle, "Tip:"), res.Tip)
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return err
	}
	if res.Dashboard == nil {
		return nil
	}
	return r.Dashboard(res.Dashboard)
}

// Dashboard prints the waste chart followed by the EcoScore verdict
func (r *Renderer) Dashboard(dash *service.Dashboard) error {
	var b strings.Builder

	if !dash.HasData {
		b.WriteString(dash.Message)
		b.WriteByte('\n')
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s\n", r.paint(styleTitle, fmt.Sprintf("Waste Categories (%d scans)", dash.Total)))
	r.writeBars(&b, dash.Bars)
	if dash.Unrecognized > 0 {
		fmt.Fprintf(&b, "%s\n", r.paint(styleHint,
			fmt.Sprintf("%d scans have labels outside the known categories", dash.Unrecognized)))
	}

	b.WriteByte('\n')
	if dash.Score != nil {
		banner := fmt.Sprintf("EcoScore: %d/100", *dash.Score)
		if c, ok := r.bands[dash.Band]; ok {
			banner = c.Sprint(banner)
		}
		b.WriteString(banner)
		b.WriteByte('\n')
	}
	b.WriteString(dash.Message)
	b.WriteByte('\n')

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Tips prints the tip table in canonical label order
func (r *Renderer) Tips() error {
	var b strings.Builder
	labelWidth := r.labelWidth(core.Labels())

	for _, label := range core.Labels() {
		name := runewidth.FillRight(runewidth.Truncate(label, labelWidth, "…"), labelWidth)
		fmt.Fprintf(&b, "%s  %s\n", r.paint(styleTitle, name), tip.For(label))
	}
	fmt.Fprintf(&b, "%s\n", r.paint(styleHint, "Anything else: "+tip.Fallback))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) writeBars(b *strings.Builder, bars []aggregate.Bar) {
	if len(bars) == 0 {
		return
	}

	labels := make([]string, len(bars))
	maxCount := 0
	for i, bar := range bars {
		labels[i] = bar.Label
		maxCount = max(maxCount, bar.Count)
	}

	labelWidth := r.labelWidth(labels)
	countWidth := len(fmt.Sprint(maxCount))
	barWidth := max(minBarWidth, r.opts.Width-labelWidth-countWidth-3)

	for _, bar := range bars {
		name := runewidth.FillRight(runewidth.Truncate(bar.Label, labelWidth, "…"), labelWidth)

		n := bar.Count * barWidth / maxCount
		if n == 0 && bar.Count > 0 {
			n = 1
		}
		style := styleHarmless
		if core.IsHarmful(bar.Label) {
			style = styleHarmful
		}

		fmt.Fprintf(b, "%s %s %*d\n", name, r.paint(style, strings.Repeat(barGlyph, n)), countWidth, bar.Count)
	}
}

func (r *Renderer) labelWidth(labels []string) int {
	width := 0
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l))
	}
	return min(width, maxLabelWidth)
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.opts.Color {
		return s
	}
	return style.Render(s)
}
