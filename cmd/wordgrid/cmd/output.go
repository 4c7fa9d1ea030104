package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/corey/wordgrid/internal/app"
	"github.com/corey/wordgrid/internal/domain/grid"
	"github.com/corey/wordgrid/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorRed     = "\033[31m"
	colorGray    = "\033[90m"
)

// paint wraps s in color unless colors are disabled.
func paint(color, s string) string {
	if noColor {
		return s
	}
	return color + s + colorReset
}

// formatElapsed rounds a duration for display.
func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}

// formatSummary renders the one-line search summary.
//
//	⚡ 3 words found │ 7 occurrences │ 1.2ms (cached)
func formatSummary(rep *app.Report) string {
	run := rep.Run
	line := fmt.Sprintf("%s │ %d occurrences │ %s",
		paint(colorBold, fmt.Sprintf("⚡ %d words found", len(rep.Results))),
		run.Occurrences(), formatElapsed(run.Elapsed))
	if run.Cached {
		line += " " + paint(colorGray, "(cached)")
	}
	return line
}

// formatOccurrences renders one line per occurrence.
//
//	⚡ 2 occurrences
//	  CAT  (0,0) → right
func formatOccurrences(occ []grid.Occurrence) string {
	var sb strings.Builder
	sb.WriteString(paint(colorBold, fmt.Sprintf("⚡ %d occurrences", len(occ))))
	sb.WriteString("\n")

	width := 0
	for _, o := range occ {
		width = max(width, len(o.Word))
	}
	for _, o := range occ {
		fmt.Fprintf(&sb, "  %s%s  %s → %s\n",
			paint(colorCyan, o.Word), strings.Repeat(" ", width-len(o.Word)),
			o.Start, paint(colorGreen, o.Dir.String()))
	}
	return sb.String()
}

// formatRuns renders the history list, newest first.
func formatRuns(runs []*ports.Run) string {
	if len(runs) == 0 {
		return "⚡ no runs recorded\n"
	}
	var sb strings.Builder
	sb.WriteString(paint(colorBold, fmt.Sprintf("⚡ %d runs", len(runs))))
	sb.WriteString("\n")
	for _, r := range runs {
		engine := r.Engine
		if r.Cached {
			engine = "cache"
		}
		fmt.Fprintf(&sb, "  %s  %s  %s %s  %s  %d found │ %d occ │ %s\n",
			paint(colorGray, r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			paint(colorCyan, r.WordsPath), paint(colorCyan, r.GridPath),
			paint(colorMagenta, dirsLabel(r.Directions)),
			len(r.Results), r.Occurrences(),
			paint(colorGray, engine+" "+formatElapsed(r.Elapsed)))
	}
	return sb.String()
}

// formatRun renders one run with its results.
func formatRun(r *ports.Run) string {
	var sb strings.Builder
	sb.WriteString(paint(colorBold, "⚡ run "+r.ID))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  Started:     %s\n", r.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(&sb, "  Elapsed:     %s\n", formatElapsed(r.Elapsed))
	fmt.Fprintf(&sb, "  Words:       %s (%d)\n", r.WordsPath, r.WordCount)
	fmt.Fprintf(&sb, "  Grid:        %s (%dx%d)\n", r.GridPath, r.Rows, r.Cols)
	fmt.Fprintf(&sb, "  Directions:  %s\n", dirsLabel(r.Directions))
	fmt.Fprintf(&sb, "  Ignore case: %t\n", r.IgnoreCase)
	fmt.Fprintf(&sb, "  Engine:      %s\n", r.Engine)
	fmt.Fprintf(&sb, "  Fingerprint: %s\n", paint(colorGray, r.Fingerprint))
	fmt.Fprintf(&sb, "  Results:     %d words │ %d occurrences\n", len(r.Results), r.Occurrences())
	for _, res := range r.Results {
		fmt.Fprintf(&sb, "    %s,%d\n", paint(colorCyan, res.Word), res.Count)
	}
	return sb.String()
}

// formatDirections renders the direction catalog.
func formatDirections() string {
	var sb strings.Builder
	sb.WriteString(paint(colorBold, "⚡ directions"))
	sb.WriteString("\n")
	for _, d := range grid.Directions {
		s := d.Stride()
		fmt.Fprintf(&sb, "  %s  %-10s  (%+d,%+d)  reverse %s\n",
			paint(colorCyan, string(d.Code())), d, s.DRow, s.DCol, string(d.Reverse().Code()))
	}
	return sb.String()
}

// formatConfig renders the effective configuration.
func formatConfig(cfg app.Config, path string) string {
	db := cfg.DBPath
	if db == "" {
		db = paint(colorYellow, "disabled")
	}
	workers := "sequential"
	if cfg.Workers > 1 {
		workers = fmt.Sprintf("%d", cfg.Workers)
	}

	var sb strings.Builder
	sb.WriteString(paint(colorBold, "⚡ wordgrid config"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  Config file: %s\n", path)
	fmt.Fprintf(&sb, "  Directions:  %s\n", dirsLabel(cfg.Directions))
	fmt.Fprintf(&sb, "  Ignore case: %t\n", cfg.IgnoreCase)
	fmt.Fprintf(&sb, "  Engine:      %s\n", cfg.Engine)
	fmt.Fprintf(&sb, "  Workers:     %s\n", workers)
	fmt.Fprintf(&sb, "  Cache:       %t\n", cfg.Cache)
	fmt.Fprintf(&sb, "  DB:          %s\n", db)
	fmt.Fprintf(&sb, "  Log:         %s (%s)\n", cfg.LogLevel, cfg.LogFormat)
	fmt.Fprintf(&sb, "  Debounce:    %s\n", cfg.Debounce)
	return sb.String()
}

// formatWatchError renders a failed watch rerun.
func formatWatchError(err error) string {
	return paint(colorRed, "✗ "+err.Error())
}

func dirsLabel(codes string) string {
	if codes == "" {
		return "(none)"
	}
	return codes
}
