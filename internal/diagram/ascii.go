// Package diagram renders shaft design output as terminal charts and
// exported image files. It consumes the profile and load sequences
// produced by the design pipeline and never feeds back into it.
package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/tanishapritha/shaft-designer/internal/shaft"
)

const (
	chartHeight = 10
	chartWidth  = 64
	layoutWidth = 60
)

// PlotShear renders the shear-force profile as an ASCII chart.
func PlotShear(p *shaft.Profile) string {
	return asciigraph.Plot(p.Shear,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Shear Force V (N) along shaft"),
	)
}

// PlotMoment renders the bending-moment profile as an ASCII chart.
func PlotMoment(p *shaft.Profile) string {
	return asciigraph.Plot(p.Moment,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Bending Moment M (N·m) along shaft"),
	)
}

// PlotTorque renders a torque step profile as an ASCII chart.
func PlotTorque(torque []float64) string {
	return asciigraph.Plot(torque,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Torque T (N·m) along shaft"),
	)
}

// DrawShaftLayout draws the shaft span with its supports and point
// loads, followed by a legend of load positions and magnitudes.
func DrawShaftLayout(length float64, loads []shaft.PointLoad) string {
	var sb strings.Builder

	marks := make([]rune, layoutWidth+1)
	for i := range marks {
		marks[i] = ' '
	}
	for _, l := range loads {
		col := int(l.Position / length * layoutWidth)
		if col < 0 {
			col = 0
		}
		if col > layoutWidth {
			col = layoutWidth
		}
		if l.Force >= 0 {
			marks[col] = '↓'
		} else {
			marks[col] = '↑'
		}
	}

	sb.WriteString("\n")
	sb.WriteString("  SHAFT LAYOUT\n")
	sb.WriteString("  ────────────\n\n")
	sb.WriteString("  " + string(marks) + "\n")
	sb.WriteString("  " + strings.Repeat("═", layoutWidth+1) + "\n")
	sb.WriteString("  ▲" + strings.Repeat(" ", layoutWidth-1) + "▲\n")
	sb.WriteString(fmt.Sprintf("  0%*s\n", layoutWidth, fmt.Sprintf("%.3f m", length)))

	if len(loads) > 0 {
		sb.WriteString("\n  Loads:\n")
		for i, l := range loads {
			sb.WriteString(fmt.Sprintf("    #%d  at %.3f m  %+.1f N\n", i+1, l.Position, l.Force))
		}
	}

	return sb.String()
}

// DrawSummaryBox frames a titled list of result lines. Widths count
// runes, not bytes, so unit symbols like "·" keep the box aligned.
func DrawSummaryBox(title string, lines []string) string {
	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	var sb strings.Builder
	border := strings.Repeat("═", width+4)
	row := func(s string) {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(s))
		sb.WriteString(fmt.Sprintf("  ║  %s%s  ║\n", s, pad))
	}

	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	row(title)
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		row(line)
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
