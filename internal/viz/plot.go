package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ProbabilityGraph plots per-basis-state probabilities as a line graph
// over the basis index.
func ProbabilityGraph(probs []float64, caption string) string {
	width := len(probs)
	if width > 80 {
		width = 80
	}
	return asciigraph.Plot(probs,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Histogram renders measurement counts as labeled bars scaled to the
// total number of shots.
func Histogram(counts map[string]int, shots int, barWidth int) string {
	if shots == 0 || barWidth <= 0 {
		return ""
	}

	var b strings.Builder
	for _, outcome := range []string{"0", "1"} {
		n := counts[outcome]
		filled := n * barWidth / shots
		bar := BarFill.Render(strings.Repeat("█", filled)) +
			Dim.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%s %s %s\n",
			Label.Render("|"+outcome+">"),
			bar,
			Value.Render(fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(shots))),
		)
	}
	return b.String()
}

// ProbabilityBars renders one bar per basis state, capped at maxRows
// states for wide registers.
func ProbabilityBars(probs []float64, qubits, barWidth, maxRows int) string {
	var b strings.Builder
	rows := len(probs)
	if rows > maxRows {
		rows = maxRows
	}
	for i := 0; i < rows; i++ {
		filled := int(probs[i] * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}
		bar := BarFill.Render(strings.Repeat("█", filled)) +
			Dim.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%s %s %s\n",
			Label.Render(fmt.Sprintf("|%0*b>", qubits, i)),
			bar,
			Value.Render(fmt.Sprintf("%.4f", probs[i])),
		)
	}
	if rows < len(probs) {
		fmt.Fprintf(&b, "%s\n", Dim.Render(fmt.Sprintf("... %d more basis states", len(probs)-rows)))
	}
	return b.String()
}
