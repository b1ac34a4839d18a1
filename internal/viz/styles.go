// Package viz renders simulator output for the terminal: styled state
// listings, probability plots and measurement histograms.
package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Label   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	BarFill = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)
