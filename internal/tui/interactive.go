// Package tui is an interactive step-through viewer for gate programs.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpmuller/vecsim/internal/circuit"
	"github.com/rpmuller/vecsim/internal/quantum"
	"github.com/rpmuller/vecsim/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

const maxBarRows = 16

type model struct {
	circ   *circuit.Circuit
	states []*quantum.Register // snapshot before each op, plus the final state
	step   int

	width  int
	height int
}

// New precomputes the state after every op so stepping is instant in both
// directions.
func New(c *circuit.Circuit) (tea.Model, error) {
	reg, err := c.InitialState()
	if err != nil {
		return nil, err
	}

	states := make([]*quantum.Register, 0, len(c.Ops)+1)
	states = append(states, reg.Clone())
	for _, op := range c.Ops {
		if err := circuit.Apply(reg, []circuit.Op{op}); err != nil {
			return nil, err
		}
		states = append(states, reg.Clone())
	}

	return &model{circ: c, states: states, width: 80, height: 24}, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.step > 0 {
				m.step--
			}
		case "right", "l", " ":
			if m.step < len(m.states)-1 {
				m.step++
			}
		case "home", "g":
			m.step = 0
		case "end", "G":
			m.step = len(m.states) - 1
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	reg := m.states[m.step]

	fmt.Fprintf(&b, "%s  %s\n\n",
		cyan.Render(m.circ.Name),
		dim.Render(fmt.Sprintf("step %d/%d", m.step, len(m.states)-1)),
	)

	b.WriteString(m.opList())
	b.WriteString("\n")

	terms := reg.Terms()
	if len(terms) > m.width-4 && m.width > 8 {
		terms = terms[:m.width-8] + " ..."
	}
	fmt.Fprintf(&b, "%s %s\n\n", dim.Render("state:"), white.Render(terms))

	b.WriteString(viz.ProbabilityBars(reg.Probabilities(), reg.Qubits(), 24, maxBarRows))
	b.WriteString("\n")

	for q, p := range reg.QubitProbabilities() {
		fmt.Fprintf(&b, "%s %s\n",
			dim.Render(fmt.Sprintf("qubit %d:", q)),
			white.Render(fmt.Sprintf("p0=%.4f p1=%.4f", p.Prob0, p.Prob1)),
		)
	}

	b.WriteString("\n" + dimmer.Render("←/→ step  g/G first/last  q quit"))
	return b.String()
}

func (m *model) opList() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", dim.Render("init"), white.Render("|"+m.circ.Initial+">"))
	for i, op := range m.circ.Ops {
		line := fmt.Sprintf("%-8s target=%d", op.Gate, op.Target)
		if circuit.IsTwoQubit(op.Gate) {
			line = fmt.Sprintf("%-8s control=%d target=%d", op.Gate, op.Control, op.Target)
		}
		if i == m.step-1 {
			fmt.Fprintf(&b, "%s %s\n", green.Render("▶"), white.Render(line))
		} else {
			fmt.Fprintf(&b, "  %s\n", dimmer.Render(line))
		}
	}
	return b.String()
}

// Run starts the viewer and blocks until the user quits.
func Run(c *circuit.Circuit) error {
	m, err := New(c)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
