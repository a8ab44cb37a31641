// Package viz renders a live terminal view of a sampled field: one
// horizontal slice of the grid at a time, swept through the domain.
package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avaldr/mms/internal/field"
	"github.com/avaldr/mms/internal/grid"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the sampled grid and the position of the slice being
// displayed.
type Model struct {
	entry      *field.Entry
	spec       grid.Spec
	result     *grid.Result
	err        error
	quantities []string
	qIdx       int
	row        int
	playing    bool
	fps        int
}

// NewModel samples the field once and positions the view at the first
// slice.
func NewModel(entry *field.Entry, spec grid.Spec, fps int) Model {
	m := Model{
		entry:      entry,
		spec:       spec,
		quantities: grid.Quantities(entry.Kind),
		playing:    true,
		fps:        fps,
	}
	for i, q := range m.quantities {
		if q == spec.Quantity {
			m.qIdx = i
		}
	}
	m.resample()
	return m
}

func (m *Model) resample() {
	m.spec.Quantity = m.quantities[m.qIdx]
	m.result, m.err = grid.Run(context.Background(), m.entry, m.spec)
	if m.row >= m.spec.Ny {
		m.row = 0
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.row = 0
		case "up", "k":
			m.row = (m.row + 1) % m.spec.Ny
		case "down", "j":
			m.row = (m.row - 1 + m.spec.Ny) % m.spec.Ny
		case "tab":
			m.qIdx = (m.qIdx + 1) % len(m.quantities)
			m.resample()
		}
	case TickMsg:
		if m.playing {
			m.row = (m.row + 1) % m.spec.Ny
		}
		return m, m.tick()
	}
	return m, nil
}

// slice extracts the displayed column along the current row.
func (m Model) slice() ([]float64, string) {
	col := len(m.result.Columns) + 1 // last column of each point row
	name := m.result.Columns[len(m.result.Columns)-1]

	data := make([]float64, m.spec.Nx)
	for i := 0; i < m.spec.Nx; i++ {
		data[i] = m.result.Points[m.row*m.spec.Nx+i][col]
	}
	return data, name
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("sampling failed: %v", m.err)) + "\n"
	}

	data, colName := m.slice()
	y := m.result.Points[m.row*m.spec.Nx][1]

	header := headerStyle.Render(fmt.Sprintf("mms live — %s (%s)", m.entry.Name, colName))

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s along y = %.3f", colName, y)),
	)

	minV, maxV := data[0], data[0]
	for _, v := range data {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("slice") + valueStyle.Render(fmt.Sprintf("%d / %d", m.row+1, m.spec.Ny)) + "\n")
	stats.WriteString(labelStyle.Render("min") + valueStyle.Render(fmt.Sprintf("%.6g", minV)) + "\n")
	stats.WriteString(labelStyle.Render("max") + valueStyle.Render(fmt.Sprintf("%.6g", maxV)) + "\n")
	for name, v := range m.result.Metrics {
		stats.WriteString(labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%.3g", v)) + "\n")
	}

	help := helpStyle.Render("space pause · ↑/↓ move slice · tab quantity · r rewind · q quit")

	return header + "\n" +
		graphStyle.Render(graph) + "\n" +
		statsStyle.Render(stats.String()) + "\n" +
		help + "\n"
}
