// Package viz renders a running simulation as a terminal view: the arena
// on a Braille canvas with an energy sidebar, driven by bubbletea.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/chargebox/internal/engine"
)

const (
	canvasWidth     = 80
	canvasHeight    = 20
	historyCapacity = 400
)

type TickMsg time.Time

// Model steps the engine on a frame tick and draws position snapshots.
// The engine is owned exclusively here; rendering only ever reads
// detached snapshots between completed steps.
type Model struct {
	eng           *engine.Engine
	substeps      int
	fps           int
	t             float64
	running       bool
	canvas        *Canvas
	energyHistory []float64
	showGraph     bool
}

func NewModel(eng *engine.Engine, substeps, fps int) Model {
	return Model{
		eng:           eng,
		substeps:      substeps,
		fps:           fps,
		running:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		energyHistory: make([]float64, 0, historyCapacity),
		showGraph:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			m.substeps *= 2
		case "-", "_":
			if m.substeps > 1 {
				m.substeps /= 2
			}
		case "e":
			m.showGraph = !m.showGraph
		}
	case TickMsg:
		if m.running {
			for s := 0; s < m.substeps; s++ {
				m.eng.Step()
			}
			m.t += float64(m.substeps) * m.eng.Params().Dt

			m.energyHistory = append(m.energyHistory, m.eng.KineticEnergy())
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// draw maps arena meters onto canvas sub-pixels and marks every particle.
func (m *Model) draw() {
	m.canvas.Clear()

	p := m.eng.Params()
	sx := float64(canvasWidth*2-1) / p.Width
	sy := float64(canvasHeight*4-1) / p.Height

	for _, pos := range m.eng.Positions() {
		// terminal rows grow downward, physical y grows upward
		x := int(pos.X * sx)
		y := canvasHeight*4 - 1 - int(pos.Y*sy)
		m.canvas.Mark(x, y)
	}
}

func (m Model) View() string {
	m.draw()

	var stats strings.Builder
	p := m.eng.Params()
	px, py := m.eng.Momentum()

	status := "RUNNING"
	statusStyle := valueStyle
	if !m.running {
		status = "PAUSED"
		statusStyle = pausedStyle
	}

	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	stats.WriteString(labelStyle.Render("status") + statusStyle.Render(status) + "\n")
	row("time", fmt.Sprintf("%.3e s", m.t))
	row("particles", fmt.Sprintf("%d", p.Population))
	row("substeps", fmt.Sprintf("%d/frame", m.substeps))
	row("kinetic", fmt.Sprintf("%.3e J", m.eng.KineticEnergy()))
	row("potential", fmt.Sprintf("%.3e J", m.eng.PotentialEnergy()))
	row("momentum", fmt.Sprintf("(%.2e, %.2e)", px, py))
	row("bounces", fmt.Sprintf("%d", m.eng.Bounces()))

	var s strings.Builder
	s.WriteString(headerStyle.Render("CHARGEBOX") + "\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	))

	if m.showGraph && len(m.energyHistory) > 2 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(70),
			asciigraph.Caption("kinetic energy"),
		)
		s.WriteString("\n" + graph)
	}

	s.WriteString(helpStyle.Render("\nspace pause · +/- speed · e energy graph · q quit"))
	return s.String()
}

// Run starts the live view and blocks until the user quits.
func Run(eng *engine.Engine, substeps, fps int) error {
	prog := tea.NewProgram(NewModel(eng, substeps, fps))
	_, err := prog.Run()
	return err
}
