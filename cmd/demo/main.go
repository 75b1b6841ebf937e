package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kass/go-map-overlay/pkg/models"
	"github.com/kass/go-map-overlay/pkg/overlay"
	"github.com/kass/go-map-overlay/pkg/registry"
)

const sampleSize = 8

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6")).
			Background(lipgloss.Color("#282A36")).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(1, 2).
			MarginTop(1)

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))
)

type stage int

const (
	stageLoading stage = iota
	stageBrowsing
)

type overlaysReadyMsg struct {
	reg *registry.Registry
}

type model struct {
	stage   stage
	spinner spinner.Model

	reg    *registry.Registry
	cursor int
	taps   map[string]int
	status string
	err    error
}

func initialModel() model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6"))

	return model{
		stage:   stageLoading,
		spinner: s,
		taps:    make(map[string]int),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, buildSampleSet(m.taps))
}

// buildSampleSet generates a small registry exercising every
// positioning mode, wiring each overlay's tap callback to a counter.
func buildSampleSet(taps map[string]int) tea.Cmd {
	return func() tea.Msg {
		rng := rand.New(rand.NewSource(42))
		reg := registry.New()

		for i := 0; i < sampleSize; i++ {
			name := fmt.Sprintf("overlay-%d", i+1)
			id := overlay.NewGroundOverlayID(name)
			lat := rng.Float64()*120 - 60
			lng := rng.Float64()*300 - 150

			styling := []overlay.Option{
				overlay.WithZIndex(i),
				overlay.WithConsumeTapEvents(true),
				overlay.WithBitmap(models.AssetBitmap(name + ".png")),
				overlay.WithOnTap(func() { taps[name]++ }),
			}

			var g *overlay.GroundOverlay
			var err error
			switch i % 3 {
			case 0:
				g, err = overlay.NewAtLocation(id,
					models.Location{Latitude: lat, Longitude: lng},
					500, 300, styling...)
			case 1:
				g, err = overlay.NewAtLocationWithWidth(id,
					models.Location{Latitude: lat, Longitude: lng},
					500, styling...)
			default:
				g, err = overlay.NewWithBounds(id, models.BoundingBox{
					Southwest: models.Location{Latitude: lat, Longitude: lng},
					Northeast: models.Location{Latitude: lat + 2, Longitude: lng + 3},
				}, styling...)
			}
			if err != nil {
				log.Fatalf("failed to build sample overlay: %v", err)
			}
			if err := reg.Add(g); err != nil {
				log.Fatalf("failed to register sample overlay: %v", err)
			}
		}

		return overlaysReadyMsg{reg: reg}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overlaysReadyMsg:
		m.reg = msg.reg
		m.stage = stageBrowsing
		m.status = "sample set ready"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	if m.stage != stageBrowsing {
		return m, nil
	}

	overlays := m.reg.Overlays()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(overlays)-1 {
			m.cursor++
		}
	case "v":
		g := overlays[m.cursor]
		m.revise(g, overlay.WithVisible(!g.Visible()))
	case "b":
		g := overlays[m.cursor]
		m.revise(g, overlay.WithBearing(rotate(g.Bearing())))
	case "t":
		g := overlays[m.cursor]
		m.revise(g, overlay.WithTransparency(fade(g.Transparency())))
	case "+", "=":
		g := overlays[m.cursor]
		m.revise(g, overlay.WithZIndex(g.ZIndex()+1))
	case "-":
		g := overlays[m.cursor]
		m.revise(g, overlay.WithZIndex(g.ZIndex()-1))
	case "x":
		g := overlays[m.cursor]
		if m.reg.DispatchTap(g.ID()) {
			m.status = fmt.Sprintf("tap consumed by %s", g.ID())
		} else {
			m.status = "tap fell through to the map"
		}
	}
	return m, nil
}

// revise swaps the selected overlay for a CopyWith revision. Overlays
// are immutable, so every edit goes through copy and re-registration.
func (m *model) revise(g *overlay.GroundOverlay, opt overlay.Option) {
	revised, err := g.CopyWith(opt)
	if err != nil {
		m.err = err
		return
	}
	if err := m.reg.Update(revised); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("updated %s", revised.ID())
}

func rotate(bearing float64) float64 {
	next := bearing + 45
	if next >= 360 {
		next -= 360
	}
	return next
}

func fade(transparency float64) float64 {
	next := transparency + 0.25
	if next > 1.0 {
		next = 0.0
	}
	return next
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ground Overlay Demo"))
	b.WriteString("\n")

	if m.stage == stageLoading {
		b.WriteString(fmt.Sprintf("%s generating sample overlays...\n", m.spinner.View()))
		return b.String()
	}

	overlays := m.reg.Overlays()
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d overlays registered", len(overlays))))
	b.WriteString("\n\n")

	for i, g := range overlays {
		line := fmt.Sprintf("%-12s %-12s z=%-3d bearing=%-5.1f transparency=%.2f",
			g.ID(), g.PositionMode(), g.ZIndex(), g.Bearing(), g.Transparency())
		if taps := m.taps[g.ID().String()]; taps > 0 {
			line += statStyle.Render(fmt.Sprintf("  taps=%d", taps))
		}
		if !g.Visible() {
			line = hiddenStyle.Render(line + "  (hidden)")
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(overlays) > 0 {
		raw, err := json.MarshalIndent(overlays[m.cursor].ToJSON(), "", "  ")
		if err == nil {
			b.WriteString(boxStyle.Render(string(raw)))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(hiddenStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("↑/↓ select · v visibility · b bearing · t transparency · +/- z-index · x tap · q quit"))
	b.WriteString("\n")
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}
