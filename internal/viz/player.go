package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fieldview/internal/analysis"
	"github.com/san-kum/fieldview/internal/field"
	"github.com/san-kum/fieldview/internal/storage"
)

// ErrNoFrames indicates there is nothing to play.
var ErrNoFrames = errors.New("viz: no frames to play")

const (
	quiverWidth  = 32
	quiverHeight = 16
	heatmapCols  = 32
	chartWidth   = 40
	chartHeight  = 5
)

type tickMsg time.Time

type PlayerOptions struct {
	Interval    time.Duration
	Orientation Orientation
	Theme       Theme
	Loop        bool
	// ChartPanel selects the scalar panel whose per-frame maximum is charted;
	// -1 picks the last scalar panel.
	ChartPanel int
}

// panelView caches what a panel needs per frame.
type panelView struct {
	title   string
	ds      *field.Dataset
	palette Palette
	min     float64
	max     float64
}

// Player is a Bubble Tea model stepping every panel through its frames.
type Player struct {
	panels      []panelView
	frames      int
	frame       int
	interval    time.Duration
	orientation Orientation
	theme       Theme
	running     bool
	loop        bool
	chartTitle  string
	chart       []float64
}

// NewPlayer builds a player over loaded panels. Playback covers the shortest
// panel so every frame index is valid for every panel.
func NewPlayer(panels []storage.Panel, opts PlayerOptions) (Player, error) {
	if len(panels) == 0 {
		return Player{}, ErrNoFrames
	}
	p := Player{
		interval:    opts.Interval,
		orientation: opts.Orientation,
		theme:       opts.Theme,
		running:     true,
		loop:        opts.Loop,
	}
	if p.interval <= 0 {
		p.interval = time.Second / 30
	}
	if p.theme.Name == "" {
		p.theme = ThemeCyberpunk
	}

	chartIdx := opts.ChartPanel
	for i, sp := range panels {
		pal, err := GetPalette(sp.Config.Palette)
		if err != nil {
			return Player{}, err
		}
		p.panels = append(p.panels, panelView{
			title:   sp.Config.Title,
			ds:      sp.Dataset,
			palette: pal,
			min:     sp.Config.Min,
			max:     sp.Config.Max,
		})
		if opts.ChartPanel < 0 && sp.Dataset.Kind() == field.Scalar {
			chartIdx = i
		}
	}
	if p.frames = storage.FrameCount(panels); p.frames == 0 {
		return Player{}, ErrNoFrames
	}
	if chartIdx >= 0 && chartIdx < len(p.panels) {
		cp := p.panels[chartIdx]
		p.chartTitle = "max " + strings.ToLower(cp.title)
		p.chart = analysis.Series(analysis.Frames(cp.ds), analysis.MaxOf)
	}
	return p, nil
}

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.running = !p.running
		case "[":
			p.running = false
			p.Seek(p.frame - 1)
		case "]":
			p.running = false
			p.Seek(p.frame + 1)
		case "r":
			p.Seek(0)
		case "l":
			p.loop = !p.loop
		case "t":
			p.theme = NextTheme(p.theme)
		}
	case tickMsg:
		if p.running {
			p.advance()
		}
		return p, p.tick()
	}
	return p, nil
}

// advance moves to the next frame, wrapping when looping and pausing on the
// last frame otherwise.
func (p *Player) advance() {
	if p.frame+1 < p.frames {
		p.frame++
		return
	}
	if p.loop {
		p.frame = 0
		return
	}
	p.running = false
}

// Seek jumps to frame i, clamped to the valid range.
func (p *Player) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i >= p.frames {
		i = p.frames - 1
	}
	p.frame = i
}

func (p Player) Frame() int    { return p.frame }
func (p Player) Frames() int   { return p.frames }
func (p Player) Running() bool { return p.running }

func (p Player) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.Border).
		Padding(0, 1)

	views := make([]string, len(p.panels))
	for i, pv := range p.panels {
		views[i] = box.Render(title.Render(pv.title) + "\n" + p.renderPanel(pv))
	}

	var s strings.Builder
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	s.WriteString("\n")
	s.WriteString(p.status())
	if len(p.chart) > 1 {
		upto := p.chart[:max(p.frame+1, 2)]
		chart := asciigraph.Plot(upto,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(p.chartTitle),
		)
		s.WriteString("\n\n")
		s.WriteString(lipgloss.NewStyle().Foreground(p.theme.Text).Render(chart))
	}
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).Italic(true).
		Render("SP:Pause [ ]:Step R:Rewind L:Loop T:Theme Q:Quit"))
	return s.String()
}

// RenderFrame renders all panels at frame i without the interactive chrome.
func (p Player) RenderFrame(i int) string {
	p.Seek(i)
	views := make([]string, len(p.panels))
	for j, pv := range p.panels {
		views[j] = pv.title + "\n" + p.renderPanel(pv)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (p Player) renderPanel(pv panelView) string {
	g := pv.ds.Frame(p.frame)
	if pv.ds.Kind() == field.Vector {
		c := Quiver(g, QuiverOptions{
			Width:       quiverWidth,
			Height:      quiverHeight,
			Orientation: p.orientation,
		})
		return lipgloss.NewStyle().Foreground(p.theme.Arrow).Render(c.String())
	}
	return Heatmap(g, HeatmapOptions{
		Min:     pv.min,
		Max:     pv.max,
		Palette: pv.palette,
		MaxCols: heatmapCols,
	})
}

func (p Player) status() string {
	state := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Status).Render("PLAYING")
	if !p.running {
		state = lipgloss.NewStyle().Bold(true).Foreground(p.theme.Paused).Render("PAUSED")
	}
	loop := ""
	if p.loop {
		loop = " loop"
	}
	return fmt.Sprintf("%s  frame %d/%d  %s%s  theme %s",
		state, p.frame+1, p.frames, p.orientation, loop, p.theme.Name)
}

// Play runs the player until the user quits.
func Play(p Player) error {
	_, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}
