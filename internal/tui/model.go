package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"lifecal/internal/config"
	"lifecal/internal/grid"
	"lifecal/internal/life"
	"lifecal/internal/pattern"
	"lifecal/internal/surface"
)

// tickMsg is the host timer: one arrives per interval whether or not the
// simulation is running, since the view refreshes on every message.
type tickMsg time.Time

// Model adapts the simulation controller to the bubbletea event loop. The
// loop scheduler keeps every tick on this single goroutine, so the TUI
// host needs no locking of its own.
type Model struct {
	ctrl *life.Controller
	cal  *surface.Calendar
	loop *life.LoopScheduler

	interval time.Duration
	fill     int
	anchor   time.Time

	patterns   []pattern.Pattern
	patternIdx int

	keys   keyMap
	help   help.Model
	styles Styles
	width  int
}

// New builds the TUI model from configuration.
func New(cfg config.Config, log *zap.Logger) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	from, to, err := cfg.Range()
	if err != nil {
		return Model{}, err
	}

	cal := surface.NewCalendar(from, to)
	if len(cal.Keys()) == 0 {
		return Model{}, errors.Errorf("[New] empty calendar range %s..%s", cfg.From, cfg.To)
	}

	engine := life.NewEngine(cal)
	engine.SetWorkers(cfg.Workers)
	renderer := life.NewRenderer(cal, engine.Index(), cfg.SeedValue())
	loop := &life.LoopScheduler{}
	ctrl := life.NewController(engine, renderer, loop, cfg.Tick(), cfg.SeedValue()+1, log)

	patterns := make([]pattern.Pattern, 0, len(pattern.Names()))
	for _, name := range pattern.Names() {
		if p, ok := pattern.Preset(name); ok {
			patterns = append(patterns, p)
		}
	}
	if cfg.PatternFile != "" {
		loaded, err := pattern.LoadFile(cfg.PatternFile)
		if err != nil {
			return Model{}, err
		}
		patterns = append(patterns, loaded...)
	}

	// Anchor patterns at the middle of the range so presets land away
	// from the edges.
	anchor := from.AddDate(0, 0, len(cal.Keys())/2)

	return Model{
		ctrl:     ctrl,
		cal:      cal,
		loop:     loop,
		interval: cfg.Tick(),
		fill:     cfg.FillPercent,
		anchor:   anchor,
		patterns: patterns,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
	}, nil
}

// Run starts the interactive program and blocks until quit.
func Run(cfg config.Config, log *zap.Logger) error {
	m, err := New(cfg, log)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return errors.Wrap(err, "[Run] tui terminated")
}

// Init schedules the first host tick.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles host ticks and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.loop.Fire()
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctrl.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.ctrl.Running() {
				m.ctrl.Stop()
			} else {
				m.ctrl.Start()
			}
		case key.Matches(msg, m.keys.Step):
			m.ctrl.Step()
		case key.Matches(msg, m.keys.Randomize):
			m.ctrl.Randomize(m.fill)
		case key.Matches(msg, m.keys.Clear):
			m.ctrl.Clear()
		case key.Matches(msg, m.keys.Pattern):
			m.applyNextPattern()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) applyNextPattern() {
	if len(m.patterns) == 0 {
		return
	}
	p := m.patterns[m.patternIdx%len(m.patterns)]
	col := surface.Palette[m.patternIdx%len(surface.Palette)]
	m.patternIdx++
	m.ctrl.ApplyPattern(p.Keys(m.anchor), col)
}

var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// View renders title, heat-map board, and status footer.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("lifecal - game of life on a calendar"))
	b.WriteByte('\n')
	b.WriteString(m.viewBoard())
	b.WriteByte('\n')
	b.WriteString(m.viewFooter())
	b.WriteByte('\n')
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// viewBoard lays cells out GitHub-style: one row per weekday, one column
// per week.
func (m Model) viewBoard() string {
	keys := m.cal.Keys()
	first, err := grid.ParseKey(keys[0])
	if err != nil {
		return ""
	}
	lead := int(first.Weekday())
	weeks := (lead + len(keys) + 6) / 7

	cells := make([][]string, 7)
	for r := range cells {
		cells[r] = make([]string, weeks)
		for c := range cells[r] {
			cells[r][c] = emptyBlock
		}
	}
	for i, k := range keys {
		pos := lead + i
		c, _ := m.cal.Color(k)
		cells[pos%7][pos/7] = cellBlock(c)
	}

	var b strings.Builder
	for r := 0; r < 7; r++ {
		b.WriteString(m.styles.DayLabel.Render(dayLabels[r]))
		for c := 0; c < weeks; c++ {
			b.WriteString(cells[r][c])
		}
		if r < 6 {
			b.WriteByte('\n')
		}
	}
	return m.styles.Board.Render(b.String())
}

func (m Model) viewFooter() string {
	status := "stopped"
	if m.ctrl.Running() {
		status = m.styles.StatusOn.Render("running")
	}
	st := m.ctrl.Stats()
	next := "-"
	if len(m.patterns) > 0 {
		next = m.patterns[m.patternIdx%len(m.patterns)].Name
	}
	return m.styles.Footer.Render(fmt.Sprintf(
		"%s | gen %d | pop %d | %.1f gen/s | fill %d%% | next pattern: %s",
		status, st.Generations, m.ctrl.Population(), st.GenerationsPerSecond, m.fill, next,
	))
}
