package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/debounce"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/logger"
	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/playback"
	"github.com/jsphweid/pitchscore/render"
	"github.com/jsphweid/pitchscore/score"
	"github.com/jsphweid/pitchscore/view"
)

const (
	pxPerCol = 8
	// one grid row is drawn as two terminal lines
	pxPerLine   = (constants.StaveHeight + constants.StaveRowMargin) / 2
	headerLines = 3
	frameEvery  = 16 * time.Millisecond
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	activeStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	restStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type frameMsg time.Time

type relayoutMsg struct {
	width  int
	height int
}

type Model struct {
	surface  *view.Surface
	ctrl     *playback.Controller
	clock    *wallClock
	frames   *frameQueue
	viewport *termViewport
	log      *logger.Logger

	debounced func(func())
	send      func(tea.Msg)
	quitting  bool
}

func duration(sc *score.Score) float64 {
	var end float64
	for _, n := range sc.Notes {
		if model.ValidTime(n.EndTime) && n.EndTime > end {
			end = n.EndTime
		}
	}
	return end
}

func NewModel(sc *score.Score, log *logger.Logger) *Model {
	m := &Model{
		clock:     newWallClock(duration(sc)),
		frames:    &frameQueue{},
		viewport:  &termViewport{},
		log:       log,
		debounced: debounce.New(100 * time.Millisecond),
	}
	m.ctrl = playback.New(m.clock, m.viewport, m.frames, log)
	m.surface = view.New(m.ctrl, render.NewFixedToolkit(), log)
	m.surface.Load(sc)
	return m
}

// Run starts the preview and blocks until the user quits.
func Run(sc *score.Score, log *logger.Logger) error {
	m := NewModel(sc, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.send = p.Send
	_, err := p.Run()
	m.surface.Unmount()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(frameEvery, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) togglePlay() {
	switch m.ctrl.State() {
	case playback.Playing:
		m.clock.Stop()
		m.ctrl.Pause()
	default:
		m.clock.Start()
		m.ctrl.Play()
	}
}

func (m *Model) reset() {
	m.clock.Stop()
	m.ctrl.Reset()
}

func (m *Model) relayout(width int, height int) {
	m.viewport.lines = height - headerLines
	m.surface.Resize(float64(width * pxPerCol))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.togglePlay()
		case "r":
			m.reset()
		case "left":
			m.ctrl.Skip(-constants.SkipStep)
		case "right":
			m.ctrl.Skip(constants.SkipStep)
		}
	case tea.WindowSizeMsg:
		if m.surface.Width() == 0 || m.send == nil {
			m.relayout(msg.Width, msg.Height)
			break
		}
		w, h := msg.Width, msg.Height
		m.debounced(func() {
			m.send(relayoutMsg{width: w, height: h})
		})
	case relayoutMsg:
		m.relayout(msg.width, msg.height)
	case frameMsg:
		if m.ctrl.State() == playback.Playing && m.clock.Ended() {
			m.reset()
		}
		m.frames.run()
		return m, tick()
	}
	return m, nil
}

func formatTime(t float64) string {
	s := int(t)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func (m *Model) renderCell(cell model.Cell, measure model.Measure) string {
	var parts []string
	for _, slot := range measure {
		if slot.IsRest() {
			parts = append(parts, restStyle.Render(slot.Rest.String()))
			continue
		}
		label := slot.Note.String()
		if slot.Note.Index == m.ctrl.Active() {
			label = activeStyle.Render(label)
		}
		parts = append(parts, label)
	}
	body := "| " + strings.Join(parts, " ")
	if cell.Barline == model.EndBarline {
		body += " ||"
	}
	cols := int(cell.Bounds.Width) / pxPerCol
	return lipgloss.NewStyle().Width(cols).MaxWidth(cols).Render(body)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	sc := m.surface.Score()
	var b strings.Builder
	b.WriteString(titleStyle.Render(sc.Title) + "\n")

	active := "-"
	if i := m.ctrl.Active(); i != playback.None && i < len(sc.Notes) {
		active = sc.Notes[i].String()
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("%v  %v / %v  note %v   [space] play/pause  [r] reset  [←/→] ∓10s  [q] quit",
		m.ctrl.State(), formatTime(m.clock.Now()), formatTime(m.clock.Duration()), active)) + "\n\n")

	grid := m.surface.Grid()
	first := int(m.viewport.top) / pxPerLine
	var lines []string
	for r := 0; r < grid.Rows; r++ {
		var cells []string
		for _, cell := range grid.Row(r) {
			cells = append(cells, m.renderCell(cell, sc.Measures[cell.MeasureIndex]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...), "")
	}
	if first > len(lines) {
		first = len(lines)
	}
	end := len(lines)
	if m.viewport.lines > 0 && first+m.viewport.lines < end {
		end = first + m.viewport.lines
	}
	b.WriteString(strings.Join(lines[first:end], "\n"))
	return b.String()
}
