package view

import (
	"github.com/jsphweid/pitchscore/logger"
	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/playback"
	"github.com/jsphweid/pitchscore/render"
	"github.com/jsphweid/pitchscore/score"
)

// clearer is implemented by toolkits that keep what they drew.
type clearer interface {
	Reset()
}

// Binding is the click/hover handler attached to one drawn note. It goes
// dead as soon as the surface re-renders.
type Binding struct {
	Glyph    model.NoteGlyph
	position int
	surface  *Surface
	attached bool
}

func (b *Binding) Attached() bool {
	return b.attached
}

// Click seeks playback to the note.
func (b *Binding) Click() bool {
	if !b.attached {
		return false
	}
	return b.surface.ctrl.SeekToNote(b.position)
}

func (b *Binding) Enter() {
	if b.attached {
		b.surface.hovered = b.position
	}
}

func (b *Binding) Leave() {
	if b.attached && b.surface.hovered == b.position {
		b.surface.hovered = playback.None
	}
}

// Surface owns the drawn score. Any change in width or data throws the old
// layout away and builds a new one.
type Surface struct {
	ctrl *playback.Controller
	tk   render.Toolkit
	log  *logger.Logger

	score    *score.Score
	width    float64
	rendered render.Rendered
	bindings []*Binding
	hovered  int
	renders  int
}

func New(ctrl *playback.Controller, tk render.Toolkit, log *logger.Logger) *Surface {
	return &Surface{ctrl: ctrl, tk: tk, log: log, hovered: playback.None}
}

func (s *Surface) Load(sc *score.Score) {
	s.score = sc
	s.render()
}

func (s *Surface) Resize(width float64) {
	s.width = width
	s.render()
}

func (s *Surface) Grid() model.LayoutGrid {
	return s.rendered.Grid
}

func (s *Surface) Notes() []model.NoteGlyph {
	return s.rendered.Notes
}

func (s *Surface) Bindings() []*Binding {
	return s.bindings
}

// Binding returns the handler for the note at position i of the note table.
func (s *Surface) Binding(i int) *Binding {
	if i < 0 || i >= len(s.bindings) {
		return nil
	}
	return s.bindings[i]
}

func (s *Surface) Hovered() int {
	return s.hovered
}

func (s *Surface) Renders() int {
	return s.renders
}

func (s *Surface) Score() *score.Score {
	return s.score
}

func (s *Surface) Width() float64 {
	return s.width
}

// Unmount detaches every handler and stops playback callbacks.
func (s *Surface) Unmount() {
	s.unbind()
	s.ctrl.Unmount()
	s.score = nil
	s.rendered = render.Rendered{}
}

func (s *Surface) unbind() {
	for _, b := range s.bindings {
		b.attached = false
	}
	s.bindings = nil
	s.hovered = playback.None
}

func (s *Surface) render() {
	s.unbind()
	if c, ok := s.tk.(clearer); ok {
		c.Reset()
	}

	var measures []model.Measure
	if s.score != nil {
		measures = s.score.Measures
	}
	s.rendered = render.Render(measures, s.width, s.tk)
	s.renders++
	s.log.Debugf("rendered %d measures in %d rows at width %.0f", len(s.rendered.Grid.Cells), s.rendered.Grid.Rows, s.width)

	s.bindings = make([]*Binding, 0, len(s.rendered.Notes))
	for i, g := range s.rendered.Notes {
		s.bindings = append(s.bindings, &Binding{Glyph: g, position: i, surface: s, attached: true})
	}
	s.ctrl.Bind(s.rendered.Notes)
}
