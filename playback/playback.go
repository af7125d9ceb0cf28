package playback

import (
	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/logger"
	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/util"
)

type State int

const (
	Idle State = iota
	Playing
	Paused
)

func (s State) String() string {
	return [...]string{"idle", "playing", "paused"}[s]
}

// None means no note is highlighted.
const None = -1

// Clock is the audio element's time. It is the only notion of "now".
type Clock interface {
	Now() float64
	Seek(t float64)
	// Duration is 0 while unknown.
	Duration() float64
}

// Viewport is the scrolling container the score is drawn in, in score pixels.
type Viewport interface {
	ScrollTop() float64
	Height() float64
	ScrollTo(top float64, smooth bool)
}

type FrameID int

// FrameScheduler is requestAnimationFrame and cancelAnimationFrame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type HighlightState struct {
	Active    int
	LastKnown int
}

// ActiveIndex returns the last note whose start time has passed, scanning
// the whole table. Untimed notes are skipped. When nothing has started yet
// prev is returned unchanged.
func ActiveIndex(notes []model.NoteGlyph, t float64, prev int) int {
	active := None
	for i, n := range notes {
		if !n.Timed || !model.ValidTime(n.StartTime) {
			continue
		}
		if n.StartTime <= t {
			active = i
		}
	}
	if active == None {
		return prev
	}
	return active
}

// HighlightRect is the box painted behind note n.
func HighlightRect(n model.NoteGlyph) model.Rect {
	return model.Rect{
		X:      n.Bounds.X - constants.HighlightMargin,
		Y:      n.RowCenterY - constants.HighlightHeight/2,
		Width:  n.Bounds.Width + 2*constants.HighlightMargin,
		Height: constants.HighlightHeight,
	}
}

// InCentralBand reports whether r sits inside the middle half of the viewport.
func InCentralBand(r model.Rect, scrollTop float64, height float64) bool {
	top := r.Y - scrollTop
	bottom := r.Bottom() - scrollTop
	return top >= height*0.25 && bottom <= height*0.75
}

// Controller keeps the highlighted note in step with the clock. It is not
// safe for concurrent use; everything runs on the UI's single thread.
type Controller struct {
	clock    Clock
	viewport Viewport
	frames   FrameScheduler
	log      *logger.Logger

	notes []model.NoteGlyph
	state State
	hl    HighlightState
	rect  model.Rect

	frame        FrameID
	framePending bool

	// OnChange is called whenever the highlight moves or is cleared.
	OnChange func(active int, rect model.Rect)
}

func New(clock Clock, viewport Viewport, frames FrameScheduler, log *logger.Logger) *Controller {
	return &Controller{
		clock:    clock,
		viewport: viewport,
		frames:   frames,
		log:      log,
		hl:       HighlightState{Active: None, LastKnown: None},
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Highlight() HighlightState {
	return c.hl
}

func (c *Controller) Active() int {
	return c.hl.Active
}

// HighlightRect returns the current highlight box, if any.
func (c *Controller) HighlightRect() (model.Rect, bool) {
	if c.hl.Active == None {
		return model.Rect{}, false
	}
	return c.rect, true
}

// Bind swaps in the note table of a fresh render. The active note is kept
// and its box recomputed against the new geometry.
func (c *Controller) Bind(notes []model.NoteGlyph) {
	c.notes = notes

	untimed := 0
	for _, n := range notes {
		if !n.Timed {
			untimed++
		}
	}
	if untimed > 0 {
		c.log.Warnf("%d of %d notes have no usable start time and will not highlight", untimed, len(notes))
	}

	if c.hl.Active >= len(notes) {
		c.clearHighlight()
		return
	}
	if c.hl.Active != None {
		c.rect = HighlightRect(notes[c.hl.Active])
		c.notify()
	}
}

func (c *Controller) Play() {
	if c.state == Playing {
		return
	}
	c.log.Debugf("playback %v -> playing at %.3f", c.state, c.clock.Now())
	c.state = Playing
	c.scheduleFrame()
}

// Pause freezes the highlight where it is.
func (c *Controller) Pause() {
	if c.state != Playing {
		return
	}
	c.log.Debugf("playback paused at %.3f", c.clock.Now())
	c.cancelFrame()
	c.state = Paused
}

// Reset is an explicit stop: clock back to zero, highlight gone, scrolled to top.
func (c *Controller) Reset() {
	c.log.Debugf("playback %v -> idle", c.state)
	c.cancelFrame()
	c.state = Idle
	c.clock.Seek(0)
	c.clearHighlight()
	c.viewport.ScrollTo(0, true)
}

// End is the media reaching its natural end.
func (c *Controller) End() {
	c.Reset()
}

// Tick runs once per animation frame while playing.
func (c *Controller) Tick() {
	c.framePending = false
	if c.state != Playing {
		return
	}
	if c.sync() && c.hl.Active != None {
		if !InCentralBand(c.rect, c.viewport.ScrollTop(), c.viewport.Height()) {
			c.scrollTo(c.rect)
		}
	}
	c.scheduleFrame()
}

// Seek moves the clock and always brings the resulting note into view.
func (c *Controller) Seek(t float64) {
	if d := c.clock.Duration(); d > 0 {
		t = util.Min(t, d)
	}
	t = util.Max(t, 0)
	c.clock.Seek(t)
	c.sync()
	if c.hl.Active != None {
		c.scrollTo(c.rect)
	}
}

// Skip seeks relative to the current time, e.g. ±10s.
func (c *Controller) Skip(delta float64) {
	c.Seek(c.clock.Now() + delta)
}

// SeekToNote is click-to-seek. Notes without a start time are ignored.
func (c *Controller) SeekToNote(i int) bool {
	if i < 0 || i >= len(c.notes) || !c.notes[i].Timed {
		return false
	}
	c.Seek(c.notes[i].StartTime)
	return true
}

// Unmount stops frame callbacks and forgets the rendered notes.
func (c *Controller) Unmount() {
	c.cancelFrame()
	c.notes = nil
	c.OnChange = nil
}

// sync recomputes the active note. Returns true when it changed.
func (c *Controller) sync() bool {
	next := ActiveIndex(c.notes, c.clock.Now(), c.hl.Active)
	if next == c.hl.Active {
		return false
	}
	c.hl.Active = next
	if next != None {
		c.hl.LastKnown = next
		c.rect = HighlightRect(c.notes[next])
	}
	c.notify()
	return true
}

func (c *Controller) scrollTo(r model.Rect) {
	top := util.Max(r.CenterY()-c.viewport.Height()/2, 0)
	c.viewport.ScrollTo(top, true)
}

func (c *Controller) clearHighlight() {
	c.hl = HighlightState{Active: None, LastKnown: None}
	c.rect = model.Rect{}
	c.notify()
}

func (c *Controller) notify() {
	if c.OnChange != nil {
		c.OnChange(c.hl.Active, c.rect)
	}
}

func (c *Controller) scheduleFrame() {
	c.cancelFrame()
	c.frame = c.frames.RequestFrame(c.Tick)
	c.framePending = true
}

func (c *Controller) cancelFrame() {
	if c.framePending {
		c.frames.CancelFrame(c.frame)
		c.framePending = false
	}
}
