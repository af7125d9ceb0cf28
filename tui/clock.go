package tui

import (
	"time"

	"github.com/jsphweid/pitchscore/playback"
)

// wallClock stands in for the audio element when there is no audio.
type wallClock struct {
	pos      float64
	started  time.Time
	running  bool
	duration float64
	now      func() time.Time
}

func newWallClock(duration float64) *wallClock {
	return &wallClock{duration: duration, now: time.Now}
}

func (c *wallClock) Now() float64 {
	if !c.running {
		return c.pos
	}
	return c.pos + c.now().Sub(c.started).Seconds()
}

func (c *wallClock) Seek(t float64) {
	c.pos = t
	c.started = c.now()
}

func (c *wallClock) Duration() float64 {
	return c.duration
}

func (c *wallClock) Start() {
	if c.running {
		return
	}
	c.started = c.now()
	c.running = true
}

func (c *wallClock) Stop() {
	if !c.running {
		return
	}
	c.pos = c.Now()
	c.running = false
}

func (c *wallClock) Ended() bool {
	return c.duration > 0 && c.Now() >= c.duration
}

// frameQueue holds at most one animation frame callback, run on the next tick.
type frameQueue struct {
	id      playback.FrameID
	pending func()
}

func (q *frameQueue) RequestFrame(fn func()) playback.FrameID {
	q.id++
	q.pending = fn
	return q.id
}

func (q *frameQueue) CancelFrame(id playback.FrameID) {
	if id == q.id {
		q.pending = nil
	}
}

func (q *frameQueue) run() {
	fn := q.pending
	q.pending = nil
	if fn != nil {
		fn()
	}
}

// termViewport measures in score pixels; each terminal line shows
// pxPerLine of them.
type termViewport struct {
	top   float64
	lines int
}

func (v *termViewport) ScrollTop() float64 {
	return v.top
}

func (v *termViewport) Height() float64 {
	return float64(v.lines) * pxPerLine
}

func (v *termViewport) ScrollTo(top float64, _ bool) {
	v.top = top
}
