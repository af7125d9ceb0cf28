package playback

type fakeClock struct {
	t        float64
	duration float64
	seeks    []float64
}

func (c *fakeClock) Now() float64      { return c.t }
func (c *fakeClock) Duration() float64 { return c.duration }
func (c *fakeClock) Seek(t float64) {
	c.t = t
	c.seeks = append(c.seeks, t)
}

type scroll struct {
	top    float64
	smooth bool
}

type fakeViewport struct {
	top     float64
	height  float64
	scrolls []scroll
}

func (v *fakeViewport) ScrollTop() float64 { return v.top }
func (v *fakeViewport) Height() float64    { return v.height }
func (v *fakeViewport) ScrollTo(top float64, smooth bool) {
	v.top = top
	v.scrolls = append(v.scrolls, scroll{top: top, smooth: smooth})
}

type fakeFrames struct {
	next      FrameID
	pending   map[FrameID]func()
	requested int
	cancelled int
}

func newFakeFrames() *fakeFrames {
	return &fakeFrames{pending: make(map[FrameID]func())}
}

func (f *fakeFrames) RequestFrame(fn func()) FrameID {
	f.next++
	f.requested++
	f.pending[f.next] = fn
	return f.next
}

func (f *fakeFrames) CancelFrame(id FrameID) {
	if _, ok := f.pending[id]; ok {
		f.cancelled++
	}
	delete(f.pending, id)
}

// flush runs whatever frames are pending right now, like one display refresh.
func (f *fakeFrames) flush() {
	current := f.pending
	f.pending = make(map[FrameID]func())
	for _, fn := range current {
		fn()
	}
}
