package model

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

type BarlineType string

const (
	SingleBarline BarlineType = "single"
	EndBarline    BarlineType = "end"
)

// Cell is one measure position in the grid.
type Cell struct {
	Row          int         `json:"row"`
	Col          int         `json:"col"`
	MeasureIndex int         `json:"measure_index"`
	Bounds       Rect        `json:"bounds"`
	WithClef     bool        `json:"with_clef"`
	Barline      BarlineType `json:"barline"`
}

// LayoutGrid is filled row-major. Cells[i].MeasureIndex == i always holds.
type LayoutGrid struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Rows           int     `json:"rows"`
	MeasuresPerRow int     `json:"measures_per_row"`
	MeasureWidth   float64 `json:"measure_width"`
	Cells          []Cell  `json:"cells"`
}

func (g LayoutGrid) Row(r int) []Cell {
	start := r * g.MeasuresPerRow
	if r < 0 || start >= len(g.Cells) {
		return nil
	}
	end := start + g.MeasuresPerRow
	if end > len(g.Cells) {
		end = len(g.Cells)
	}
	return g.Cells[start:end]
}

// NoteGlyph carries the four attributes the UI attaches to every drawn note,
// plus the glyph box needed for the highlight.
type NoteGlyph struct {
	Index      int     `json:"index"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	RowCenterY float64 `json:"row_center_y"`

	MeasureIndex int    `json:"measure_index"`
	Bounds       Rect   `json:"bounds"`
	Key          string `json:"key"`

	// false when the timing attributes could not be read
	Timed bool `json:"timed"`
}
