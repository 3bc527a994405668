package froggy

import (
	"errors"
	"fmt"
)

// ErrRowOutOfRange is returned for rows outside the window or rows whose
// lane has been released.
var ErrRowOutOfRange = errors.New("froggy: row out of range")

const (
	// TrackLen is the number of visible lanes.
	TrackLen = 8
	// PlayerRow is the row the frog stands on.
	PlayerRow = 2
)

// Track is the fixed-length window of visible lanes. Index 0 is the lane
// nearest the bottom edge, which is also the oldest.
type Track struct {
	lanes []*Lane
}

// NewTrack takes ownership of lanes and assigns their rows.
func NewTrack(lanes []*Lane) *Track {
	t := &Track{lanes: lanes}
	t.assignRows()
	return t
}

func (t *Track) assignRows() {
	for i, l := range t.lanes {
		if l != nil {
			l.SetRow(i)
		}
	}
}

// Len returns the window size.
func (t *Track) Len() int {
	return len(t.lanes)
}

// Lane returns the lane on row i.
func (t *Track) Lane(i int) (*Lane, error) {
	if i < 0 || i >= len(t.lanes) || t.lanes[i] == nil {
		return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	return t.lanes[i], nil
}

// AdvanceWindow appends l at the far end, evicts and destroys the nearest
// lane and renumbers every row.
func (t *Track) AdvanceWindow(l *Lane) {
	if len(t.lanes) == 0 {
		t.lanes = append(t.lanes, l)
		t.assignRows()
		return
	}
	evicted := t.lanes[0]
	copy(t.lanes, t.lanes[1:])
	t.lanes[len(t.lanes)-1] = l
	if evicted != nil {
		evicted.Destroy()
	}
	t.assignRows()
}

// TickAll ticks every live lane in window order.
func (t *Track) TickAll() {
	for _, l := range t.lanes {
		if l != nil {
			l.Tick()
		}
	}
}

// Freeze releases every lane outside rows [lo, hi]. The remaining lanes
// stay visible but are no longer ticked by the game.
func (t *Track) Freeze(lo, hi int) {
	for i, l := range t.lanes {
		if l != nil && (i < lo || i > hi) {
			l.Destroy()
			t.lanes[i] = nil
		}
	}
}

// Destroy releases every lane.
func (t *Track) Destroy() {
	for i, l := range t.lanes {
		if l != nil {
			l.Destroy()
			t.lanes[i] = nil
		}
	}
}

// Kinds returns the kind of each row, for inspection.
func (t *Track) Kinds() []LaneKind {
	kinds := make([]LaneKind, len(t.lanes))
	for i, l := range t.lanes {
		if l != nil {
			kinds[i] = l.Kind
		}
	}
	return kinds
}
