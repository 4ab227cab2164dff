package game

import (
	"image"

	"github.com/iburimskiy/helix-visualization/internal/helix"
)

// eventTracker turns polled window state into the edge-triggered events the
// engine consumes: resize when the measured surface changes, pointer-move
// when the cursor changes, and the current visibility.
type eventTracker struct {
	cursor image.Point
	seen   bool
}

func (t *eventTracker) collect(current helix.Surface, display image.Point, scale float64, cursor image.Point, focused bool) helix.Input {
	in := helix.Input{Visibility: helix.Active}
	if !focused {
		in.Visibility = helix.Idle
	}

	if display.X > 0 && display.Y > 0 && helix.Measure(display.X, display.Y, scale) != current {
		in.Resized = true
		in.DisplayWidth, in.DisplayHeight = display.X, display.Y
		in.Scale = scale
	}

	// The first poll only records where the cursor is; the pointer
	// target stays centered until the cursor actually moves.
	if t.seen && cursor != t.cursor {
		in.PointerMoved = true
		in.PointerX, in.PointerY = float64(cursor.X), float64(cursor.Y)
	}
	t.cursor, t.seen = cursor, true
	return in
}
