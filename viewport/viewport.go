// Package viewport maps a source image onto a fixed size square viewport
// with pan and zoom, and maps viewport pixels back to source pixels.
package viewport

import (
	"math"
)

// State is the lifecycle stage of a Transform.
type State int

const (
	Empty State = iota
	Initialized
	Confirmed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Initialized:
		return "initialized"
	case Confirmed:
		return "confirmed"
	}
	return "unknown"
}

// Default wheel steps.
const (
	DefaultZoomIn  = 1.05
	DefaultZoomOut = 0.95
)

// Rect is a rectangle in source image coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Transform places a SourceWidth x SourceHeight image in a Size x Size
// viewport: source point p lands on viewport point p*Scale + Offset.
//
// Pan and Zoom may leave the image partially outside the valid range;
// AdjustBoundary restores it and is applied by every read.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64
	SourceWidth      int
	SourceHeight     int
	Size             float64

	ZoomIn, ZoomOut float64

	state State
}

// New returns an empty transform for a viewport of the given edge length.
func New(size float64) *Transform {
	return &Transform{
		Size:    size,
		ZoomIn:  DefaultZoomIn,
		ZoomOut: DefaultZoomOut,
	}
}

// State returns the lifecycle stage.
func (t *Transform) State() State { return t.state }

// MinScale is the smallest scale at which the source covers the viewport.
func (t *Transform) MinScale() float64 {
	if t.SourceWidth <= 0 || t.SourceHeight <= 0 {
		return 0
	}
	return math.Max(t.Size/float64(t.SourceWidth), t.Size/float64(t.SourceHeight))
}

// Initialize fits a new w x h source to the viewport at minimum scale,
// centered. It discards any previous image, confirmed or not.
func (t *Transform) Initialize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	t.SourceWidth = w
	t.SourceHeight = h
	t.Scale = t.MinScale()
	t.center()
	t.state = Initialized
}

// Pan moves the image by (dx, dy) viewport pixels.
func (t *Transform) Pan(dx, dy float64) {
	if t.state != Initialized || !finite(dx, dy) {
		return
	}
	t.OffsetX += dx
	t.OffsetY += dy
}

// Zoom scales the image by factor around the viewport point (px, py).
func (t *Transform) Zoom(factor, px, py float64) {
	if t.state != Initialized || !(factor > 0) || !finite(factor, px, py) {
		return
	}
	t.OffsetX -= (px - t.OffsetX) * (factor - 1)
	t.OffsetY -= (py - t.OffsetY) * (factor - 1)
	t.Scale *= factor
}

// ZoomStep applies one wheel notch around (px, py).
func (t *Transform) ZoomStep(in bool, px, py float64) {
	if in {
		t.Zoom(t.ZoomIn, px, py)
	} else {
		t.Zoom(t.ZoomOut, px, py)
	}
}

// AdjustBoundary enforces the minimum scale and keeps the viewport
// covered: an axis larger than the viewport is clamped to
// [Size-scaled, 0], a smaller one is centered.
func (t *Transform) AdjustBoundary() {
	if t.state == Empty {
		return
	}

	if ms := t.MinScale(); t.Scale < ms {
		t.Scale = ms
		t.center()
	}

	t.OffsetX = clampAxis(t.OffsetX, float64(t.SourceWidth)*t.Scale, t.Size)
	t.OffsetY = clampAxis(t.OffsetY, float64(t.SourceHeight)*t.Scale, t.Size)
}

// Confirm locks the crop. It reports whether the transform was unlocked.
func (t *Transform) Confirm() bool {
	if t.state != Initialized {
		return false
	}
	t.AdjustBoundary()
	t.state = Confirmed
	return true
}

// SourceRect returns the part of the source visible in the viewport.
func (t *Transform) SourceRect() Rect {
	if t.state == Empty {
		return Rect{}
	}
	t.AdjustBoundary()
	side := t.Size / t.Scale
	return Rect{
		X: -t.OffsetX / t.Scale,
		Y: -t.OffsetY / t.Scale,
		W: side,
		H: side,
	}
}

// SourcePoint returns the source pixel under viewport point (vx, vy).
// ok is false outside the viewport or without an image.
func (t *Transform) SourcePoint(vx, vy float64) (x, y int, ok bool) {
	if t.state == Empty || !(vx >= 0 && vy >= 0 && vx < t.Size && vy < t.Size) {
		return 0, 0, false
	}
	t.AdjustBoundary()
	x = clampInt(int(math.Floor((vx-t.OffsetX)/t.Scale)), t.SourceWidth-1)
	y = clampInt(int(math.Floor((vy-t.OffsetY)/t.Scale)), t.SourceHeight-1)
	return x, y, true
}

func (t *Transform) center() {
	t.OffsetX = (t.Size - float64(t.SourceWidth)*t.Scale) / 2
	t.OffsetY = (t.Size - float64(t.SourceHeight)*t.Scale) / 2
}

// finite reports whether none of vs is NaN or infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampAxis(offset, scaled, size float64) float64 {
	if scaled > size {
		return math.Max(math.Min(offset, 0), size-scaled)
	}
	return (size - scaled) / 2
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
