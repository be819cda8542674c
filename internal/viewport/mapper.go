package viewport

import "math"

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Mapper converts pointer positions to tile indices. The game view is a
// fixed RenderW x RenderH target presented, scaled, inside a window rect.
type Mapper struct {
	RenderW, RenderH int
	TileW, TileH     int
}

// TileAt maps a window-space pointer to a world tile index. ok is false
// when the pointer lies outside view. The result is not clamped to the
// grid; callers bounds-check before indexing.
func (m Mapper) TileAt(pointer Vec, view Rect, cam Camera) (tx, ty int, ok bool) {
	world, ok := m.WorldAt(pointer, view, cam)
	if !ok {
		return 0, 0, false
	}
	tx = int(math.Floor(world.X / float64(m.TileW)))
	ty = int(math.Floor(world.Y / float64(m.TileH)))
	return tx, ty, true
}

// WorldAt maps a window-space pointer to world pixels.
func (m Mapper) WorldAt(pointer Vec, view Rect, cam Camera) (Vec, bool) {
	local, ok := m.RenderAt(pointer, view)
	if !ok {
		return Vec{}, false
	}
	return cam.ScreenToWorld(local), true
}

// RenderAt maps a window-space pointer to render-target pixels.
func (m Mapper) RenderAt(pointer Vec, view Rect) (Vec, bool) {
	if view.W <= 0 || view.H <= 0 {
		return Vec{}, false
	}
	lx := pointer.X - view.X
	ly := pointer.Y - view.Y
	if lx < 0 || ly < 0 || lx > view.W || ly > view.H {
		return Vec{}, false
	}
	return Vec{
		X: lx * float64(m.RenderW) / view.W,
		Y: ly * float64(m.RenderH) / view.H,
	}, true
}

// Fit returns the largest rect inside avail with the aspect ratio of a
// renderW x renderH target, centred with bars on the long side.
func Fit(avail Rect, renderW, renderH int) Rect {
	if avail.W <= 0 || avail.H <= 0 || renderW <= 0 || renderH <= 0 {
		return Rect{X: avail.X, Y: avail.Y}
	}
	target := float64(renderW) / float64(renderH)
	w, h := avail.W, avail.H
	if avail.W/avail.H > target {
		w = avail.H * target
	} else {
		h = avail.W / target
	}
	return Rect{
		X: avail.X + (avail.W-w)/2,
		Y: avail.Y + (avail.H-h)/2,
		W: w,
		H: h,
	}
}
