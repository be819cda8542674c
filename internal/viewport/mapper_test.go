package viewport

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCamera_RoundTrip(t *testing.T) {
	cam := Camera{Target: Vec{160, 160}, Offset: Vec{640, 360}, Zoom: 2}
	for _, p := range []Vec{{0, 0}, {640, 360}, {1280, 720}, {13.5, 700.25}} {
		back := cam.WorldToScreen(cam.ScreenToWorld(p))
		if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
	if w := cam.ScreenToWorld(Vec{640, 360}); w != (Vec{160, 160}) {
		t.Fatalf("offset should map to target, got %v", w)
	}
}

func TestCamera_ZoomClampAndPan(t *testing.T) {
	cam := NewCamera(Vec{0, 0}, 100, 50, 0.25)
	if cam.Offset != (Vec{50, 25}) {
		t.Fatalf("offset: got %v", cam.Offset)
	}
	cam.ZoomBy(-0.125, 0.125)
	cam.ZoomBy(-0.125, 0.125)
	if cam.Zoom != 0.125 {
		t.Fatalf("zoom: got %v want clamp at 0.125", cam.Zoom)
	}
	cam.Pan(3, -4)
	if cam.Target != (Vec{3, -4}) {
		t.Fatalf("pan: got %v", cam.Target)
	}
	cam.Center(320, 320)
	if cam.Target != (Vec{160, 160}) {
		t.Fatalf("center: got %v", cam.Target)
	}
}

func TestMapper_TileAt(t *testing.T) {
	m := Mapper{RenderW: 1280, RenderH: 720, TileW: 16, TileH: 16}
	// Viewport at (100,50), presented at half the render resolution.
	view := Rect{X: 100, Y: 50, W: 640, H: 360}
	cam := Camera{Target: Vec{0, 0}, Offset: Vec{0, 0}, Zoom: 1}

	tx, ty, ok := m.TileAt(Vec{100 + 40, 50 + 8}, view, cam)
	if !ok || tx != 5 || ty != 1 {
		t.Fatalf("TileAt: got (%d,%d,%v) want (5,1,true)", tx, ty, ok)
	}

	zoomed := Camera{Target: Vec{160, 160}, Offset: Vec{640, 360}, Zoom: 2}
	// Centre of the viewport shows the camera target.
	tx, ty, ok = m.TileAt(Vec{100 + 320, 50 + 180}, view, zoomed)
	if !ok || tx != 10 || ty != 10 {
		t.Fatalf("TileAt centre: got (%d,%d,%v) want (10,10,true)", tx, ty, ok)
	}
}

func TestMapper_OutsideViewport(t *testing.T) {
	m := Mapper{RenderW: 1280, RenderH: 720, TileW: 16, TileH: 16}
	view := Rect{X: 100, Y: 50, W: 640, H: 360}
	cam := Camera{Zoom: 1}

	for _, p := range []Vec{{99.9, 60}, {120, 49}, {740.5, 60}, {120, 410.01}, {-5, -5}} {
		if _, _, ok := m.TileAt(p, view, cam); ok {
			t.Errorf("pointer %v outside viewport mapped to a tile", p)
		}
	}
	// Edges are inside.
	if _, _, ok := m.TileAt(Vec{740, 410}, view, cam); !ok {
		t.Errorf("far edge should be inside the viewport")
	}
	if _, _, ok := m.TileAt(Vec{10, 10}, Rect{}, cam); ok {
		t.Errorf("degenerate viewport mapped a tile")
	}
}

func TestMapper_NoClampToGrid(t *testing.T) {
	m := Mapper{RenderW: 100, RenderH: 100, TileW: 10, TileH: 10}
	view := Rect{W: 100, H: 100}
	cam := Camera{Target: Vec{0, 0}, Offset: Vec{50, 50}, Zoom: 1}

	tx, ty, ok := m.TileAt(Vec{0, 0}, view, cam)
	if !ok || tx != -5 || ty != -5 {
		t.Fatalf("expected negative tile indices, got (%d,%d,%v)", tx, ty, ok)
	}
	tx, _, _ = m.TileAt(Vec{45, 50}, view, cam)
	if tx != -1 {
		t.Fatalf("partial tile left of origin: got %d want -1", tx)
	}
}

func TestFit(t *testing.T) {
	wide := Fit(Rect{X: 0, Y: 0, W: 2000, H: 720}, 1280, 720)
	if !approx(wide.W, 1280) || !approx(wide.H, 720) || !approx(wide.X, 360) || wide.Y != 0 {
		t.Fatalf("wide fit: %+v", wide)
	}
	tall := Fit(Rect{X: 10, Y: 20, W: 640, H: 1000}, 1280, 720)
	if !approx(tall.W, 640) || !approx(tall.H, 360) || tall.X != 10 || !approx(tall.Y, 20+320) {
		t.Fatalf("tall fit: %+v", tall)
	}
	if empty := Fit(Rect{X: 1, Y: 2}, 1280, 720); empty.W != 0 || empty.H != 0 {
		t.Fatalf("empty fit: %+v", empty)
	}
}
