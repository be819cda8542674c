package game

import (
	"image"
	"testing"

	"tilesmith/internal/config"
)

func TestComputeLayout_SidebarAndView(t *testing.T) {
	cfg := config.Default()
	l := computeLayout(1580, 720, cfg, 3)

	if l.sidebar.Dx() != cfg.Editor.SidebarWidth {
		t.Fatalf("sidebar width: got %d want %d", l.sidebar.Dx(), cfg.Editor.SidebarWidth)
	}
	// 1280x720 fits exactly next to a 300px sidebar.
	if l.view.X != 300 || l.view.Y != 0 || l.view.W != 1280 || l.view.H != 720 {
		t.Fatalf("view: got %+v", l.view)
	}
	if l.sheetList.Dy() != 3*sheetRowHeight {
		t.Fatalf("sheet list height: got %d want %d", l.sheetList.Dy(), 3*sheetRowHeight)
	}
	if l.paletteOrigin.Y <= l.sheetList.Max.Y {
		t.Fatalf("palette should start below the sheet list")
	}
}

func TestComputeLayout_ButtonsDoNotOverlap(t *testing.T) {
	l := computeLayout(1280, 720, config.Default(), 0)
	if len(l.buttons) != 9 {
		t.Fatalf("buttons: got %d want 9", len(l.buttons))
	}
	for i, a := range l.buttons {
		if !a.rect.In(l.sidebar) {
			t.Errorf("button %q outside sidebar: %v", a.label, a.rect)
		}
		for _, b := range l.buttons[i+1:] {
			if a.rect.Overlaps(b.rect) {
				t.Errorf("buttons %q and %q overlap", a.label, b.label)
			}
		}
	}
}

func TestComputeLayout_NarrowWindowKeepsSidebarUsable(t *testing.T) {
	l := computeLayout(250, 300, config.Default(), 1)
	if l.sidebar.Dx() != minSidebarWidth {
		t.Fatalf("sidebar width: got %d want %d", l.sidebar.Dx(), minSidebarWidth)
	}
	if l.view.X < float64(l.sidebar.Max.X) {
		t.Fatalf("view overlaps sidebar: %+v", l.view)
	}
}

func TestScreenLayout_SheetAt(t *testing.T) {
	l := computeLayout(1280, 720, config.Default(), 4)
	row := l.sheetRow(2)
	i, ok := l.sheetAt(row.Min.X+5, row.Min.Y+3)
	if !ok || i != 2 {
		t.Fatalf("sheetAt: got %d,%v want 2,true", i, ok)
	}
	if _, ok := l.sheetAt(row.Min.X+5, l.sheetList.Max.Y); ok {
		t.Fatalf("point below the list should not hit a row")
	}
}

func TestPalette_ScalesAndPicksCells(t *testing.T) {
	// 4x2 cells of 16px at scale 2 fit in 284px.
	p := newPalette(image.Pt(10, 100), 284, 4, 2, 16, 16, 2)
	if p.cellW != 32 || p.cellH != 32 {
		t.Fatalf("cell size: got %dx%d want 32x32", p.cellW, p.cellH)
	}
	if got := p.bounds(); got != image.Rect(10, 100, 138, 164) {
		t.Fatalf("bounds: got %v", got)
	}

	cases := []struct {
		x, y   int
		cx, cy int
		ok     bool
	}{
		{10, 100, 0, 0, true},
		{41, 131, 0, 0, true},
		{42, 100, 1, 0, true},
		{137, 163, 3, 1, true},
		{138, 100, 0, 0, false},
		{9, 120, 0, 0, false},
	}
	for _, c := range cases {
		cx, cy, ok := p.cellAt(c.x, c.y)
		if ok != c.ok || (ok && (cx != c.cx || cy != c.cy)) {
			t.Errorf("cellAt(%d,%d): got %d,%d,%v want %d,%d,%v", c.x, c.y, cx, cy, ok, c.cx, c.cy, c.ok)
		}
	}
}

func TestPalette_ShrinksWideSheets(t *testing.T) {
	// 32 columns of 16px do not fit in 256px at scale 2, so cells shrink to 8px.
	p := newPalette(image.Pt(0, 0), 256, 32, 1, 16, 16, 2)
	if p.cellW != 8 {
		t.Fatalf("cell width: got %d want 8", p.cellW)
	}
	if p.bounds().Dx() > 256 {
		t.Fatalf("palette wider than available space: %d", p.bounds().Dx())
	}
}

func TestPalette_NoSheet(t *testing.T) {
	p := newPalette(image.Pt(0, 0), 256, 0, 0, 16, 16, 2)
	if _, _, ok := p.cellAt(0, 0); ok {
		t.Fatalf("empty palette should not hit cells")
	}
}
