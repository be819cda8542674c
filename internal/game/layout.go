package game

import (
	"image"

	"tilesmith/internal/config"
	"tilesmith/internal/mathutil"
	"tilesmith/internal/viewport"
)

type action int

const (
	actionNew action = iota
	actionSave
	actionSaveAs
	actionLoad
	actionPaint
	actionErase
	actionFill
	actionAddSheet
	actionRescan
)

type button struct {
	label  string
	action action
	rect   image.Rectangle
}

const (
	sidebarPadding  = 8
	buttonHeight    = 20
	buttonGap       = 4
	sheetRowHeight  = 16
	sectionGap      = 22
	minSidebarWidth = 160
)

var buttonRows = [][]struct {
	label  string
	action action
}{
	{{"New", actionNew}, {"Save", actionSave}, {"Save As", actionSaveAs}, {"Load", actionLoad}},
	{{"Paint", actionPaint}, {"Erase", actionErase}, {"Fill", actionFill}},
	{{"Add sheet", actionAddSheet}, {"Rescan", actionRescan}},
}

// screenLayout is the window split into the sidebar and the letterboxed
// game view. It depends only on the window size, the config and the number
// of registered sheets.
type screenLayout struct {
	width, height int
	sidebar       image.Rectangle
	view          viewport.Rect
	buttons       []button
	sheetList     image.Rectangle
	sheetRows     int
	paletteOrigin image.Point
	paletteWidth  int
}

func computeLayout(w, h int, cfg *config.Config, sheets int) screenLayout {
	sbW := mathutil.IntClamp(cfg.Editor.SidebarWidth, mathutil.IntMin(minSidebarWidth, w), w/2)
	l := screenLayout{
		width:   w,
		height:  h,
		sidebar: image.Rect(0, 0, sbW, h),
	}

	renderW, renderH := cfg.GetRenderSize()
	l.view = viewport.Fit(viewport.Rect{X: float64(sbW), W: float64(w - sbW), H: float64(h)}, renderW, renderH)

	inner := sbW - 2*sidebarPadding
	y := sidebarPadding
	for _, row := range buttonRows {
		bw := (inner - (len(row)-1)*buttonGap) / len(row)
		x := sidebarPadding
		for _, b := range row {
			l.buttons = append(l.buttons, button{
				label:  b.label,
				action: b.action,
				rect:   image.Rect(x, y, x+bw, y+buttonHeight),
			})
			x += bw + buttonGap
		}
		y += buttonHeight + buttonGap
	}

	y += sectionGap
	l.sheetRows = sheets
	l.sheetList = image.Rect(sidebarPadding, y, sidebarPadding+inner, y+sheets*sheetRowHeight)

	y = l.sheetList.Max.Y + sectionGap
	l.paletteOrigin = image.Pt(sidebarPadding, y)
	l.paletteWidth = inner
	return l
}

// sheetAt returns the sheet list row under (x, y).
func (l screenLayout) sheetAt(x, y int) (int, bool) {
	if !image.Pt(x, y).In(l.sheetList) {
		return -1, false
	}
	return mathutil.FloorDiv(y-l.sheetList.Min.Y, sheetRowHeight), true
}

func (l screenLayout) sheetRow(i int) image.Rectangle {
	y := l.sheetList.Min.Y + i*sheetRowHeight
	return image.Rect(l.sheetList.Min.X, y, l.sheetList.Max.X, y+sheetRowHeight)
}

// palette is the cell picker of the selected sheet drawn in the sidebar.
type palette struct {
	origin        image.Point
	cellW, cellH  int
	columns, rows int
}

// newPalette fits a columns x rows sheet of tileW x tileH cells into width,
// scaled by at most maxScale and never below one pixel per cell.
func newPalette(origin image.Point, width, columns, rows, tileW, tileH, maxScale int) palette {
	p := palette{origin: origin, columns: columns, rows: rows}
	if columns <= 0 || rows <= 0 {
		return p
	}
	scale := float64(maxScale)
	if fit := float64(width) / float64(columns*tileW); fit < scale {
		scale = fit
	}
	p.cellW = mathutil.IntMax(1, int(float64(tileW)*scale))
	p.cellH = mathutil.IntMax(1, int(float64(tileH)*scale))
	return p
}

func (p palette) bounds() image.Rectangle {
	return image.Rect(p.origin.X, p.origin.Y, p.origin.X+p.columns*p.cellW, p.origin.Y+p.rows*p.cellH)
}

func (p palette) cellRect(cx, cy int) image.Rectangle {
	x := p.origin.X + cx*p.cellW
	y := p.origin.Y + cy*p.cellH
	return image.Rect(x, y, x+p.cellW, y+p.cellH)
}

// cellAt returns the palette cell under (x, y).
func (p palette) cellAt(x, y int) (int, int, bool) {
	if p.cellW == 0 || !image.Pt(x, y).In(p.bounds()) {
		return 0, 0, false
	}
	return mathutil.FloorDiv(x-p.origin.X, p.cellW), mathutil.FloorDiv(y-p.origin.Y, p.cellH), true
}
