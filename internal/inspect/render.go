package inspect

import (
	"tilesmith/internal/tilemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	emptyGlyph    = '·'
	danglingGlyph = '?'
	glyphSet      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var sheetColors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorAqua,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorBlue,
	tcell.ColorOrange,
	tcell.ColorLime,
	tcell.ColorTeal,
	tcell.ColorPurple,
	tcell.ColorSilver,
}

// Glyph is the character a populated tile is drawn with, keyed by its
// tile-sheet index.
func Glyph(t tilemap.Tile) rune {
	if t.IsEmpty() {
		return emptyGlyph
	}
	i := int(t.TextureIndex)
	if i < 0 || i >= len(glyphSet) {
		return '#'
	}
	return rune(glyphSet[i])
}

// CellGlyph is Glyph with dangling tiles replaced by a marker.
func CellGlyph(t tilemap.Tile, sheets int) rune {
	if t.Dangling(sheets) {
		return danglingGlyph
	}
	return Glyph(t)
}

func cellStyle(t tilemap.Tile, sheets int) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch {
	case t.IsEmpty():
		return style.Foreground(tcell.ColorGray)
	case t.Dangling(sheets):
		return style.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	default:
		return style.Foreground(sheetColors[int(t.TextureIndex)%len(sheetColors)])
	}
}

// Renderer draws map files onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// GridSize is the number of terminal cells DrawGrid uses. Each tile takes
// two columns so the map keeps a roughly square aspect.
func GridSize() (int, int) {
	return tilemap.Width * 2, tilemap.Height
}

// DrawGrid draws g with its top-left corner at (x0, y0).
func (r *Renderer) DrawGrid(x0, y0 int, g *tilemap.Grid, sheets int) {
	g.Each(func(x, y int, t tilemap.Tile) {
		style := cellStyle(t, sheets)
		r.screen.SetContent(x0+x*2, y0+y, CellGlyph(t, sheets), nil, style)
		r.screen.SetContent(x0+x*2+1, y0+y, ' ', nil, style)
	})
}

// DrawText draws s starting at (x, y), clipped to maxWidth columns with a
// trailing "..." when it does not fit. It returns the columns used.
func (r *Renderer) DrawText(x, y, maxWidth int, s string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	if runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, "...")
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(col, y, ch, nil, style)
		if w == 2 {
			// Fill the second column to avoid rendering artifacts.
			r.screen.SetContent(col+1, y, ' ', nil, style)
		}
		col += w
	}
	return col - x
}

// DrawLines draws lines from first onward, one per row, until height rows are used.
func (r *Renderer) DrawLines(x, y, width, height int, lines []string, first int, style tcell.Style) {
	for row := 0; row < height; row++ {
		i := first + row
		if i < 0 || i >= len(lines) {
			break
		}
		r.DrawText(x, y+row, width, lines[i], style)
	}
}

// Fill paints a rectangle of blanks.
func (r *Renderer) Fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
