package game

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"tilesmith/internal/editor"
	"tilesmith/internal/mathutil"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	sidebarBg       = color.RGBA{24, 24, 34, 255}
	buttonColor     = color.RGBA{50, 50, 72, 255}
	buttonHover     = color.RGBA{70, 70, 100, 255}
	buttonActive    = color.RGBA{90, 70, 40, 255}
	labelColor      = color.RGBA{170, 170, 190, 255}
	textColor       = color.RGBA{230, 230, 235, 255}
	selectedRowBg   = color.RGBA{60, 60, 110, 255}
	warningColor    = color.RGBA{255, 200, 80, 255}
	errorColor      = color.RGBA{255, 110, 110, 255}
	modalBackdrop   = color.RGBA{0, 0, 0, 150}
	modalBackground = color.RGBA{36, 36, 52, 250}
)

// palette returns the cell picker geometry for the selected sheet.
func (g *EditorGame) palette() palette {
	sel := g.ed.Selection
	tileW, tileH := g.ed.Textures.TileSize()
	return newPalette(g.layout.paletteOrigin, g.layout.paletteWidth, sel.Columns, sel.Rows, tileW, tileH, g.config.Editor.PaletteScale)
}

func (g *EditorGame) drawSidebar(screen *ebiten.Image) {
	fillRect(screen, g.layout.sidebar, sidebarBg)
	g.drawButtons(screen)

	drawText(screen, fmt.Sprintf("Tile-sheets (%d/%d)", g.ed.Textures.Len(), g.ed.Textures.Cap()),
		g.layout.sheetList.Min.X, g.layout.sheetList.Min.Y-lineHeight, labelColor)
	g.drawSheetList(screen)

	pal := g.palette()
	drawText(screen, "Cells", g.layout.paletteOrigin.X, g.layout.paletteOrigin.Y-lineHeight, labelColor)
	g.drawPalette(screen, pal)

	g.drawStatus(screen, pal.bounds().Max.Y+sectionGap)
}

func (g *EditorGame) buttonActive(a action) bool {
	switch a {
	case actionPaint:
		return g.ed.Selection.Mode == editor.ModePaint
	case actionErase:
		return g.ed.Selection.Mode == editor.ModeErase
	case actionFill:
		return g.ed.Selection.Mode == editor.ModeFillAll
	}
	return false
}

func (g *EditorGame) drawButtons(screen *ebiten.Image) {
	for _, b := range g.layout.buttons {
		bg := buttonColor
		switch {
		case g.buttonActive(b.action):
			bg = buttonActive
		case isMouseHoveringRect(g.mouseX, g.mouseY, b.rect):
			bg = buttonHover
		}
		fillRect(screen, b.rect, bg)
		drawCenteredText(screen, truncateLabel(b.label, b.rect.Dx()-4), b.rect, textColor)
	}
}

func (g *EditorGame) drawSheetList(screen *ebiten.Image) {
	if g.ed.Textures.Len() == 0 {
		drawText(screen, "(none, press F5 or Add sheet)", g.layout.sheetList.Min.X, g.layout.sheetList.Min.Y, labelColor)
		return
	}
	for i, entry := range g.ed.Textures.Entries() {
		row := g.layout.sheetRow(i)
		if i == g.ed.Selection.TextureIndex {
			fillRect(screen, row, selectedRowBg)
		}
		label := fmt.Sprintf("#%d %s", i, filepath.Base(entry.Path))
		drawText(screen, truncateLabel(label, row.Dx()-4), row.Min.X+2, row.Min.Y+1, textColor)
		if isMouseHoveringRect(g.mouseX, g.mouseY, row) {
			g.tooltip = []string{entry.Path, fmt.Sprintf("%dx%d px, %dx%d cells", entry.Width, entry.Height, entry.Columns, entry.Rows)}
		}
	}
}

func (g *EditorGame) drawPalette(screen *ebiten.Image, pal palette) {
	sel := g.ed.Selection
	sheet := g.ed.Textures.Image(sel.TextureIndex)
	if !sel.HasTexture() || sheet == nil {
		return
	}
	tileW, tileH := g.ed.Textures.TileSize()
	bounds := pal.bounds()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(pal.cellW)/float64(tileW), float64(pal.cellH)/float64(tileH))
	opts.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	opts.Filter = ebiten.FilterNearest
	used := image.Rect(0, 0, pal.columns*tileW, pal.rows*tileH)
	screen.DrawImage(sheet.SubImage(used).(*ebiten.Image), opts)

	r := pal.cellRect(sel.CellX, sel.CellY)
	drawRectBorder(screen, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), 2, g.highlightColor)

	if cx, cy, ok := pal.cellAt(g.mouseX, g.mouseY); ok {
		g.tooltip = []string{fmt.Sprintf("cell (%d,%d) = type %d", cx, cy, cy*pal.columns+cx)}
	}
}

func (g *EditorGame) drawStatus(screen *ebiten.Image, y int) {
	x := sidebarPadding
	width := g.layout.sidebar.Dx() - 2*sidebarPadding
	path := g.ed.CurrentPath()
	if path == "" {
		path = "(unsaved)"
	}
	lines := []string{
		"Map: " + filepath.Base(path),
		"Mode: " + g.ed.Selection.Mode.String(),
		fmt.Sprintf("Zoom: %.3gx", g.ed.Camera.Zoom),
	}
	if g.ed.FreeCam {
		lines = append(lines, "Free camera (arrows)")
	}
	if tx, ty, ok := g.ed.HoverTile(float64(g.mouseX), float64(g.mouseY)); ok {
		lines = append(lines, fmt.Sprintf("Tile: %d,%d", tx, ty))
	}
	if n := len(g.ed.Missing()); n > 0 {
		lines = append(lines, fmt.Sprintf("%d tile-sheet(s) missing", n))
	}
	for i, line := range lines {
		drawText(screen, truncateLabel(line, width), x, y+i*lineHeight, labelColor)
	}
}

func noticeColor(level editor.NoticeLevel) color.Color {
	switch level {
	case editor.NoticeWarning:
		return warningColor
	case editor.NoticeError:
		return errorColor
	default:
		return textColor
	}
}

func (g *EditorGame) drawNotices(screen *ebiten.Image) {
	notices := g.ed.Notices.Active()
	if len(notices) == 0 {
		return
	}
	x := g.layout.sidebar.Max.X + 8
	width := g.layout.width - x - 8
	y := g.layout.height - 8 - len(notices)*lineHeight
	drawFilledRect(screen, x-4, y-4, width+8, len(notices)*lineHeight+8, color.RGBA{0, 0, 0, 140})
	for i, n := range notices {
		drawText(screen, truncateLabel(n.Text, width), x, y+i*lineHeight, noticeColor(n.Level))
	}
}

const (
	modalWidth   = 420
	modalPadding = 12
)

func (g *EditorGame) modalRect() image.Rectangle {
	lines := len(g.ed.QueryMissingTextures())
	h := modalPadding*2 + (lines+4)*lineHeight + buttonHeight
	x := (g.layout.width - modalWidth) / 2
	y := (g.layout.height - h) / 2
	return image.Rect(x, y, x+modalWidth, y+h)
}

func (g *EditorGame) modalButtonRect() image.Rectangle {
	r := g.modalRect()
	return image.Rect(r.Max.X-modalPadding-80, r.Max.Y-modalPadding-buttonHeight, r.Max.X-modalPadding, r.Max.Y-modalPadding)
}

func (g *EditorGame) drawMissingModal(screen *ebiten.Image) {
	drawFilledRect(screen, 0, 0, g.layout.width, g.layout.height, modalBackdrop)
	r := g.modalRect()
	fillRect(screen, r, modalBackground)
	drawRectBorder(screen, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), 1, warningColor)

	x, y := r.Min.X+modalPadding, r.Min.Y+modalPadding
	drawText(screen, "Missing tile-sheets", x, y, warningColor)
	y += lineHeight
	for _, line := range wrapText("The map references tile-sheets that are not loaded. Those tiles are drawn as placeholders.", modalWidth-2*modalPadding) {
		drawText(screen, line, x, y, textColor)
		y += lineHeight
	}
	for _, line := range g.ed.QueryMissingTextures() {
		drawText(screen, "- "+line, x, y, textColor)
		y += lineHeight
	}

	b := g.modalButtonRect()
	bg := buttonColor
	if isMouseHoveringRect(g.mouseX, g.mouseY, b) {
		bg = buttonHover
	}
	fillRect(screen, b, bg)
	drawCenteredText(screen, "OK", b, textColor)
}

func (g *EditorGame) drawPrompt(screen *ebiten.Image) {
	w := mathutil.IntMin(g.layout.width-40, 640)
	h := 3*lineHeight + 2*modalPadding
	x := (g.layout.width - w) / 2
	y := (g.layout.height - h) / 2
	drawFilledRect(screen, x, y, w, h, modalBackground)
	drawRectBorder(screen, x, y, w, h, 1, labelColor)

	drawText(screen, g.prompt.kind.title()+" (Enter to confirm, Esc to cancel)", x+modalPadding, y+modalPadding, labelColor)
	runes := g.prompt.text
	if g.frame/30%2 == 0 {
		runes = append(runes[:len(runes):len(runes)], '_')
	}
	// Keep the end of long paths visible.
	inner := w - 2*modalPadding
	for len(runes) > 0 && textWidth(string(runes)) > inner {
		runes = runes[1:]
	}
	drawText(screen, string(runes), x+modalPadding, y+modalPadding+lineHeight+4, textColor)
}
