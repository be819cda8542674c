package game

import (
	"image/color"

	"tilesmith/internal/editor"
	"tilesmith/internal/graphics"
	"tilesmith/internal/tilemap"
	"tilesmith/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	eraseOverlay = color.RGBA{230, 41, 55, 110}
	fillOverlay  = color.RGBA{0, 228, 48, 70}
	ghostAlpha   = float32(0.55)
)

// drawWorld renders the map into the offscreen render target in world
// space through the editor camera.
func (g *EditorGame) drawWorld(dst *ebiten.Image) {
	dst.Fill(g.backgroundColor)

	cam := g.ed.Camera
	tileW, tileH := float64(g.ed.Mapper.TileW), float64(g.ed.Mapper.TileH)
	worldW, worldH := g.ed.WorldSize()

	origin := cam.WorldToScreen(viewport.Vec{})
	vector.DrawFilledRect(dst, float32(origin.X), float32(origin.Y),
		float32(worldW*cam.Zoom), float32(worldH*cam.Zoom), g.worldColor, false)

	g.ed.Grid.Each(func(x, y int, t tilemap.Tile) {
		if t.IsEmpty() {
			return
		}
		p := cam.WorldToScreen(viewport.Vec{X: float64(x) * tileW, Y: float64(y) * tileH})
		g.drawTile(dst, t, p, cam.Zoom, 1)
	})

	if g.showGrid {
		g.drawGridLines(dst, cam, worldW, worldH)
	}
	g.drawHover(dst)
}

// drawTile draws t with its top-left corner at p. Tiles that cannot be
// resolved get a placeholder instead.
func (g *EditorGame) drawTile(dst *ebiten.Image, t tilemap.Tile, p viewport.Vec, zoom float64, alpha float32) {
	reg := g.ed.Textures
	tileW, tileH := g.ed.Mapper.TileW, g.ed.Mapper.TileH

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(zoom, zoom)
	opts.GeoM.Translate(p.X, p.Y)
	opts.ColorScale.ScaleAlpha(alpha)

	if !t.Resolves(reg.Len()) {
		dst.DrawImage(g.sprites.Placeholder(tileW, tileH, graphics.PlaceholderDangling), opts)
		return
	}
	idx := int(t.TextureIndex)
	sheet := reg.Image(idx)
	cx, cy := t.CellXY(reg.Columns(idx))
	if sheet == nil || cy >= reg.Rows(idx) {
		dst.DrawImage(g.sprites.Placeholder(tileW, tileH, graphics.PlaceholderOutOfSheet), opts)
		return
	}
	cell := sheet.SubImage(reg.CellRect(idx, cx, cy)).(*ebiten.Image)
	dst.DrawImage(cell, opts)
}

func (g *EditorGame) drawGridLines(dst *ebiten.Image, cam viewport.Camera, worldW, worldH float64) {
	tileW, tileH := float64(g.ed.Mapper.TileW), float64(g.ed.Mapper.TileH)
	for x := 0; x <= tilemap.Width; x++ {
		a := cam.WorldToScreen(viewport.Vec{X: float64(x) * tileW})
		b := cam.WorldToScreen(viewport.Vec{X: float64(x) * tileW, Y: worldH})
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, g.gridColor, false)
	}
	for y := 0; y <= tilemap.Height; y++ {
		a := cam.WorldToScreen(viewport.Vec{Y: float64(y) * tileH})
		b := cam.WorldToScreen(viewport.Vec{X: worldW, Y: float64(y) * tileH})
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, g.gridColor, false)
	}
}

// drawHover previews what a click would do under the pointer.
func (g *EditorGame) drawHover(dst *ebiten.Image) {
	if g.prompt.active() || g.ed.MissingModalOpen {
		return
	}
	tx, ty, ok := g.ed.HoverTile(float64(g.mouseX), float64(g.mouseY))
	if !ok {
		return
	}

	if !tilemap.InBounds(tx, ty) {
		return
	}

	cam := g.ed.Camera
	sel := g.ed.Selection
	if sel.Mode == editor.ModeFillAll {
		if !sel.HasTexture() {
			return
		}
		worldW, worldH := g.ed.WorldSize()
		o := cam.WorldToScreen(viewport.Vec{})
		vector.DrawFilledRect(dst, float32(o.X), float32(o.Y), float32(worldW*cam.Zoom), float32(worldH*cam.Zoom), fillOverlay, false)
		return
	}

	tileW, tileH := float64(g.ed.Mapper.TileW), float64(g.ed.Mapper.TileH)
	p := cam.WorldToScreen(viewport.Vec{X: float64(tx) * tileW, Y: float64(ty) * tileH})
	size := viewport.Vec{X: tileW * cam.Zoom, Y: tileH * cam.Zoom}
	switch sel.Mode {
	case editor.ModeErase:
		vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(size.X), float32(size.Y), eraseOverlay, false)
	default:
		if sel.HasTexture() {
			g.drawTile(dst, sel.Tile(), p, cam.Zoom, ghostAlpha)
		}
	}
	vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(size.X), float32(size.Y), 1, g.highlightColor, false)
}
