package game

import (
	"image/color"

	"tilesmith/internal/config"
	"tilesmith/internal/editor"
	"tilesmith/internal/game/keytracker"
	"tilesmith/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

// EditorGame adapts the editor to ebiten's Game interface. It samples input
// into intents, lets the editor tick, and draws the editor state. It holds
// no document state of its own.
type EditorGame struct {
	ed      *editor.Editor
	config  *config.Config
	sprites *graphics.SpriteManager

	// Offscreen target the map is rendered into before it is presented,
	// scaled, in the letterboxed view rect.
	world *ebiten.Image

	layout  screenLayout
	mapsDir string
	frame   int64

	// UI state
	showGrid bool
	stroke   bool // a paint stroke started inside the view and is still held
	prompt   pathPrompt
	clicks   clickQueue
	mouseX   int
	mouseY   int
	tooltip  []string

	tabTracker keytracker.KeyStateTracker
	shortcuts  shortcuts

	backgroundColor color.RGBA
	worldColor      color.RGBA
	gridColor       color.RGBA
	highlightColor  color.RGBA
}

func NewEditorGame(cfg *config.Config, ed *editor.Editor) *EditorGame {
	renderW, renderH := cfg.GetRenderSize()
	g := &EditorGame{
		ed:              ed,
		config:          cfg,
		sprites:         graphics.NewSpriteManager(),
		world:           ebiten.NewImage(renderW, renderH),
		mapsDir:         editor.MapsDir(cfg.Editor.MapsDir),
		showGrid:        true,
		shortcuts:       defaultShortcuts(),
		backgroundColor: rgb(cfg.Colors.Background),
		worldColor:      rgb(cfg.Colors.World),
		gridColor:       rgb(cfg.Colors.Grid),
		highlightColor:  rgb(cfg.Colors.Highlight),
	}
	g.relayout(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	return g
}

type shortcuts struct {
	newMap, save, saveAs, load keytracker.Shortcut
	erase, fill, rescan        keytracker.Shortcut
	freeCam                    keytracker.Shortcut
}

func defaultShortcuts() shortcuts {
	return shortcuts{
		newMap:  keytracker.Shortcut{Key: ebiten.KeyN, Ctrl: true},
		save:    keytracker.Shortcut{Key: ebiten.KeyS, Ctrl: true},
		saveAs:  keytracker.Shortcut{Key: ebiten.KeyS, Ctrl: true, Shift: true},
		load:    keytracker.Shortcut{Key: ebiten.KeyO, Ctrl: true},
		erase:   keytracker.Shortcut{Key: ebiten.KeyE},
		fill:    keytracker.Shortcut{Key: ebiten.KeyG},
		rescan:  keytracker.Shortcut{Key: ebiten.KeyF5},
		freeCam: keytracker.Shortcut{Key: ebiten.KeyF},
	}
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

func (g *EditorGame) relayout(w, h int) {
	g.layout = computeLayout(w, h, g.config, g.ed.Textures.Len())
	g.ed.View = g.layout.view
}

func (g *EditorGame) Update() error {
	g.frame++
	if g.layout.sheetRows != g.ed.Textures.Len() {
		g.relayout(g.layout.width, g.layout.height)
	}

	pointer := g.handleInput()
	g.ed.Tick(pointer)

	if g.ed.TakeSaveAsRequest() {
		g.prompt.open(promptSaveAs, editor.DefaultMapPath(g.mapsDir, ""))
	}
	return nil
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.backgroundColor)

	g.drawWorld(g.world)
	view := g.layout.view
	if view.W > 0 && view.H > 0 {
		renderW, renderH := g.config.GetRenderSize()
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(view.W/float64(renderW), view.H/float64(renderH))
		opts.GeoM.Translate(view.X, view.Y)
		opts.Filter = ebiten.FilterNearest
		screen.DrawImage(g.world, opts)
	}

	g.tooltip = nil
	g.drawSidebar(screen)
	g.drawNotices(screen)
	if g.ed.MissingModalOpen {
		g.drawMissingModal(screen)
	}
	if g.prompt.active() {
		g.drawPrompt(screen)
	}
	if len(g.tooltip) > 0 {
		drawTooltip(screen, g.tooltip, g.mouseX+14, g.mouseY+10, g.layout.width)
	}
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.layout.width || outsideHeight != g.layout.height {
		g.relayout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close releases GPU resources owned by the UI layer.
func (g *EditorGame) Close() {
	g.sprites.Dispose()
	g.world.Deallocate()
}
