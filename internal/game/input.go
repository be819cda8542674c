package game

import (
	"io/fs"
	"log"
	"path"

	"tilesmith/internal/editor"
	"tilesmith/internal/textures"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput turns this frame's raw input into intents and returns the
// pointer state for the paint engine.
func (g *EditorGame) handleInput() editor.Pointer {
	g.mouseX, g.mouseY = ebiten.CursorPosition()
	g.clicks.prune(g.frame)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.clicks.push(g.mouseX, g.mouseY, g.frame)
		g.stroke = g.pointerInView() && !g.prompt.active() && !g.ed.MissingModalOpen
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.stroke = false
	}

	g.handleDroppedFiles()

	switch {
	case g.prompt.active():
		g.handlePromptInput()
		g.clicks.clear()
		return editor.Pointer{}
	case g.ed.MissingModalOpen:
		g.handleModalInput()
		return editor.Pointer{}
	}

	g.handleShortcuts()
	g.handleCamera()
	g.handleSidebarClicks()

	return editor.Pointer{
		X:    float64(g.mouseX),
		Y:    float64(g.mouseY),
		Down: g.stroke,
	}
}

func (g *EditorGame) pointerInView() bool {
	x, y := float64(g.mouseX), float64(g.mouseY)
	v := g.layout.view
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

func (g *EditorGame) handleShortcuts() {
	sc := &g.shortcuts
	// Poll every shortcut each frame so their edge state stays current.
	newMap, save, saveAs, load := sc.newMap.JustPressed(), sc.save.JustPressed(), sc.saveAs.JustPressed(), sc.load.JustPressed()
	erase, fill, rescan, freeCam := sc.erase.JustPressed(), sc.fill.JustPressed(), sc.rescan.JustPressed(), sc.freeCam.JustPressed()

	switch {
	case newMap:
		g.ed.Submit(editor.NewMapIntent{})
	case save:
		g.ed.Submit(editor.SaveIntent{})
	case saveAs:
		g.openPrompt(promptSaveAs)
	case load:
		g.openPrompt(promptLoad)
	}
	if erase {
		g.ed.Submit(editor.ToggleEraseIntent{})
	}
	if fill {
		g.ed.Submit(editor.ToggleFillIntent{})
	}
	if rescan {
		g.ed.Submit(editor.RescanIntent{})
	}
	if freeCam {
		g.ed.Submit(editor.ToggleFreeCamIntent{})
	}
	if g.tabTracker.IsKeyJustPressed(ebiten.KeyTab) {
		g.showGrid = !g.showGrid
	}
}

func (g *EditorGame) handleCamera() {
	if _, wy := ebiten.Wheel(); wy != 0 && g.pointerInView() {
		g.ed.Submit(editor.ZoomIntent{Steps: wy})
	}
	if !g.ed.FreeCam {
		return
	}

	step := g.config.Camera.PanSpeed / float64(ebiten.TPS())
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += step
	}
	if dx != 0 || dy != 0 {
		g.ed.Submit(editor.PanIntent{DX: dx, DY: dy})
	}
}

func (g *EditorGame) handleSidebarClicks() {
	for _, b := range g.layout.buttons {
		if _, ok := g.clicks.consumeIn(b.rect); ok {
			g.runAction(b.action)
		}
	}
	if click, ok := g.clicks.consumeIn(g.layout.sheetList); ok {
		if i, ok := g.layout.sheetAt(click.x, click.y); ok {
			g.ed.Submit(editor.SelectTextureIntent{Index: i})
		}
	}
	pal := g.palette()
	if click, ok := g.clicks.consumeIn(pal.bounds()); ok {
		if cx, cy, ok := pal.cellAt(click.x, click.y); ok {
			g.ed.Submit(editor.SelectCellIntent{X: cx, Y: cy})
		}
	}
}

func (g *EditorGame) runAction(a action) {
	switch a {
	case actionNew:
		g.ed.Submit(editor.NewMapIntent{})
	case actionSave:
		g.ed.Submit(editor.SaveIntent{})
	case actionSaveAs:
		g.openPrompt(promptSaveAs)
	case actionLoad:
		g.openPrompt(promptLoad)
	case actionPaint:
		g.ed.Submit(editor.SetModeIntent{Mode: editor.ModePaint})
	case actionErase:
		g.ed.Submit(editor.ToggleEraseIntent{})
	case actionFill:
		g.ed.Submit(editor.ToggleFillIntent{})
	case actionAddSheet:
		g.openPrompt(promptAddSheet)
	case actionRescan:
		g.ed.Submit(editor.RescanIntent{})
	}
}

func (g *EditorGame) openPrompt(kind promptKind) {
	initial := ""
	if kind == promptSaveAs || kind == promptLoad {
		initial = editor.DefaultMapPath(g.mapsDir, g.ed.CurrentPath())
	}
	g.prompt.open(kind, initial)
}

func (g *EditorGame) handlePromptInput() {
	g.prompt.insert(ebiten.AppendInputChars(nil))
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		g.prompt.backspace()
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		if in := g.prompt.submit(); in != nil {
			g.ed.Submit(in)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.prompt.cancel()
	}
}

func (g *EditorGame) handleModalInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ed.Submit(editor.DismissMissingIntent{})
		return
	}
	if _, ok := g.clicks.consumeIn(g.modalButtonRect()); ok {
		g.ed.Submit(editor.DismissMissingIntent{})
	}
}

// repeatingKeyPressed fires on press and then every few frames while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// handleDroppedFiles imports image files dropped onto the window. Dropped
// files have no usable OS path, so their bytes are copied into the managed
// directory.
func (g *EditorGame) handleDroppedFiles() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	err := fs.WalkDir(files, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !textures.IsSupported(name) {
			log.Printf("Warning: ignoring dropped file %s: not a supported image", name)
			return nil
		}
		data, err := fs.ReadFile(files, name)
		if err != nil {
			log.Printf("Warning: failed to read dropped file %s: %v", name, err)
			return nil
		}
		g.ed.Submit(editor.ImportBytesIntent{Name: path.Base(name), Data: data})
		return nil
	})
	if err != nil {
		log.Printf("Warning: failed to read dropped files: %v", err)
	}
}
