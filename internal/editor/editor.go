package editor

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"tilesmith/internal/config"
	"tilesmith/internal/textures"
	"tilesmith/internal/tilemap"
	"tilesmith/internal/viewport"
)

var (
	// ErrNoPath is returned by Save when the document was never saved.
	ErrNoPath = errors.New("map has no file path")
	// ErrNoTexture is returned when a selection names no registered sheet.
	ErrNoTexture = errors.New("no such tile-sheet")
	// ErrInvalidCell is returned when a selection names a cell outside the sheet.
	ErrInvalidCell = errors.New("cell outside tile-sheet")
)

// Pointer is the sampled mouse state for one tick, in window pixels.
type Pointer struct {
	X, Y float64
	Down bool
}

// Editor is the application context: it owns the grid, the texture
// registry and the selection, and is mutated only from the frame loop.
type Editor struct {
	Grid      *tilemap.Grid
	Textures  *textures.Registry
	Selection Selection
	Camera    viewport.Camera
	Mapper    viewport.Mapper
	// View is the on-screen rect the game view is presented in. The UI
	// layer updates it whenever the layout changes.
	View viewport.Rect

	FreeCam          bool
	MissingModalOpen bool
	Notices          Notices

	cfg             *config.Config
	tilemapsDir     string
	currentPath     string
	missing         []tilemap.MissingTexture
	intents         []Intent
	saveAsRequested bool
}

// New creates an editor with an empty map over the given registry.
func New(cfg *config.Config, reg *textures.Registry) *Editor {
	renderW, renderH := cfg.GetRenderSize()
	tileW, tileH := cfg.GetTileSize()

	e := &Editor{
		Grid:        tilemap.NewGrid(),
		Textures:    reg,
		Selection:   NewSelection(reg),
		Mapper:      viewport.Mapper{RenderW: renderW, RenderH: renderH, TileW: tileW, TileH: tileH},
		View:        viewport.Rect{W: float64(renderW), H: float64(renderH)},
		cfg:         cfg,
		tilemapsDir: cfg.Editor.TilemapsDir,
	}
	e.Notices.lifetime = cfg.Editor.NoticeFrames
	e.Camera = viewport.NewCamera(viewport.Vec{}, renderW, renderH, cfg.Camera.Zoom)
	e.centerCamera()
	return e
}

// WorldSize returns the grid extent in world pixels.
func (e *Editor) WorldSize() (float64, float64) {
	return float64(tilemap.Width * e.Mapper.TileW), float64(tilemap.Height * e.Mapper.TileH)
}

func (e *Editor) centerCamera() {
	w, h := e.WorldSize()
	e.Camera.Center(w, h)
}

// CurrentPath returns the file the document is bound to, "" if none.
func (e *Editor) CurrentPath() string {
	return e.currentPath
}

// NewMap resets the grid to empty and unbinds the document from its file.
func (e *Editor) NewMap() {
	e.Grid.Reset()
	e.currentPath = ""
	e.missing = nil
	e.MissingModalOpen = false
	e.Notices.push(NoticeInfo, "New map")
}

// Save writes the map to its current path.
func (e *Editor) Save() error {
	if e.currentPath == "" {
		return ErrNoPath
	}
	if err := e.Grid.Save(e.currentPath); err != nil {
		log.Printf("Error: %v", err)
		e.Notices.push(NoticeError, "Save failed: %v", err)
		return err
	}
	e.Notices.push(NoticeInfo, "Saved %s", filepath.Base(e.currentPath))
	return nil
}

// SaveAs writes the map to path and binds the document to it. On failure
// the previous path is kept.
func (e *Editor) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := e.Grid.Save(path); err != nil {
		log.Printf("Error: %v", err)
		e.Notices.push(NoticeError, "Save failed: %v", err)
		return err
	}
	e.currentPath = path
	e.Notices.push(NoticeInfo, "Saved %s", filepath.Base(path))
	return nil
}

// Load reads path into the grid. If the file cannot be read the grid and
// the current path are unchanged. A successful load binds the document to
// path even when some referenced tile-sheets are unavailable; those are
// reported through QueryMissingTextures.
func (e *Editor) Load(path string) (tilemap.LoadReport, error) {
	report, err := e.Grid.Load(path)
	if err != nil {
		log.Printf("Error: %v", err)
		e.Notices.push(NoticeError, "Load failed: %v", err)
		return report, err
	}
	e.currentPath = path

	switch {
	case report.Legacy:
		e.Notices.push(NoticeWarning, "Loaded %s (old format, all tiles use tile-sheet #0)", filepath.Base(path))
	case report.Truncated:
		log.Printf("Warning: map file %s ended after %d of %d cells", path, report.Cells, tilemap.Cells)
		e.Notices.push(NoticeWarning, "Loaded %s partially (%d of %d cells)", filepath.Base(path), report.Cells, tilemap.Cells)
	default:
		e.Notices.push(NoticeInfo, "Loaded %s", filepath.Base(path))
	}

	e.checkMissing()
	return report, nil
}

// checkMissing recomputes the missing-texture report against the registry.
func (e *Editor) checkMissing() {
	e.missing = e.Grid.MissingTextures(e.Textures.Len())
	if len(e.missing) == 0 {
		e.MissingModalOpen = false
		return
	}
	for _, m := range e.missing {
		log.Printf("Warning: map references unavailable %s", m)
	}
	e.MissingModalOpen = true
	e.Notices.push(NoticeWarning, "%d tile-sheet(s) referenced by the map are missing", len(e.missing))
}

// QueryMissingTextures lists the tile-sheets the current map references
// but the registry cannot provide.
func (e *Editor) QueryMissingTextures() []string {
	lines := make([]string, 0, len(e.missing))
	for _, m := range e.missing {
		lines = append(lines, m.String())
	}
	return lines
}

// Missing returns the structured missing-texture report.
func (e *Editor) Missing() []tilemap.MissingTexture {
	out := make([]tilemap.MissingTexture, len(e.missing))
	copy(out, e.missing)
	return out
}

// AddTexture imports an image into the managed tile-sheet directory and
// registers it. The registry is unchanged on failure.
func (e *Editor) AddTexture(source string) (int, error) {
	idx, err := e.Textures.Import(source, e.tilemapsDir)
	return e.afterImport(filepath.Base(source), idx, err)
}

// ImportBytes registers image data under name in the managed directory.
func (e *Editor) ImportBytes(name string, data []byte) (int, error) {
	idx, err := e.Textures.ImportBytes(name, data, e.tilemapsDir)
	return e.afterImport(name, idx, err)
}

// Rescan registers sheets that appeared in the managed directory.
func (e *Editor) Rescan() int {
	added := e.Textures.Rescan(e.tilemapsDir)
	if added > 0 {
		e.onRegistryGrown()
		e.Notices.push(NoticeInfo, "Registered %d new tile-sheet(s)", added)
	}
	return added
}

func (e *Editor) afterImport(name string, idx int, err error) (int, error) {
	if err != nil {
		e.Notices.push(NoticeError, "Could not add %s: %v", name, err)
		return -1, err
	}
	e.onRegistryGrown()
	e.Notices.push(NoticeInfo, "Tile-sheet %s is #%d", name, idx)
	return idx, nil
}

// onRegistryGrown selects the first sheet if nothing was selectable and
// re-checks whether previously missing sheets now resolve.
func (e *Editor) onRegistryGrown() {
	if !e.Selection.HasTexture() {
		e.Selection.SetTexture(0, e.Textures)
	}
	if len(e.missing) > 0 {
		e.missing = e.Grid.MissingTextures(e.Textures.Len())
		if len(e.missing) == 0 {
			e.MissingModalOpen = false
		}
	}
}

// SetSelection selects sheet textureIndex and cell (cellX, cellY) on it.
// On error the selection is unchanged.
func (e *Editor) SetSelection(textureIndex, cellX, cellY int) error {
	next := e.Selection
	if err := next.SetTexture(textureIndex, e.Textures); err != nil {
		return fmt.Errorf("select tile-sheet %d: %w", textureIndex, err)
	}
	if err := next.SetCell(cellX, cellY); err != nil {
		return fmt.Errorf("select cell (%d,%d): %w", cellX, cellY, err)
	}
	e.Selection = next
	return nil
}

// SetMode switches the edit tool.
func (e *Editor) SetMode(m Mode) {
	e.Selection.SetMode(m)
}

// HoverTile maps a window position to a tile index; see viewport.Mapper.TileAt.
func (e *Editor) HoverTile(x, y float64) (int, int, bool) {
	return e.Mapper.TileAt(viewport.Vec{X: x, Y: y}, e.View, e.Camera)
}

func (e *Editor) target(x, y float64) Target {
	tx, ty, ok := e.HoverTile(x, y)
	return Target{X: tx, Y: ty, InView: ok}
}

// PaintAt applies the current mode at a window position as if the pointer
// were held there for one tick.
func (e *Editor) PaintAt(x, y float64) bool {
	return Stroke(e.Grid, e.Selection, e.Textures, e.target(x, y))
}

// EraseAt clears the cell under a window position regardless of mode.
func (e *Editor) EraseAt(x, y float64) bool {
	t := e.target(x, y)
	if !t.InView {
		return false
	}
	return e.Grid.Set(t.X, t.Y, tilemap.Empty)
}

// Submit queues an intent for the next Tick.
func (e *Editor) Submit(in Intent) {
	e.intents = append(e.intents, in)
}

// TakeSaveAsRequest reports, once, that a save needs a path from the user.
func (e *Editor) TakeSaveAsRequest() bool {
	r := e.saveAsRequested
	e.saveAsRequested = false
	return r
}

// Tick runs one frame of editor logic: queued intents first, then the
// paint engine if the pointer is held.
func (e *Editor) Tick(p Pointer) {
	queued := e.intents
	e.intents = nil
	for _, in := range queued {
		if err := e.Apply(in); err != nil && !errors.Is(err, ErrNoPath) {
			log.Printf("Warning: %T: %v", in, err)
		}
	}

	if !e.FreeCam {
		e.centerCamera()
	}
	if p.Down && !e.MissingModalOpen {
		e.PaintAt(p.X, p.Y)
	}
	e.Notices.tick()
}

// Apply performs a single intent immediately.
func (e *Editor) Apply(in Intent) error {
	switch in := in.(type) {
	case NewMapIntent:
		e.NewMap()
	case SaveIntent:
		err := e.Save()
		if errors.Is(err, ErrNoPath) {
			e.saveAsRequested = true
		}
		return err
	case SaveAsIntent:
		return e.SaveAs(in.Path)
	case LoadIntent:
		_, err := e.Load(in.Path)
		return err
	case AddTextureIntent:
		_, err := e.AddTexture(in.Source)
		return err
	case ImportBytesIntent:
		_, err := e.ImportBytes(in.Name, in.Data)
		return err
	case RescanIntent:
		e.Rescan()
	case SelectTextureIntent:
		return e.Selection.SetTexture(in.Index, e.Textures)
	case SelectCellIntent:
		return e.Selection.SetCell(in.X, in.Y)
	case SetModeIntent:
		e.SetMode(in.Mode)
	case ToggleEraseIntent:
		e.Selection.ToggleErase()
	case ToggleFillIntent:
		e.Selection.ToggleFill()
	case ZoomIntent:
		e.Camera.ZoomBy(in.Steps*e.cfg.Camera.ZoomStep, e.cfg.Camera.MinZoom)
	case PanIntent:
		if e.FreeCam {
			e.Camera.Pan(in.DX, in.DY)
		}
	case ToggleFreeCamIntent:
		e.FreeCam = !e.FreeCam
	case DismissMissingIntent:
		e.MissingModalOpen = false
	default:
		return fmt.Errorf("unknown intent %T", in)
	}
	return nil
}
