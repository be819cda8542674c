package textures

import (
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrRegistryFull is returned by Add once capacity entries are registered.
	ErrRegistryFull = errors.New("texture registry is full")
	// ErrUnsupported is returned for files that cannot serve as a tile-sheet.
	ErrUnsupported = errors.New("unsupported tile-sheet")
)

// Texture is a GPU-resident image owned by the registry.
// *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
	Deallocate()
}

// Uploader turns a decoded image into a Texture.
type Uploader func(img image.Image) Texture

func uploadEbiten(img image.Image) Texture {
	return ebiten.NewImageFromImage(img)
}

// Entry describes one registered tile-sheet.
type Entry struct {
	Path    string
	Width   int // pixels
	Height  int // pixels
	Columns int // cells per row
	Rows    int // cells per column
}

// Registry is the ordered, append-only collection of tile-sheets. An index
// handed out by Add stays valid and keeps naming the same sheet for the
// lifetime of the registry; persisted maps store these indices.
type Registry struct {
	entries  []Entry
	textures []Texture
	byPath   map[string]int
	tileW    int
	tileH    int
	capacity int
	upload   Uploader
	closed   bool
}

// NewRegistry creates a registry for sheets cut into tileW x tileH cells.
func NewRegistry(tileW, tileH, capacity int) *Registry {
	return &Registry{
		byPath:   make(map[string]int),
		tileW:    tileW,
		tileH:    tileH,
		capacity: capacity,
		upload:   uploadEbiten,
	}
}

// WithUploader replaces the GPU upload step.
func (r *Registry) WithUploader(u Uploader) *Registry {
	r.upload = u
	return r
}

// Add registers the image at path and returns its index. A path that is
// already registered returns the existing index without reloading. On any
// failure the registry is unchanged and -1 is returned.
func (r *Registry) Add(path string) (int, error) {
	key := pathKey(path)
	if idx, ok := r.byPath[key]; ok {
		return idx, nil
	}
	if r.closed {
		return -1, fmt.Errorf("failed to load texture %s: registry closed", path)
	}

	img, err := decodeFile(path)
	if err != nil {
		log.Printf("Error: failed to load texture %s: %v", path, err)
		return -1, fmt.Errorf("failed to load texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	columns := bounds.Dx() / r.tileW
	rows := bounds.Dy() / r.tileH
	if columns == 0 || rows == 0 {
		log.Printf("Error: texture %s (%dx%d) is smaller than one %dx%d tile", path, bounds.Dx(), bounds.Dy(), r.tileW, r.tileH)
		return -1, fmt.Errorf("failed to load texture %s: %w: smaller than one tile", path, ErrUnsupported)
	}

	tex := r.upload(img)
	if len(r.entries) >= r.capacity {
		log.Printf("Warning: no empty slot for new texture %s", path)
		tex.Deallocate()
		return -1, fmt.Errorf("failed to load texture %s: %w", path, ErrRegistryFull)
	}

	r.entries = append(r.entries, Entry{
		Path:    path,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Columns: columns,
		Rows:    rows,
	})
	r.textures = append(r.textures, tex)
	idx := len(r.entries) - 1
	r.byPath[key] = idx
	return idx, nil
}

// FindByName returns the first entry whose path contains name. Partial
// matches are intended: a bare file name finds a sheet regardless of the
// directory it was loaded from.
func (r *Registry) FindByName(name string) (int, bool) {
	for i, e := range r.entries {
		if strings.Contains(e.Path, name) {
			return i, true
		}
	}
	log.Printf("Warning: texture not found by name: %s", name)
	return -1, false
}

// Len returns the number of registered sheets.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Cap returns the maximum number of sheets.
func (r *Registry) Cap() int {
	return r.capacity
}

// Valid reports whether i names a registered sheet.
func (r *Registry) Valid(i int) bool {
	return i >= 0 && i < len(r.entries)
}

// Entry returns the description of sheet i.
func (r *Registry) Entry(i int) (Entry, bool) {
	if !r.Valid(i) {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of all entries in index order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Columns returns the number of cells per row of sheet i, 0 if unknown.
func (r *Registry) Columns(i int) int {
	if !r.Valid(i) {
		return 0
	}
	return r.entries[i].Columns
}

// Rows returns the number of cells per column of sheet i, 0 if unknown.
func (r *Registry) Rows(i int) int {
	if !r.Valid(i) {
		return 0
	}
	return r.entries[i].Rows
}

// Texture returns the GPU texture of sheet i, nil once closed.
func (r *Registry) Texture(i int) Texture {
	if r.closed || !r.Valid(i) {
		return nil
	}
	return r.textures[i]
}

// Image returns sheet i as an ebiten image, nil if it is not one.
func (r *Registry) Image(i int) *ebiten.Image {
	img, _ := r.Texture(i).(*ebiten.Image)
	return img
}

// CellRect returns the pixel rectangle of cell (cx, cy) in sheet i.
func (r *Registry) CellRect(i, cx, cy int) image.Rectangle {
	x := cx * r.tileW
	y := cy * r.tileH
	return image.Rect(x, y, x+r.tileW, y+r.tileH)
}

// TileSize returns the cell size sheets are cut into.
func (r *Registry) TileSize() (int, int) {
	return r.tileW, r.tileH
}

// Close releases every texture. Further calls do nothing.
func (r *Registry) Close() {
	if r.closed {
		return
	}
	for _, tex := range r.textures {
		if tex != nil {
			tex.Deallocate()
		}
	}
	r.closed = true
}

// pathKey identifies a file independently of how its path was spelled.
func pathKey(path string) string {
	clean := filepath.Clean(path)
	if abs, err := filepath.Abs(clean); err == nil {
		return abs
	}
	return clean
}
