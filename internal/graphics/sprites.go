package graphics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlaceholderKind selects the pattern drawn in place of a tile that cannot
// be shown.
type PlaceholderKind int

const (
	// PlaceholderDangling marks a tile whose tile-sheet is not registered.
	PlaceholderDangling PlaceholderKind = iota
	// PlaceholderOutOfSheet marks a tile whose cell lies past the end of its sheet.
	PlaceholderOutOfSheet
)

type placeholderKey struct {
	w, h int
	kind PlaceholderKind
}

// SpriteManager caches the generated placeholder tiles.
type SpriteManager struct {
	placeholders map[placeholderKey]*ebiten.Image
}

func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		placeholders: make(map[placeholderKey]*ebiten.Image),
	}
}

// Placeholder returns a w x h placeholder tile, creating it on first use.
func (sm *SpriteManager) Placeholder(w, h int, kind PlaceholderKind) *ebiten.Image {
	key := placeholderKey{w: w, h: h, kind: kind}
	if img, ok := sm.placeholders[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(PlaceholderPattern(w, h, kind))
	sm.placeholders[key] = img
	return img
}

// Dispose releases every cached placeholder.
func (sm *SpriteManager) Dispose() {
	for key, img := range sm.placeholders {
		img.Deallocate()
		delete(sm.placeholders, key)
	}
}

// PlaceholderPattern draws the placeholder on the CPU. Dangling tiles get a
// magenta/black checker, out-of-sheet cells a solid purple square with a
// dark border.
func PlaceholderPattern(w, h int, kind PlaceholderKind) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	magenta := color.RGBA{255, 0, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	purple := color.RGBA{128, 0, 128, 255}

	check := w / 2
	if check < 1 {
		check = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch kind {
			case PlaceholderOutOfSheet:
				if x == 0 || y == 0 || x == w-1 || y == h-1 {
					img.SetRGBA(x, y, black)
				} else {
					img.SetRGBA(x, y, purple)
				}
			default:
				if (x/check+y/check)%2 == 0 {
					img.SetRGBA(x, y, magenta)
				} else {
					img.SetRGBA(x, y, black)
				}
			}
		}
	}
	return img
}
