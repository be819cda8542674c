package editor

import "tilesmith/internal/tilemap"

// Target is the pointer position mapped to the grid for one tick.
// InView is false when the pointer is outside the game viewport, in which
// case X and Y carry no meaning.
type Target struct {
	X, Y   int
	InView bool
}

// Stroke applies the selection's mode to the grid for one tick with the
// pointer held, and reports whether any cell changed. It never writes
// outside the grid and never touches the registry.
func Stroke(grid *tilemap.Grid, sel Selection, sheets Sheets, target Target) bool {
	if !target.InView {
		return false
	}

	switch sel.Mode {
	case ModeErase:
		return grid.Set(target.X, target.Y, tilemap.Empty)
	case ModeFillAll:
		if !tilemap.InBounds(target.X, target.Y) || !usable(sel, sheets) {
			return false
		}
		return fillAll(grid, sel.Tile())
	default:
		if !usable(sel, sheets) {
			return false
		}
		return grid.Set(target.X, target.Y, sel.Tile())
	}
}

// usable reports whether sel names a sheet the registry still has, with the
// same layout the selection was computed against.
func usable(sel Selection, sheets Sheets) bool {
	return sel.HasTexture() && sheets.Valid(sel.TextureIndex) && sheets.Columns(sel.TextureIndex) == sel.Columns
}

func fillAll(grid *tilemap.Grid, t tilemap.Tile) bool {
	changed := false
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			if grid.Set(x, y, t) {
				changed = true
			}
		}
	}
	return changed
}
