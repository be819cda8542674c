package tilemap

import (
	"fmt"
	"sort"
)

// MissingTexture is one texture index referenced by the grid that the
// registry cannot resolve.
type MissingTexture struct {
	Index int
	Cells int
}

func (m MissingTexture) String() string {
	if m.Cells == 1 {
		return fmt.Sprintf("tile-sheet #%d (1 cell)", m.Index)
	}
	return fmt.Sprintf("tile-sheet #%d (%d cells)", m.Index, m.Cells)
}

// MissingTextures cross-checks every populated cell against a registry of
// n textures. Cells are reported, not rewritten.
func (g *Grid) MissingTextures(n int) []MissingTexture {
	counts := make(map[int]int)
	g.Each(func(_, _ int, t Tile) {
		if t.Dangling(n) {
			counts[int(t.TextureIndex)]++
		}
	})
	if len(counts) == 0 {
		return nil
	}

	missing := make([]MissingTexture, 0, len(counts))
	for idx, cells := range counts {
		missing = append(missing, MissingTexture{Index: idx, Cells: cells})
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].Index < missing[j].Index
	})
	return missing
}
