package tilemap

// Tile is one persisted grid cell. Type is a flattened row-major cell index
// into the tile-sheet named by TextureIndex; both are -1 for an empty cell.
type Tile struct {
	Type         int32
	TextureIndex int32
}

// Empty is the value of an unpainted cell.
var Empty = Tile{Type: -1, TextureIndex: -1}

// Filled builds a populated tile.
func Filled(textureIndex, cell int) Tile {
	return Tile{Type: int32(cell), TextureIndex: int32(textureIndex)}
}

// IsEmpty reports whether the cell carries no tile graphic.
func (t Tile) IsEmpty() bool {
	return t.Type < 0
}

// Resolves reports whether the tile can be drawn with a registry of n textures.
// Empty tiles never resolve; a populated tile that does not resolve is dangling.
func (t Tile) Resolves(n int) bool {
	if t.IsEmpty() {
		return false
	}
	return t.TextureIndex >= 0 && int(t.TextureIndex) < n
}

// Dangling reports whether the tile is populated but references a texture
// index outside a registry of n textures.
func (t Tile) Dangling(n int) bool {
	return !t.IsEmpty() && !t.Resolves(n)
}

// CellXY splits the flattened cell index for a sheet with the given column count.
func (t Tile) CellXY(columns int) (int, int) {
	if columns <= 0 || t.Type < 0 {
		return -1, -1
	}
	return int(t.Type) % columns, int(t.Type) / columns
}
