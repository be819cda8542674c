package tilemap

// Grid dimensions in cells. The persisted format depends on them.
const (
	Width  = 20
	Height = 20
)

// Cells is the number of cells in a grid.
const Cells = Width * Height

// Grid is the editable map. Cells are addressed [x][y]; callers must
// bounds-check with InBounds before indexing with coordinates that came
// from pointer input.
type Grid struct {
	cells [Width][Height]Tile
}

// NewGrid returns a grid with every cell empty.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset clears every cell.
func (g *Grid) Reset() {
	g.Fill(Empty)
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			g.cells[x][y] = t
		}
	}
}

// InBounds reports whether (x, y) addresses a grid cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns the cell at (x, y). Out-of-bounds coordinates return Empty.
func (g *Grid) At(x, y int) Tile {
	if !InBounds(x, y) {
		return Empty
	}
	return g.cells[x][y]
}

// Set writes the cell at (x, y) and reports whether anything changed.
// Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !InBounds(x, y) {
		return false
	}
	if g.cells[x][y] == t {
		return false
	}
	g.cells[x][y] = t
	return true
}

// Resolve returns the tile at (x, y) and whether it can be drawn with a
// registry of n textures.
func (g *Grid) Resolve(x, y, n int) (Tile, bool) {
	t := g.At(x, y)
	return t, t.Resolves(n)
}

// Each calls fn for every cell in persisted order (y outer, x inner).
func (g *Grid) Each(fn func(x, y int, t Tile)) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			fn(x, y, g.cells[x][y])
		}
	}
}

// Count returns the number of populated cells.
func (g *Grid) Count() int {
	n := 0
	g.Each(func(_, _ int, t Tile) {
		if !t.IsEmpty() {
			n++
		}
	})
	return n
}

// Equal reports whether both grids hold the same cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}
