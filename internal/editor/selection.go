package editor

import "tilesmith/internal/tilemap"

// Mode is the active edit tool.
type Mode int

const (
	ModePaint Mode = iota
	ModeErase
	ModeFillAll
)

func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "paint"
	case ModeErase:
		return "erase"
	case ModeFillAll:
		return "fill"
	default:
		return "unknown"
	}
}

// Sheets is the read-only view of the texture registry the editor needs.
type Sheets interface {
	Len() int
	Valid(i int) bool
	Columns(i int) int
	Rows(i int) int
}

// Selection tracks the active tile-sheet, the active cell inside it and the
// edit mode. Columns and Rows mirror the layout of the active sheet and are
// re-queried whenever the sheet changes.
type Selection struct {
	TextureIndex int
	CellX, CellY int
	Columns      int
	Rows         int
	Mode         Mode
}

// NewSelection selects the first sheet, if any, in paint mode.
func NewSelection(sheets Sheets) Selection {
	s := Selection{TextureIndex: -1}
	if sheets.Len() > 0 {
		s.SetTexture(0, sheets)
	}
	return s
}

// SetTexture makes sheet i active and refreshes the layout. A cell that
// does not exist on the new sheet is reset to (0, 0).
func (s *Selection) SetTexture(i int, sheets Sheets) error {
	if !sheets.Valid(i) {
		return ErrNoTexture
	}
	s.TextureIndex = i
	s.Refresh(sheets)
	return nil
}

// Refresh re-reads the active sheet layout.
func (s *Selection) Refresh(sheets Sheets) {
	if !sheets.Valid(s.TextureIndex) {
		s.TextureIndex = -1
		s.Columns, s.Rows = 0, 0
		s.CellX, s.CellY = 0, 0
		return
	}
	s.Columns = sheets.Columns(s.TextureIndex)
	s.Rows = sheets.Rows(s.TextureIndex)
	if s.CellX >= s.Columns || s.CellY >= s.Rows {
		s.CellX, s.CellY = 0, 0
	}
}

// SetCell selects cell (x, y) of the active sheet.
func (s *Selection) SetCell(x, y int) error {
	if x < 0 || y < 0 || x >= s.Columns || y >= s.Rows {
		return ErrInvalidCell
	}
	s.CellX, s.CellY = x, y
	return nil
}

// SetMode switches the edit tool. Erase and fill exclude each other by
// construction.
func (s *Selection) SetMode(m Mode) {
	s.Mode = m
}

// ToggleErase turns erase on, clearing fill, or back to paint.
func (s *Selection) ToggleErase() {
	if s.Mode == ModeErase {
		s.Mode = ModePaint
		return
	}
	s.Mode = ModeErase
}

// ToggleFill turns fill-all on, clearing erase, or back to paint.
func (s *Selection) ToggleFill() {
	if s.Mode == ModeFillAll {
		s.Mode = ModePaint
		return
	}
	s.Mode = ModeFillAll
}

// HasTexture reports whether a usable sheet is selected.
func (s Selection) HasTexture() bool {
	return s.TextureIndex >= 0 && s.Columns > 0
}

// CellIndex is the flattened row-major index of the selected cell.
func (s Selection) CellIndex() int {
	return s.CellY*s.Columns + s.CellX
}

// Tile is the grid value painting with this selection produces.
func (s Selection) Tile() tilemap.Tile {
	return tilemap.Filled(s.TextureIndex, s.CellIndex())
}
