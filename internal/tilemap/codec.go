package tilemap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// The map file is a headerless run of Height*Width records in y-outer,
// x-inner order. Each record is int32 type followed by int32 textureIndex
// in native byte order. Files holding only the type column (the oldest
// format) are recognised by their exact size.
const (
	fieldSize  = 4
	recordSize = 2 * fieldSize

	// FileSize is the size of a well-formed map file.
	FileSize = Cells * recordSize
	// LegacyFileSize is the size of a type-only map file.
	LegacyFileSize = Cells * fieldSize
)

var byteOrder = binary.NativeEndian

// LoadReport describes how much of a map file was applied.
type LoadReport struct {
	Cells             int  // cells whose type was read
	Truncated         bool // file ended before the last cell
	Legacy            bool // type-only file, every texture index defaulted to 0
	DefaultedTextures int  // cells whose texture index was absent and set to 0
}

// Save writes the grid to path, creating or truncating the file.
func (g *Grid) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open map file for writing %s: %w", path, err)
	}

	w := bufio.NewWriter(file)
	if _, err := g.WriteTo(w); err != nil {
		file.Close()
		return fmt.Errorf("failed to write map file %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write map file %s: %w", path, err)
	}
	return file.Close()
}

// WriteTo encodes the grid in the map file format.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, FileSize)
	g.Each(func(_, _ int, t Tile) {
		buf = byteOrder.AppendUint32(buf, uint32(t.Type))
		buf = byteOrder.AppendUint32(buf, uint32(t.TextureIndex))
	})
	n, err := w.Write(buf)
	return int64(n), err
}

// Load reads a map file into the grid. If the file cannot be opened or
// read the grid is left untouched. A short file is applied as far as it
// goes; cells past the end keep the values they held before the call.
func (g *Grid) Load(path string) (LoadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadReport{}, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer file.Close()

	report, err := g.DecodeFrom(file)
	if err != nil {
		return report, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	return report, nil
}

// DecodeFrom decodes map data from r into the grid. See Load for the
// truncation rules.
func (g *Grid) DecodeFrom(r io.Reader) (LoadReport, error) {
	data, err := io.ReadAll(io.LimitReader(r, FileSize+1))
	if err != nil {
		return LoadReport{}, err
	}
	return g.Decode(data), nil
}

// Decode applies raw map bytes to the grid and never fails; malformed
// input results in a partial load described by the report.
func (g *Grid) Decode(data []byte) LoadReport {
	if len(data) == LegacyFileSize {
		return g.decodeLegacy(data)
	}

	var report LoadReport
	off := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if off+fieldSize > len(data) {
				report.Truncated = true
				return report
			}
			t := Tile{Type: int32(byteOrder.Uint32(data[off:]))}
			off += fieldSize

			if off+fieldSize > len(data) {
				t.TextureIndex = 0
				report.DefaultedTextures++
				report.Truncated = true
				off = len(data)
			} else {
				t.TextureIndex = int32(byteOrder.Uint32(data[off:]))
				off += fieldSize
			}
			g.cells[x][y] = t
			report.Cells++
		}
	}
	return report
}

func (g *Grid) decodeLegacy(data []byte) LoadReport {
	report := LoadReport{Legacy: true}
	off := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g.cells[x][y] = Tile{Type: int32(byteOrder.Uint32(data[off:])), TextureIndex: 0}
			off += fieldSize
			report.Cells++
			report.DefaultedTextures++
		}
	}
	return report
}
