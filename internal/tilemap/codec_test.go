package tilemap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func paintedGrid() *Grid {
	g := NewGrid()
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if (x+y)%3 == 0 {
				continue
			}
			g.Set(x, y, Filled((x+y)%2, x*Height+y))
		}
	}
	return g
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.bin")
	saved := paintedGrid()
	if err := saved.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewGrid()
	report, err := loaded.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Equal(saved) {
		t.Fatalf("loaded grid differs from saved grid")
	}
	if report.Cells != Cells || report.Truncated || report.Legacy || report.DefaultedTextures != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestDecodeFrom_StreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	saved := paintedGrid()
	if _, err := saved.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded := NewGrid()
	report, err := loaded.DecodeFrom(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !loaded.Equal(saved) || report.Cells != Cells || report.Truncated {
		t.Fatalf("stream round trip failed: %+v", report)
	}
}

func TestSave_EmptyGridLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := NewGrid().Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) != 3200 {
		t.Fatalf("file size: got %d want 3200", len(data))
	}
	for off := 0; off < len(data); off += fieldSize {
		if v := int32(byteOrder.Uint32(data[off:])); v != -1 {
			t.Fatalf("field at offset %d: got %d want -1", off, v)
		}
	}
}

func TestWriteTo_RowMajorOrder(t *testing.T) {
	g := NewGrid()
	g.Set(1, 0, Filled(4, 7))
	g.Set(0, 1, Filled(5, 9))

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != FileSize {
		t.Fatalf("bytes written: got %d want %d", n, FileSize)
	}
	data := buf.Bytes()

	// (1,0) is the second record of the first row.
	if got := int32(byteOrder.Uint32(data[recordSize:])); got != 7 {
		t.Fatalf("type of (1,0): got %d want 7", got)
	}
	if got := int32(byteOrder.Uint32(data[recordSize+fieldSize:])); got != 4 {
		t.Fatalf("texture of (1,0): got %d want 4", got)
	}
	// (0,1) starts the second row.
	row := Width * recordSize
	if got := int32(byteOrder.Uint32(data[row:])); got != 9 {
		t.Fatalf("type of (0,1): got %d want 9", got)
	}
	if got := int32(byteOrder.Uint32(data[row+fieldSize:])); got != 5 {
		t.Fatalf("texture of (0,1): got %d want 5", got)
	}
}

func TestLoad_TruncatedKeepsRemainingCells(t *testing.T) {
	var full bytes.Buffer
	if _, err := paintedGrid().WriteTo(&full); err != nil {
		t.Fatalf("write: %v", err)
	}

	const n = 37
	path := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(path, full.Bytes()[:n*recordSize], 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	sentinel := Filled(9, 99)
	g := NewGrid()
	g.Fill(sentinel)
	report, err := g.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if report.Cells != n || !report.Truncated {
		t.Fatalf("report: got %+v want %d cells truncated", report, n)
	}

	want := paintedGrid()
	i := 0
	g.Each(func(x, y int, got Tile) {
		if i < n {
			if got != want.At(x, y) {
				t.Errorf("cell %d (%d,%d): got %+v want %+v", i, x, y, got, want.At(x, y))
			}
		} else if got != sentinel {
			t.Errorf("cell %d (%d,%d) should keep pre-load value, got %+v", i, x, y, got)
		}
		i++
	})
}

func TestDecode_MissingTextureIndexDefaultsToZero(t *testing.T) {
	data := make([]byte, 0, recordSize+fieldSize)
	data = byteOrder.AppendUint32(data, 3)
	data = byteOrder.AppendUint32(data, 2)
	data = byteOrder.AppendUint32(data, 5) // type of cell 1, texture index cut off

	g := NewGrid()
	report := g.Decode(data)
	if report.Cells != 2 || report.DefaultedTextures != 1 || !report.Truncated {
		t.Fatalf("unexpected report: %+v", report)
	}
	if got := g.At(0, 0); got != Filled(2, 3) {
		t.Fatalf("cell 0: got %+v", got)
	}
	if got := g.At(1, 0); got != Filled(0, 5) {
		t.Fatalf("cell 1: got %+v want texture index 0", got)
	}
	if got := g.At(2, 0); got != Empty {
		t.Fatalf("cell 2 should be untouched, got %+v", got)
	}
}

func TestDecode_LegacyTypeOnlyFile(t *testing.T) {
	data := make([]byte, 0, LegacyFileSize)
	for i := 0; i < Cells; i++ {
		v := int32(i % 5)
		if i%4 == 0 {
			v = -1
		}
		data = byteOrder.AppendUint32(data, uint32(v))
	}

	g := NewGrid()
	report := g.Decode(data)
	if !report.Legacy || report.Cells != Cells || report.Truncated {
		t.Fatalf("unexpected report: %+v", report)
	}

	i := 0
	g.Each(func(x, y int, got Tile) {
		wantType := int32(i % 5)
		if i%4 == 0 {
			wantType = -1
		}
		if got.Type != wantType || got.TextureIndex != 0 {
			t.Errorf("cell (%d,%d): got %+v want type %d texture 0", x, y, got, wantType)
		}
		i++
	})
}

func TestDecode_EmptyInput(t *testing.T) {
	g := paintedGrid()
	before := g.Clone()
	report := g.Decode(nil)
	if report.Cells != 0 || !report.Truncated {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !g.Equal(before) {
		t.Fatalf("grid changed on empty input")
	}
}

func TestLoad_UnopenablePathLeavesGrid(t *testing.T) {
	g := paintedGrid()
	before := g.Clone()
	if _, err := g.Load(filepath.Join(t.TempDir(), "does-not-exist.bin")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !g.Equal(before) {
		t.Fatalf("grid changed after failed load")
	}
}

func TestSave_UnopenablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "map.bin")
	if err := NewGrid().Save(path); err == nil {
		t.Fatalf("expected error when directory does not exist")
	}
}

func TestMissingTextures_Report(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, Filled(0, 1))
	g.Set(1, 0, Filled(1, 1))
	g.Set(2, 0, Filled(3, 1))
	g.Set(3, 0, Filled(3, 2))
	g.Set(4, 0, Filled(5, 0))

	missing := g.MissingTextures(2)
	if len(missing) != 2 {
		t.Fatalf("missing entries: got %d want 2 (%v)", len(missing), missing)
	}
	if missing[0] != (MissingTexture{Index: 3, Cells: 2}) || missing[1] != (MissingTexture{Index: 5, Cells: 1}) {
		t.Fatalf("unexpected report: %v", missing)
	}
	if got := g.At(2, 0).TextureIndex; got != 3 {
		t.Fatalf("dangling cell rewritten: texture index %d", got)
	}
	if missing[1].String() != "tile-sheet #5 (1 cell)" {
		t.Fatalf("unexpected string: %q", missing[1].String())
	}
}

func TestLoad_MissingTextureScenario(t *testing.T) {
	src := NewGrid()
	src.Set(4, 4, Filled(3, 0))
	path := filepath.Join(t.TempDir(), "refs.bin")
	if err := src.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	g := NewGrid()
	if _, err := g.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	missing := g.MissingTextures(2)
	if len(missing) != 1 || missing[0].Index != 3 {
		t.Fatalf("missing report: got %v want one entry for index 3", missing)
	}
	if got := g.At(4, 4); got.TextureIndex != 3 {
		t.Fatalf("cell should keep texture index 3, got %+v", got)
	}
}
