package inspect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tilesmith/internal/tilemap"
)

func saveGrid(t *testing.T, path string, g *tilemap.Grid) {
	t.Helper()
	if err := g.Save(path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

func TestAnalyse_CountsAndMissing(t *testing.T) {
	g := tilemap.NewGrid()
	g.Set(0, 0, tilemap.Filled(0, 1))
	g.Set(1, 0, tilemap.Filled(0, 2))
	g.Set(2, 0, tilemap.Filled(3, 0))

	r := Analyse(g, []string{"a.png", "b.png"})
	if r.Filled != 3 {
		t.Fatalf("filled: got %d want 3", r.Filled)
	}
	if r.Counts[0] != 2 || r.Counts[3] != 1 {
		t.Fatalf("counts: got %v", r.Counts)
	}
	if len(r.Missing) != 1 || r.Missing[0].Index != 3 {
		t.Fatalf("missing: got %v", r.Missing)
	}
}

func TestLoadMaps_SortedWithErrors(t *testing.T) {
	dir := t.TempDir()
	g := tilemap.NewGrid()
	g.Set(4, 4, tilemap.Filled(1, 0))
	saveGrid(t, filepath.Join(dir, "b.bin"), g)
	saveGrid(t, filepath.Join(dir, "a.bin"), tilemap.NewGrid())
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	maps, err := LoadMaps(dir, []string{"only.png"})
	if err != nil {
		t.Fatalf("load maps: %v", err)
	}
	if len(maps) != 2 {
		t.Fatalf("maps: got %d want 2", len(maps))
	}
	if filepath.Base(maps[0].Path) != "a.bin" || filepath.Base(maps[1].Path) != "b.bin" {
		t.Fatalf("order: got %s, %s", maps[0].Path, maps[1].Path)
	}
	if len(maps[1].Report.Missing) != 1 {
		t.Fatalf("b.bin should reference a missing sheet: %+v", maps[1].Report)
	}

	broken := LoadMap(filepath.Join(dir, "nope.bin"), nil)
	if broken.Err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if lines := broken.InfoLines(); lines[0] != "Failed to load:" {
		t.Fatalf("info lines: got %v", lines)
	}
}

func TestSheetNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.png", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	names, err := SheetNames(dir)
	if err != nil {
		t.Fatalf("sheet names: %v", err)
	}
	if strings.Join(names, ",") != "a.png,b.png" {
		t.Fatalf("names: got %v", names)
	}
	if _, err := SheetNames(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected an error for a missing dir")
	}
}

func TestInfoLines_Formats(t *testing.T) {
	legacy := MapFile{Grid: tilemap.NewGrid(), Load: tilemap.LoadReport{Legacy: true, Cells: tilemap.Cells}}
	if !containsLine(legacy.InfoLines(), "Format: legacy (type only)") {
		t.Fatalf("legacy format not reported: %v", legacy.InfoLines())
	}
	short := MapFile{Grid: tilemap.NewGrid(), Load: tilemap.LoadReport{Truncated: true, Cells: 37}}
	if !containsLine(short.InfoLines(), "Format: truncated, 37 cells read") {
		t.Fatalf("truncation not reported: %v", short.InfoLines())
	}
}

func TestLegendLines(t *testing.T) {
	lines := LegendLines([]string{"forest.png", "cave.png"})
	if !containsLine(lines, " 1  #1 cave.png") {
		t.Fatalf("legend: got %v", lines)
	}
}

func containsLine(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}
