// Package inspect analyses saved map files without a GPU and draws them on
// a terminal screen.
package inspect

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"tilesmith/internal/textures"
	"tilesmith/internal/tilemap"
)

// MapFile is one decoded map file.
type MapFile struct {
	Path   string
	Grid   *tilemap.Grid
	Load   tilemap.LoadReport
	Err    error
	Report Report
}

// Report summarises a grid against the tile-sheets available on disk.
type Report struct {
	Sheets  []string
	Filled  int
	Counts  map[int]int // populated cells per texture index
	Missing []tilemap.MissingTexture
}

// LoadMaps decodes every map file in dir, sorted by name. Files that fail to
// read are kept with Err set so the viewer can show why.
func LoadMaps(dir string, sheets []string) ([]MapFile, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	if err != nil {
		return nil, fmt.Errorf("failed to list maps in %s: %w", dir, err)
	}
	sort.Strings(entries)

	maps := make([]MapFile, 0, len(entries))
	for _, path := range entries {
		maps = append(maps, LoadMap(path, sheets))
	}
	return maps, nil
}

// LoadMap decodes one map file.
func LoadMap(path string, sheets []string) MapFile {
	m := MapFile{Path: path, Grid: tilemap.NewGrid()}
	m.Load, m.Err = m.Grid.Load(path)
	if m.Err == nil {
		m.Report = Analyse(m.Grid, sheets)
	}
	return m
}

// SheetNames lists the tile-sheets in dir in registry order, as file names.
func SheetNames(dir string) ([]string, error) {
	paths, err := textures.ScanDirectory(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names, nil
}

// Analyse counts populated cells per texture index and cross-checks them
// against sheets.
func Analyse(g *tilemap.Grid, sheets []string) Report {
	r := Report{
		Sheets:  sheets,
		Counts:  make(map[int]int),
		Missing: g.MissingTextures(len(sheets)),
	}
	g.Each(func(_, _ int, t tilemap.Tile) {
		if t.IsEmpty() {
			return
		}
		r.Filled++
		r.Counts[int(t.TextureIndex)]++
	})
	return r
}

// InfoLines is the text of the info tab.
func (m MapFile) InfoLines() []string {
	if m.Err != nil {
		return []string{"Failed to load:", m.Err.Error()}
	}
	lines := []string{
		fmt.Sprintf("Grid: %dx%d", tilemap.Width, tilemap.Height),
		fmt.Sprintf("Filled: %d / %d", m.Report.Filled, tilemap.Cells),
	}
	switch {
	case m.Load.Legacy:
		lines = append(lines, "Format: legacy (type only)")
	case m.Load.Truncated:
		lines = append(lines, fmt.Sprintf("Format: truncated, %d cells read", m.Load.Cells))
	default:
		lines = append(lines, "Format: current")
	}
	if m.Load.DefaultedTextures > 0 {
		lines = append(lines, fmt.Sprintf("Defaulted sheet index: %d", m.Load.DefaultedTextures))
	}

	indices := make([]int, 0, len(m.Report.Counts))
	for i := range m.Report.Counts {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	lines = append(lines, "", "Cells per tile-sheet:")
	for _, i := range indices {
		name := "MISSING"
		if i >= 0 && i < len(m.Report.Sheets) {
			name = m.Report.Sheets[i]
		}
		lines = append(lines, fmt.Sprintf(" %c #%d %s: %d", Glyph(tilemap.Filled(i, 0)), i, name, m.Report.Counts[i]))
	}

	if len(m.Report.Missing) > 0 {
		lines = append(lines, "", "Missing:")
		for _, miss := range m.Report.Missing {
			lines = append(lines, " "+miss.String())
		}
	}
	return lines
}

// LegendLines is the text of the legend tab.
func LegendLines(sheets []string) []string {
	lines := []string{
		"Glyph -> tile-sheet",
		strings.Repeat("-", 20),
		fmt.Sprintf(" %c  empty", emptyGlyph),
		fmt.Sprintf(" %c  dangling (sheet not on disk)", danglingGlyph),
	}
	for i, name := range sheets {
		lines = append(lines, fmt.Sprintf(" %c  #%d %s", Glyph(tilemap.Filled(i, 0)), i, name))
	}
	return lines
}
