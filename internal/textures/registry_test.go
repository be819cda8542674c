package textures

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

type fakeTexture struct {
	bounds   image.Rectangle
	released int
}

func (f *fakeTexture) Bounds() image.Rectangle { return f.bounds }
func (f *fakeTexture) Deallocate()             { f.released++ }

type fakeUploader struct {
	uploaded []*fakeTexture
}

func (u *fakeUploader) upload(img image.Image) Texture {
	tex := &fakeTexture{bounds: img.Bounds()}
	u.uploaded = append(u.uploaded, tex)
	return tex
}

func newTestRegistry(capacity int) (*Registry, *fakeUploader) {
	u := &fakeUploader{}
	return NewRegistry(16, 16, capacity).WithUploader(u.upload), u
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{uint8(x), 0, 0, 255})
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestRegistry_AddComputesLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dungeon.png")
	writePNG(t, path, 128, 48)

	r, _ := newTestRegistry(10)
	idx, err := r.Add(path)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if idx != 0 {
		t.Fatalf("index: got %d want 0", idx)
	}
	e, ok := r.Entry(idx)
	if !ok {
		t.Fatalf("entry missing")
	}
	if e.Width != 128 || e.Height != 48 || e.Columns != 8 || e.Rows != 3 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if r.Columns(idx) != 8 || r.Rows(idx) != 3 {
		t.Fatalf("Columns/Rows: got %d/%d", r.Columns(idx), r.Rows(idx))
	}
}

func TestRegistry_AddDeduplicatesByPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writePNG(t, path, 32, 32)

	r, u := newTestRegistry(10)
	first, err := r.Add(path)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := r.Add(filepath.Join(dir, ".", "a.png"))
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if first != second || r.Len() != 1 {
		t.Fatalf("expected dedup: first=%d second=%d len=%d", first, second, r.Len())
	}
	if len(u.uploaded) != 1 {
		t.Fatalf("uploads: got %d want 1", len(u.uploaded))
	}
}

func TestRegistry_AddDecodeFailureLeavesRegistry(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, u := newTestRegistry(10)
	idx, err := r.Add(bad)
	if err == nil || idx != -1 {
		t.Fatalf("expected failure, got idx=%d err=%v", idx, err)
	}
	if _, err := r.Add(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("expected failure for missing file")
	}
	if r.Len() != 0 || len(u.uploaded) != 0 {
		t.Fatalf("registry changed after failed adds")
	}
}

func TestRegistry_AddRejectsSheetSmallerThanTile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.png")
	writePNG(t, path, 8, 8)

	r, _ := newTestRegistry(10)
	if _, err := r.Add(path); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("registry changed")
	}
}

func TestRegistry_CapacityReleasesTexture(t *testing.T) {
	dir := t.TempDir()
	r, u := newTestRegistry(2)
	for i, name := range []string{"a.png", "b.png", "c.png"} {
		path := filepath.Join(dir, name)
		writePNG(t, path, 16, 16)
		idx, err := r.Add(path)
		if i < 2 {
			if err != nil || idx != i {
				t.Fatalf("add %s: idx=%d err=%v", name, idx, err)
			}
			continue
		}
		if !errors.Is(err, ErrRegistryFull) || idx != -1 {
			t.Fatalf("expected ErrRegistryFull, got idx=%d err=%v", idx, err)
		}
	}
	if r.Len() != 2 {
		t.Fatalf("len: got %d want 2", r.Len())
	}
	if got := u.uploaded[2].released; got != 1 {
		t.Fatalf("rejected texture released %d times, want 1", got)
	}
}

func TestRegistry_IndexStability(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRegistry(10)

	first := filepath.Join(dir, "first.png")
	writePNG(t, first, 32, 16)
	idx, err := r.Add(first)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, name := range []string{"b.png", "c.png", "d.png"} {
		path := filepath.Join(dir, name)
		writePNG(t, path, 16, 16)
		if _, err := r.Add(path); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	e, ok := r.Entry(idx)
	if !ok || e.Path != first {
		t.Fatalf("index %d now names %+v", idx, e)
	}
	if got, ok := r.FindByName("first.png"); !ok || got != idx {
		t.Fatalf("FindByName: got %d,%v want %d", got, ok, idx)
	}
}

func TestRegistry_FindByName(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRegistry(10)
	for _, name := range []string{"dungeon_test.png", "dungeon_walls.png", "overworld.png"} {
		path := filepath.Join(dir, name)
		writePNG(t, path, 16, 16)
		if _, err := r.Add(path); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if idx, ok := r.FindByName("dungeon"); !ok || idx != 0 {
		t.Fatalf("partial match: got %d,%v want 0,true", idx, ok)
	}
	if idx, ok := r.FindByName("overworld"); !ok || idx != 2 {
		t.Fatalf("match: got %d,%v want 2,true", idx, ok)
	}
	if idx, ok := r.FindByName("castle"); ok || idx != -1 {
		t.Fatalf("miss: got %d,%v want -1,false", idx, ok)
	}
}

func TestRegistry_CloseReleasesOnce(t *testing.T) {
	dir := t.TempDir()
	r, u := newTestRegistry(10)
	for _, name := range []string{"a.png", "b.png"} {
		path := filepath.Join(dir, name)
		writePNG(t, path, 16, 16)
		if _, err := r.Add(path); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	r.Close()
	r.Close()
	for i, tex := range u.uploaded {
		if tex.released != 1 {
			t.Fatalf("texture %d released %d times, want 1", i, tex.released)
		}
	}
	if r.Texture(0) != nil {
		t.Fatalf("expected nil texture after close")
	}
	if _, err := r.Add(filepath.Join(dir, "c.png")); err == nil {
		t.Fatalf("expected add to fail after close")
	}
}

func TestRegistry_OutOfRangeAccessors(t *testing.T) {
	r, _ := newTestRegistry(10)
	if _, ok := r.Entry(0); ok {
		t.Fatalf("Entry(0) on empty registry should fail")
	}
	if r.Columns(-1) != 0 || r.Rows(3) != 0 {
		t.Fatalf("expected zero layout for invalid indices")
	}
	if r.Image(0) != nil || r.Texture(0) != nil {
		t.Fatalf("expected nil texture for invalid index")
	}
}

func TestRegistry_CellRect(t *testing.T) {
	r, _ := newTestRegistry(10)
	got := r.CellRect(0, 2, 1)
	want := image.Rect(32, 16, 48, 32)
	if got != want {
		t.Fatalf("CellRect: got %v want %v", got, want)
	}
}
