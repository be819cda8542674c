package textures

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ScanDirectory lists the supported image files in dir in enumeration order.
func ScanDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// LoadDirectory registers every supported image in dir, in enumeration
// order. Files that fail to load are logged and skipped. It returns the
// number of sheets newly registered.
func (r *Registry) LoadDirectory(dir string) int {
	paths, err := ScanDirectory(dir)
	if err != nil {
		log.Printf("Warning: failed to scan tilemap directory %s: %v", dir, err)
		return 0
	}

	added := 0
	for _, path := range paths {
		before := r.Len()
		if _, err := r.Add(path); err != nil {
			continue
		}
		if r.Len() > before {
			log.Printf("Loaded tilemap: %s", path)
			added++
		}
	}
	return added
}

// Rescan picks up sheets that appeared in dir since the last scan.
// Already registered files keep their indices.
func (r *Registry) Rescan(dir string) int {
	added := r.LoadDirectory(dir)
	if added > 0 {
		log.Printf("Rescan of %s registered %d new tilemap(s)", dir, added)
	}
	return added
}

// Import copies source into the managed directory and registers the copy,
// so that maps referring to it by index stay loadable in later sessions.
// A source already inside managedDir is registered in place.
func (r *Registry) Import(source, managedDir string) (int, error) {
	if samePath(filepath.Dir(source), managedDir) {
		return r.Add(source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		log.Printf("Error: failed to read tile-sheet %s: %v", source, err)
		return -1, fmt.Errorf("failed to read tile-sheet %s: %w", source, err)
	}
	return r.ImportBytes(filepath.Base(source), data, managedDir)
}

// ImportBytes writes data into managedDir under name and registers it.
// An identical file already present is reused; a different file with the
// same name gets a numbered name instead of being overwritten. If the copy
// cannot be registered it is removed again.
func (r *Registry) ImportBytes(name string, data []byte, managedDir string) (int, error) {
	name = filepath.Base(name)
	if !IsSupported(name) {
		return -1, fmt.Errorf("failed to import %s: %w: unknown image type", name, ErrUnsupported)
	}
	if err := os.MkdirAll(managedDir, 0o755); err != nil {
		return -1, fmt.Errorf("failed to create tilemap directory %s: %w", managedDir, err)
	}

	dest, existing := managedDestination(managedDir, name, data)
	if !existing {
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			log.Printf("Error: failed to copy tile-sheet to %s: %v", dest, err)
			return -1, fmt.Errorf("failed to copy tile-sheet to %s: %w", dest, err)
		}
	}

	idx, err := r.Add(dest)
	if err != nil {
		if !existing {
			os.Remove(dest)
		}
		return -1, err
	}
	return idx, nil
}

// managedDestination picks the file name an import lands under. existing is
// true when a byte-identical file is already there.
func managedDestination(dir, name string, data []byte) (string, bool) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := filepath.Join(dir, name)
	for i := 1; ; i++ {
		current, err := os.ReadFile(candidate)
		if err != nil {
			return candidate, false
		}
		if bytes.Equal(current, data) {
			return candidate, true
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
