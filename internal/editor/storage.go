package editor

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultMapName = "untitled.bin"

// MapsDir returns the directory maps are offered in by default: next to the
// executable, or in the working directory when running from a go build
// temp dir. The directory is created on demand.
func MapsDir(name string) string {
	if filepath.IsAbs(name) {
		_ = os.MkdirAll(name, 0755)
		return name
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		// When running via "go run", the executable lives in a temp build dir.
		// In that case, prefer the current working directory so maps persist.
		if !isTempExeDir(exeDir) {
			dir := filepath.Join(exeDir, name)
			if err := os.MkdirAll(dir, 0755); err == nil {
				return dir
			}
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		dir := filepath.Join(cwd, name)
		_ = os.MkdirAll(dir, 0755)
		return dir
	}
	return name
}

// DefaultMapPath suggests a file name for a save-as prompt.
func DefaultMapPath(dir, current string) string {
	if current != "" {
		return current
	}
	return filepath.Join(dir, defaultMapName)
}

// isTempExeDir returns true when the executable directory looks like a Go temp build path.
func isTempExeDir(dir string) bool {
	clean := filepath.Clean(dir)
	if strings.Contains(clean, string(filepath.Separator)+"go-build") {
		return true
	}
	if strings.HasPrefix(clean, filepath.Clean(os.TempDir())+string(filepath.Separator)) {
		return true
	}
	return false
}
