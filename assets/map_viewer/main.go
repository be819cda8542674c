package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"tilesmith/internal/config"
	"tilesmith/internal/editor"
	"tilesmith/internal/inspect"

	"github.com/gdamore/tcell/v2"
)

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")

	mapsDir := flag.String("maps", editor.MapsDir(cfg.Editor.MapsDir), "directory of saved maps")
	sheetsDir := flag.String("tilemaps", cfg.Editor.TilemapsDir, "managed tile-sheet directory")
	flag.Parse()

	sheets, err := inspect.SheetNames(*sheetsDir)
	if err != nil {
		log.Printf("Warning: failed to scan tile-sheets: %v", err)
	}
	if len(sheets) > cfg.Editor.MaxTextures {
		sheets = sheets[:cfg.Editor.MaxTextures]
	}

	var maps []inspect.MapFile
	if flag.NArg() > 0 {
		for _, path := range flag.Args() {
			maps = append(maps, inspect.LoadMap(path, sheets))
		}
	} else {
		maps, err = inspect.LoadMaps(*mapsDir, sheets)
		if err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	inspect.NewViewer(screen, maps, sheets).Run()
}

// ensureRuntimeCWD moves to the executable's directory when config.yaml is
// not in the working directory.
func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
