package main

import (
	"log"

	"tilesmith/internal/config"
	"tilesmith/internal/editor"
	"tilesmith/internal/game"
	"tilesmith/internal/textures"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Register every tile-sheet in the managed directory
	tileW, tileH := cfg.GetTileSize()
	registry := textures.NewRegistry(tileW, tileH, cfg.Editor.MaxTextures)
	defer registry.Close()
	if n := registry.LoadDirectory(cfg.Editor.TilemapsDir); n == 0 {
		log.Printf("Warning: no tile-sheets found in %s", cfg.Editor.TilemapsDir)
	}

	ed := editor.New(cfg, registry)

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewEditorGame(cfg, ed)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
