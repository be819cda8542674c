package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all editor configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Editor  EditorConfig  `yaml:"editor"`
	Camera  CameraConfig  `yaml:"camera"`
	Colors  ColorsConfig  `yaml:"colors"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

// WorldConfig describes the fixed render target the map is drawn into.
// The map grid itself is always tilemap.Width x tilemap.Height cells.
type WorldConfig struct {
	TileWidth    int `yaml:"tile_width"`
	TileHeight   int `yaml:"tile_height"`
	RenderWidth  int `yaml:"render_width"`
	RenderHeight int `yaml:"render_height"`
}

type EditorConfig struct {
	TilemapsDir  string `yaml:"tilemaps_dir"`
	MapsDir      string `yaml:"maps_dir"`
	MaxTextures  int    `yaml:"max_textures"`
	SidebarWidth int    `yaml:"sidebar_width"`
	PaletteScale int    `yaml:"palette_scale"`
	NoticeFrames int    `yaml:"notice_frames"`
}

type CameraConfig struct {
	Zoom     float64 `yaml:"zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
	MinZoom  float64 `yaml:"min_zoom"`
	PanSpeed float64 `yaml:"pan_speed"` // pixels per second
}

type ColorsConfig struct {
	Background [3]int `yaml:"background"`
	World      [3]int `yaml:"world"`
	Grid       [3]int `yaml:"grid"`
	Highlight  [3]int `yaml:"highlight"`
}

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns the built-in configuration used when a key is absent from the file.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			WindowTitle:  "tilesmith",
			Resizable:    true,
		},
		World: WorldConfig{
			TileWidth:    16,
			TileHeight:   16,
			RenderWidth:  1280,
			RenderHeight: 720,
		},
		Editor: EditorConfig{
			TilemapsDir:  "assets/tilemaps",
			MapsDir:      "maps",
			MaxTextures:  10,
			SidebarWidth: 300,
			PaletteScale: 2,
			NoticeFrames: 240,
		},
		Camera: CameraConfig{
			Zoom:     2.0,
			ZoomStep: 0.125,
			MinZoom:  0.125,
			PanSpeed: 200,
		},
		Colors: ColorsConfig{
			Background: [3]int{15, 15, 22},
			World:      [3]int{80, 80, 80},
			Grid:       [3]int{0, 0, 0},
			Highlight:  [3]int{235, 46, 74},
		},
	}
}

// applyDefaults repairs values a partial file zeroed out.
func (c *Config) applyDefaults() {
	d := Default()
	if c.World.TileWidth <= 0 {
		c.World.TileWidth = d.World.TileWidth
	}
	if c.World.TileHeight <= 0 {
		c.World.TileHeight = d.World.TileHeight
	}
	if c.World.RenderWidth <= 0 {
		c.World.RenderWidth = d.World.RenderWidth
	}
	if c.World.RenderHeight <= 0 {
		c.World.RenderHeight = d.World.RenderHeight
	}
	if c.Editor.MaxTextures <= 0 {
		c.Editor.MaxTextures = d.Editor.MaxTextures
	}
	if c.Editor.PaletteScale <= 0 {
		c.Editor.PaletteScale = d.Editor.PaletteScale
	}
	if c.Camera.Zoom <= 0 {
		c.Camera.Zoom = d.Camera.Zoom
	}
	if c.Camera.ZoomStep <= 0 {
		c.Camera.ZoomStep = d.Camera.ZoomStep
	}
	if c.Camera.MinZoom <= 0 {
		c.Camera.MinZoom = d.Camera.MinZoom
	}
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() (int, int) {
	return c.World.TileWidth, c.World.TileHeight
}

func (c *Config) GetRenderSize() (int, int) {
	return c.World.RenderWidth, c.World.RenderHeight
}
