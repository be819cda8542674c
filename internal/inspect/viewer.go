package inspect

import (
	"fmt"
	"path/filepath"

	"tilesmith/internal/mathutil"

	"github.com/gdamore/tcell/v2"
)

type Tab int

const (
	TabInfo Tab = iota
	TabLegend
)

const sidebarWidth = 40

// Viewer is the terminal map browser: left/right cycles maps, Tab switches
// the sidebar between info and legend, Esc or q quits.
type Viewer struct {
	screen   tcell.Screen
	renderer *Renderer
	maps     []MapFile
	sheets   []string
	legend   []string
	index    int
	tab      Tab
	scroll   int
}

func NewViewer(screen tcell.Screen, maps []MapFile, sheets []string) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen),
		maps:     maps,
		sheets:   sheets,
		legend:   LegendLines(sheets),
	}
}

// Current returns the map on screen.
func (v *Viewer) Current() (MapFile, bool) {
	if len(v.maps) == 0 {
		return MapFile{}, false
	}
	return v.maps[v.index], true
}

func (v *Viewer) Tab() Tab {
	return v.tab
}

// HandleKey applies one key press and reports whether the viewer keeps running.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		v.toggleTab()
	case tcell.KeyRight:
		v.step(1)
	case tcell.KeyLeft:
		v.step(-1)
	case tcell.KeyDown:
		v.scroll++
	case tcell.KeyUp:
		v.scroll--
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'd', 'D':
			v.step(1)
		case 'a', 'A':
			v.step(-1)
		case '1':
			v.setTab(TabInfo)
		case '2':
			v.setTab(TabLegend)
		}
	}
	v.clampScroll()
	return true
}

func (v *Viewer) step(delta int) {
	if len(v.maps) == 0 {
		return
	}
	v.index = (v.index + delta + len(v.maps)) % len(v.maps)
	v.scroll = 0
}

func (v *Viewer) toggleTab() {
	if v.tab == TabInfo {
		v.setTab(TabLegend)
	} else {
		v.setTab(TabInfo)
	}
}

func (v *Viewer) setTab(t Tab) {
	v.tab = t
	v.scroll = 0
}

func (v *Viewer) sidebarLines() []string {
	if v.tab == TabLegend {
		return v.legend
	}
	m, ok := v.Current()
	if !ok {
		return nil
	}
	return m.InfoLines()
}

func (v *Viewer) clampScroll() {
	_, h := v.screen.Size()
	visible := mathutil.IntMax(1, h-4)
	maxScroll := mathutil.IntMax(0, len(v.sidebarLines())-visible)
	v.scroll = mathutil.IntClamp(v.scroll, 0, maxScroll)
}

// Draw renders the whole viewer and shows it.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	plain := tcell.StyleDefault
	dim := plain.Foreground(tcell.ColorGray)
	title := plain.Foreground(tcell.ColorWhite).Bold(true)

	m, ok := v.Current()
	if !ok {
		v.renderer.DrawText(1, 1, w-2, "no maps found", plain)
		v.screen.Show()
		return
	}

	header := fmt.Sprintf("%s (%d/%d)", filepath.Base(m.Path), v.index+1, len(v.maps))
	v.renderer.DrawText(1, 0, w-2, header, title)
	v.renderer.DrawText(1, h-1, w-2, "Left/Right (or A/D) to switch maps, Tab to switch tabs, Esc to quit", dim)

	gridW, _ := GridSize()
	if m.Err != nil {
		v.renderer.DrawText(1, 2, w-2, fmt.Sprintf("map %s failed to load: %v", filepath.Base(m.Path), m.Err), plain)
	} else {
		v.renderer.DrawGrid(1, 2, m.Grid, len(v.sheets))
	}

	x := gridW + 4
	width := mathutil.IntMin(sidebarWidth, w-x-1)
	info, legend := "[1 Info]", " 2 Legend "
	if v.tab == TabLegend {
		info, legend = " 1 Info ", "[2 Legend]"
	}
	col := x + v.renderer.DrawText(x, 2, width, info, title)
	v.renderer.DrawText(col+1, 2, width-(col-x)-1, legend, title)
	v.renderer.DrawLines(x, 4, width, h-6, v.sidebarLines(), v.scroll, plain)
	v.screen.Show()
}

// Run draws and handles events until the user quits.
func (v *Viewer) Run() {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
			v.clampScroll()
			v.Draw()
		case *tcell.EventKey:
			if !v.HandleKey(ev) {
				return
			}
			v.Draw()
		}
	}
}
