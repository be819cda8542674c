package game

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var uiFace font.Face = basicfont.Face7x13

const lineHeight = 16

func textWidth(s string) int {
	return font.MeasureString(uiFace, s).Round()
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	if s == "" {
		return
	}
	ebitext.Draw(dst, s, uiFace, x, y+uiFace.Metrics().Ascent.Round(), clr)
}

func drawCenteredText(dst *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	x := r.Min.X + (r.Dx()-textWidth(s))/2
	y := r.Min.Y + (r.Dy()-uiFace.Metrics().Height.Round())/2
	drawText(dst, s, x, y, clr)
}

// truncateLabel shortens s with a trailing "..." so it fits in maxWidth pixels.
func truncateLabel(s string, maxWidth int) string {
	if textWidth(s) <= maxWidth {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if candidate := string(runes) + ellipsis; textWidth(candidate) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// wrapText wraps text on word boundaries to lines of at most maxWidth pixels.
func wrapText(text string, maxWidth int) []string {
	if textWidth(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}
		if textWidth(candidate) <= maxWidth || currentLine == "" {
			currentLine = candidate
			continue
		}
		lines = append(lines, currentLine)
		currentLine = word
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

func drawFilledRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// drawRectBorder draws a rectangle border of given thickness outside (x, y, w, h).
func drawRectBorder(dst *ebiten.Image, x, y, w, h, thickness int, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x-thickness), float32(y-thickness), float32(w+2*thickness), float32(thickness), clr, false)
	vector.DrawFilledRect(dst, float32(x-thickness), float32(y+h), float32(w+2*thickness), float32(thickness), clr, false)
	vector.DrawFilledRect(dst, float32(x-thickness), float32(y), float32(thickness), float32(h), clr, false)
	vector.DrawFilledRect(dst, float32(x+w), float32(y), float32(thickness), float32(h), clr, false)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	drawFilledRect(dst, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), clr)
}

func tooltipBoxSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	bgWidth := 0
	for _, line := range lines {
		if w := textWidth(line) + 12; w > bgWidth {
			bgWidth = w
		}
	}
	return bgWidth, len(lines)*lineHeight + 8
}

// drawTooltip draws lines in a box at (x, y), shifted left to stay inside screenW.
func drawTooltip(screen *ebiten.Image, lines []string, x, y, screenW int) {
	bgWidth, bgHeight := tooltipBoxSize(lines)
	if x+bgWidth > screenW {
		x = screenW - bgWidth
	}
	if x < 0 {
		x = 0
	}
	drawFilledRect(screen, x, y, bgWidth, bgHeight, color.RGBA{30, 30, 60, 240})
	for i, line := range lines {
		drawText(screen, line, x+6, y+4+i*lineHeight, color.White)
	}
}

func isMouseHoveringRect(mouseX, mouseY int, r image.Rectangle) bool {
	return image.Pt(mouseX, mouseY).In(r)
}
