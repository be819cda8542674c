package game

import (
	"strings"

	"tilesmith/internal/editor"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptSaveAs
	promptLoad
	promptAddSheet
)

func (k promptKind) title() string {
	switch k {
	case promptSaveAs:
		return "Save map as"
	case promptLoad:
		return "Load map"
	case promptAddSheet:
		return "Add tile-sheet"
	default:
		return ""
	}
}

// pathPrompt is the single-line file path input used in place of a native
// file dialog.
type pathPrompt struct {
	kind promptKind
	text []rune
}

func (p *pathPrompt) open(kind promptKind, initial string) {
	p.kind = kind
	p.text = []rune(initial)
}

func (p *pathPrompt) active() bool {
	return p.kind != promptNone
}

func (p *pathPrompt) insert(chars []rune) {
	for _, r := range chars {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		p.text = append(p.text, r)
	}
}

func (p *pathPrompt) backspace() {
	if len(p.text) > 0 {
		p.text = p.text[:len(p.text)-1]
	}
}

func (p *pathPrompt) value() string {
	return strings.TrimSpace(string(p.text))
}

func (p *pathPrompt) cancel() {
	p.kind = promptNone
	p.text = p.text[:0]
}

// submit closes the prompt and returns the intent it stands for. An empty
// path keeps the prompt open and returns nil.
func (p *pathPrompt) submit() editor.Intent {
	path := p.value()
	if path == "" {
		return nil
	}
	kind := p.kind
	p.cancel()
	switch kind {
	case promptSaveAs:
		return editor.SaveAsIntent{Path: path}
	case promptLoad:
		return editor.LoadIntent{Path: path}
	case promptAddSheet:
		return editor.AddTextureIntent{Source: path}
	default:
		return nil
	}
}
