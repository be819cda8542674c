package editor

import "fmt"

type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// Notice is a transient status line shown to the user.
type Notice struct {
	Level  NoticeLevel
	Text   string
	Frames int // remaining frames on screen
}

const maxNotices = 6

// Notices is a bounded FIFO of status lines; the oldest is dropped first.
type Notices struct {
	items    []Notice
	lifetime int
}

func (n *Notices) push(level NoticeLevel, format string, args ...any) {
	lifetime := n.lifetime
	if lifetime <= 0 {
		lifetime = 240
	}
	n.items = append(n.items, Notice{Level: level, Text: fmt.Sprintf(format, args...), Frames: lifetime})
	if len(n.items) > maxNotices {
		n.items = n.items[len(n.items)-maxNotices:]
	}
}

// tick ages every notice by one frame and drops expired ones.
func (n *Notices) tick() {
	keep := n.items[:0]
	for _, item := range n.items {
		item.Frames--
		if item.Frames > 0 {
			keep = append(keep, item)
		}
	}
	n.items = keep
}

// Active returns the notices currently on screen, oldest first.
func (n *Notices) Active() []Notice {
	out := make([]Notice, len(n.items))
	copy(out, n.items)
	return out
}

// Last returns the most recent notice.
func (n *Notices) Last() (Notice, bool) {
	if len(n.items) == 0 {
		return Notice{}, false
	}
	return n.items[len(n.items)-1], true
}
