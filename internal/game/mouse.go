package game

import "image"

type queuedClick struct {
	x, y int
	at   int64
}

// clickBufferFrames is how long an unconsumed click stays queued.
const clickBufferFrames = 6

// clickQueue buffers left clicks so widgets handled later in the frame (or
// in the next few frames) still see them.
type clickQueue struct {
	clicks []queuedClick
}

func (q *clickQueue) push(x, y int, now int64) {
	q.clicks = append(q.clicks, queuedClick{x: x, y: y, at: now})
}

// consumeIn consumes the oldest queued click inside r.
// Bounds are inclusive-exclusive: [Min.X,Max.X) and [Min.Y,Max.Y).
func (q *clickQueue) consumeIn(r image.Rectangle) (queuedClick, bool) {
	for i, click := range q.clicks {
		if image.Pt(click.x, click.y).In(r) {
			q.clicks = append(q.clicks[:i], q.clicks[i+1:]...)
			return click, true
		}
	}
	return queuedClick{}, false
}

func (q *clickQueue) clear() {
	q.clicks = q.clicks[:0]
}

func (q *clickQueue) prune(now int64) {
	if len(q.clicks) == 0 {
		return
	}
	keep := q.clicks[:0]
	for _, click := range q.clicks {
		if now-click.at <= clickBufferFrames {
			keep = append(keep, click)
		}
	}
	q.clicks = keep
}
