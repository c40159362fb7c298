// internal/tween/tween.go
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/PaliBr/gamejam/internal/types"
)

// Handle identifies a running tween. The zero Handle is never issued.
type Handle uint64

// Move describes a linear translation of one entity between two points.
type Move struct {
	Owner      types.EntityID
	FromX      float64
	FromY      float64
	ToX        float64
	ToY        float64
	Duration   time.Duration
	OnStart    func()
	OnUpdate   func(x, y float64)
	OnComplete func()
}

type running struct {
	handle  Handle
	move    Move
	x, y    *gween.Tween
	elapsed time.Duration
	started bool
	done    bool
}

// Tweener interpolates positions over time. It owns no entity state: every
// position change is reported through OnUpdate.
type Tweener struct {
	active []*running
	next   Handle
}

func NewTweener() *Tweener {
	return &Tweener{}
}

// Add starts a tween. A zero or negative duration completes on the next Update.
func (tw *Tweener) Add(m Move) Handle {
	tw.next++
	r := &running{handle: tw.next, move: m}
	if m.Duration > 0 {
		secs := float32(m.Duration.Seconds())
		r.x = gween.New(float32(m.FromX), float32(m.ToX), secs, ease.Linear)
		r.y = gween.New(float32(m.FromY), float32(m.ToY), secs, ease.Linear)
	}
	tw.active = append(tw.active, r)
	return tw.next
}

// Update advances every tween by dt. Completion callbacks run after the final
// position has been reported. Tweens added from a callback start on the next
// Update.
func (tw *Tweener) Update(dt time.Duration) {
	batch := tw.active
	for _, r := range batch {
		if r.done {
			continue
		}
		m := &r.move
		if !r.started {
			r.started = true
			if m.OnStart != nil {
				m.OnStart()
			}
		}
		// Completion is decided on the exact duration; the float32 tween
		// clock only supplies the intermediate positions.
		r.elapsed += dt
		x, y, finished := m.ToX, m.ToY, true
		if r.elapsed < m.Duration {
			step := float32(dt.Seconds())
			nx, _ := r.x.Update(step)
			ny, _ := r.y.Update(step)
			x, y, finished = float64(nx), float64(ny), false
		}
		if m.OnUpdate != nil {
			m.OnUpdate(x, y)
		}
		if finished {
			r.done = true
			if m.OnComplete != nil {
				m.OnComplete()
			}
		}
	}
	tw.compact()
}

// Cancel stops a tween without firing OnComplete.
func (tw *Tweener) Cancel(h Handle) bool {
	for _, r := range tw.active {
		if r.handle == h && !r.done {
			r.done = true
			return true
		}
	}
	return false
}

// CancelOwner stops every tween that moves the given entity.
func (tw *Tweener) CancelOwner(owner types.EntityID) int {
	n := 0
	for _, r := range tw.active {
		if r.move.Owner == owner && !r.done {
			r.done = true
			n++
		}
	}
	return n
}

// Active returns the number of unfinished tweens.
func (tw *Tweener) Active() int {
	n := 0
	for _, r := range tw.active {
		if !r.done {
			n++
		}
	}
	return n
}

// Reset drops every tween without callbacks.
func (tw *Tweener) Reset() {
	for _, r := range tw.active {
		r.done = true
	}
	tw.active = nil
}

func (tw *Tweener) compact() {
	kept := tw.active[:0]
	for _, r := range tw.active {
		if !r.done {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(tw.active); i++ {
		tw.active[i] = nil
	}
	tw.active = kept
}
