// internal/timer/scheduler.go
package timer

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle    Handle
	due       time.Duration
	interval  time.Duration // 0 for one-shot timers
	seq       uint64
	fn        func()
	cancelled bool
}

type queue []*entry

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x interface{}) {
	*q = append(*q, x.(*entry))
}
func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Scheduler runs callbacks against a virtual clock that only moves when
// Advance is called. Everything happens on the caller's goroutine: a callback
// runs to completion before the next one starts, and callbacks may schedule or
// cancel other timers freely.
//
// Timers due at the same instant fire in the order they were scheduled.
type Scheduler struct {
	now        time.Duration
	queue      queue
	live       map[Handle]*entry
	nextHandle Handle
	nextSeq    uint64
	generation uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[Handle]*entry)}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, delay from now. A non-positive delay fires on the next
// Advance.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

// Every runs fn repeatedly, first after interval and then every interval.
// A non-positive interval schedules nothing and returns the zero Handle.
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		return 0
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) Handle {
	if fn == nil {
		return 0
	}
	s.nextHandle++
	s.nextSeq++
	e := &entry{
		handle:   s.nextHandle,
		due:      s.now + delay,
		interval: interval,
		seq:      s.nextSeq,
		fn:       fn,
	}
	heap.Push(&s.queue, e)
	s.live[e.handle] = e
	return e.handle
}

// Cancel stops a pending timer. It reports whether the timer was still live.
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.live[h]
	if !ok {
		return false
	}
	e.cancelled = true
	delete(s.live, h)
	return true
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	return len(s.live)
}

// Advance moves the clock forward by dt, firing every timer that falls due on
// the way in due order. While a callback runs, Now reports that timer's due
// time. It returns the number of callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	gen := s.generation
	fired := 0

	for s.queue.Len() > 0 && s.queue[0].due <= target {
		e := heap.Pop(&s.queue).(*entry)
		if e.cancelled {
			continue
		}
		s.now = e.due
		if e.interval > 0 {
			s.nextSeq++
			e.seq = s.nextSeq
			e.due += e.interval
			heap.Push(&s.queue, e)
		} else {
			delete(s.live, e.handle)
		}
		e.fn()
		fired++
		if s.generation != gen {
			// Reset was called from inside a callback.
			break
		}
	}
	if target > s.now {
		s.now = target
	}
	return fired
}

// Reset cancels every pending timer. The clock keeps its current value.
func (s *Scheduler) Reset() {
	for _, e := range s.queue {
		e.cancelled = true
	}
	s.queue = nil
	s.live = make(map[Handle]*entry)
	s.generation++
}
