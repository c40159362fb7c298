package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_AfterFiresOnceAtDueTime(t *testing.T) {
	s := NewScheduler()
	var firedAt []time.Duration
	s.After(1000*time.Millisecond, func() { firedAt = append(firedAt, s.Now()) })

	assert.Equal(t, 0, s.Advance(999*time.Millisecond))
	assert.Equal(t, 1, s.Advance(1*time.Millisecond))
	assert.Equal(t, 0, s.Advance(5*time.Second))
	assert.Equal(t, []time.Duration{time.Second}, firedAt)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_EveryRepeatsWithinOneAdvance(t *testing.T) {
	s := NewScheduler()
	var ticks []time.Duration
	s.Every(500*time.Millisecond, func() { ticks = append(ticks, s.Now()) })

	s.Advance(1600 * time.Millisecond)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second, 1500 * time.Millisecond}, ticks)
	assert.Equal(t, 1600*time.Millisecond, s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestScheduler_OrderByDueThenScheduling(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(200*time.Millisecond, func() { order = append(order, "b") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(200*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	count := 0
	var h Handle
	h = s.Every(100*time.Millisecond, func() {
		count++
		if count == 3 {
			s.Cancel(h)
		}
	})
	s.Advance(time.Second)
	assert.Equal(t, 3, count)
	assert.False(t, s.Cancel(h))

	h2 := s.After(time.Second, func() { t.Fatal("cancelled timer fired") })
	assert.True(t, s.Cancel(h2))
	s.Advance(2 * time.Second)
}

func TestScheduler_CallbacksCanSchedule(t *testing.T) {
	s := NewScheduler()
	var order []time.Duration
	s.After(100*time.Millisecond, func() {
		s.After(100*time.Millisecond, func() { order = append(order, s.Now()) })
	})
	s.Advance(300 * time.Millisecond)
	assert.Equal(t, []time.Duration{200 * time.Millisecond}, order)
}

func TestScheduler_ResetFromCallback(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(100*time.Millisecond, func() { s.Reset() })
	s.After(200*time.Millisecond, func() { fired++ })
	s.Every(50*time.Millisecond, func() { fired++ })

	s.Advance(time.Second)
	// only the 50ms tick before the reset survives
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, time.Second, s.Now())
}

func TestScheduler_InvalidInput(t *testing.T) {
	s := NewScheduler()
	assert.Equal(t, Handle(0), s.Every(0, func() {}))
	assert.Equal(t, Handle(0), s.After(time.Second, nil))
	assert.Equal(t, 0, s.Advance(-time.Second))
	assert.Equal(t, time.Duration(0), s.Now())
}
