package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTweener_LinearMove(t *testing.T) {
	tw := NewTweener()
	var x, y float64
	started, completed := 0, 0
	tw.Add(Move{
		Owner: 1, FromX: 0, FromY: 0, ToX: 100, ToY: 50,
		Duration:   time.Second,
		OnStart:    func() { started++ },
		OnUpdate:   func(nx, ny float64) { x, y = nx, ny },
		OnComplete: func() { completed++ },
	})

	tw.Update(250 * time.Millisecond)
	assert.InDelta(t, 25.0, x, 1e-9)
	assert.InDelta(t, 12.5, y, 1e-9)
	assert.Equal(t, 1, started)
	assert.Equal(t, 0, completed)

	tw.Update(time.Second)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, tw.Active())

	tw.Update(time.Second)
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, completed)
}

func TestTweener_ZeroDurationCompletesImmediately(t *testing.T) {
	tw := NewTweener()
	done := false
	var x float64
	tw.Add(Move{ToX: 7, OnUpdate: func(nx, _ float64) { x = nx }, OnComplete: func() { done = true }})
	tw.Update(0)
	assert.True(t, done)
	assert.Equal(t, 7.0, x)
}

func TestTweener_CancelOwnerSkipsCompletion(t *testing.T) {
	tw := NewTweener()
	tw.Add(Move{Owner: 5, Duration: time.Second, OnComplete: func() { t.Fatal("cancelled tween completed") }})
	other := 0
	h := tw.Add(Move{Owner: 6, Duration: time.Second, OnComplete: func() { other++ }})

	assert.Equal(t, 1, tw.CancelOwner(5))
	assert.Equal(t, 1, tw.Active())
	tw.Update(2 * time.Second)
	assert.Equal(t, 1, other)
	assert.False(t, tw.Cancel(h))
}

func TestTweener_ChainFromCompletion(t *testing.T) {
	tw := NewTweener()
	hops := 0
	var hop func()
	hop = func() {
		hops++
		if hops < 3 {
			tw.Add(Move{Duration: 100 * time.Millisecond, OnComplete: hop})
		}
	}
	tw.Add(Move{Duration: 100 * time.Millisecond, OnComplete: hop})

	tw.Update(time.Second)
	assert.Equal(t, 1, hops, "a tween added during Update waits for the next one")
	tw.Update(time.Second)
	tw.Update(time.Second)
	assert.Equal(t, 3, hops)
	assert.Equal(t, 0, tw.Active())
}

func TestTweener_CompletesOnExactFrame(t *testing.T) {
	tw := NewTweener()
	var x float64
	frames, completedAt := 0, 0
	tw.Add(Move{
		FromX: 32, ToX: 96, Duration: time.Second,
		OnUpdate:   func(nx, _ float64) { x = nx },
		OnComplete: func() { completedAt = frames },
	})

	for frames = 1; frames <= 120 && completedAt == 0; frames++ {
		tw.Update(10 * time.Millisecond)
		if frames == 50 {
			assert.InDelta(t, 64.0, x, 1e-3)
		}
	}
	assert.Equal(t, 100, completedAt)
	assert.Equal(t, 96.0, x)
}
