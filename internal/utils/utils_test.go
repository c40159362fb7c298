package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGService_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	a.Reseed(7)
	first := a.Intn(1000)
	a.Reseed(7)
	assert.Equal(t, first, a.Intn(1000))
	assert.Equal(t, int64(7), a.Seed())
}

func TestPRNGService_Chance(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 50; i++ {
		assert.False(t, s.Chance(0))
		assert.True(t, s.Chance(1))
	}
}

func TestMathHelpers(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, math.Pi/2, AngleBetween(0, 0, 0, 10), 1e-9)
}

func TestCoords(t *testing.T) {
	x, y := ScreenToWorld(100, 164, 64)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 100.0, y)
	sx, sy := WorldToScreen(x, y, 64)
	assert.Equal(t, 100.0, sx)
	assert.Equal(t, 164.0, sy)

	assert.True(t, PointInRect(5, 5, 0, 0, 10, 10))
	assert.False(t, PointInRect(10, 5, 0, 0, 10, 10))
	assert.True(t, PointInCircle(3, 4, 0, 0, 5))
	assert.False(t, PointInCircle(4, 4, 0, 0, 5))
}
