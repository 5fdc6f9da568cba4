package util

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	t.Parallel()

	center := orb.Point{127.0, 37.5}
	box := BoundingBox(center, 10)

	assert.InDelta(t, 37.5-10/111.0, box.Min.Lat(), 1e-9)
	assert.InDelta(t, 37.5+10/111.0, box.Max.Lat(), 1e-9)

	lngDelta := 10 / (111.0 * math.Cos(37.5*math.Pi/180))
	assert.InDelta(t, 127.0-lngDelta, box.Min.Lon(), 1e-9)
	assert.InDelta(t, 127.0+lngDelta, box.Max.Lon(), 1e-9)

	assert.True(t, box.Contains(center))
	assert.False(t, box.Contains(orb.Point{127.0, 38.5}), "a point one degree north lies outside a 10 km box")
}

func TestHaversineKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from     orb.Point
		to       orb.Point
		expected float64
		delta    float64
	}{
		{name: "same point", from: orb.Point{127.0, 37.5}, to: orb.Point{127.0, 37.5}, expected: 0, delta: 0},
		{name: "one degree of latitude", from: orb.Point{127.0, 37.5}, to: orb.Point{127.0, 38.5}, expected: 111.19, delta: 0.01},
		{name: "seoul to busan", from: orb.Point{126.9780, 37.5665}, to: orb.Point{129.0756, 35.1796}, expected: 325.0, delta: 1.0},
		{name: "symmetric", from: orb.Point{129.0756, 35.1796}, to: orb.Point{126.9780, 37.5665}, expected: 325.0, delta: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, HaversineKm(tt.from, tt.to), tt.delta)
		})
	}
}

func TestHaversineKm_InsideBoxBeyondRadius(t *testing.T) {
	t.Parallel()

	center := orb.Point{127.0, 37.5}
	box := BoundingBox(center, 10)
	corner := orb.Point{box.Max.Lon() - 0.001, box.Max.Lat() - 0.001}

	assert.True(t, box.Contains(corner))
	assert.Greater(t, HaversineKm(center, corner), 10.0)
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCoordinate(37.5, 127.0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}

func TestRound(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 4.0, Round(4.0, 1), 1e-9)
	assert.InDelta(t, 3.7, Round(3.6666, 1), 1e-9)
	assert.InDelta(t, 12.35, Round(12.345001, 2), 1e-9)
	assert.InDelta(t, 0.0, Round(0.004, 2), 1e-9)
}
