package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		points := [][2]float64{
			{-37.8136, 144.9631},
			{-37.7000, 145.1000},
			{-38.1000, 144.5000},
		}
		for _, p := range points {
			assert.Equal(t, 0.0, DistanceKm(p[0], p[1], p[0], p[1]))
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := DistanceKm(-37.8136, 144.9631, -37.8770, 145.0443)
		ba := DistanceKm(-37.8770, 145.0443, -37.8136, 144.9631)
		assert.Equal(t, ab, ba)
	})

	t.Run("melbourne cbd to st kilda", func(t *testing.T) {
		d := DistanceKm(-37.8136, 144.9631, -37.8676, 144.9809)
		assert.InDelta(t, 6.2, d, 0.1)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := DistanceKm(0, 0, 1, 0)
		assert.InDelta(t, earthRadiusKm*math.Pi/180, d, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(-37.8136, 144.9631))
	assert.True(t, ValidateCoordinates(90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, 180.5))
}
