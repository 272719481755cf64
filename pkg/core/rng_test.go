package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(10), b.IntN(10))
	}
}

func TestIntNRange(t *testing.T) {
	r := ForSeed(0)
	for i := 0; i < 1000; i++ {
		v := r.IntN(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
	assert.Zero(t, r.IntN(0))
}

func TestForSeed(t *testing.T) {
	a, b := ForSeed(9), NewRNG(9)
	assert.Equal(t, a.Source().Uint64(), b.Source().Uint64())
}
