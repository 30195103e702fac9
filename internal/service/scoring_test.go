package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSuccessWithinOpenUnitInterval(t *testing.T) {
	for _, a := range []float64{0.6, 1.0, 1.8} {
		for _, b := range []float64{-2, 0, 2} {
			for theta := -3.0; theta <= 3.0; theta += 0.5 {
				p := PSuccess(a, b, theta)
				assert.Greater(t, p, 0.0, "a=%v b=%v theta=%v", a, b, theta)
				assert.Less(t, p, 1.0, "a=%v b=%v theta=%v", a, b, theta)
			}
		}
	}
}

func TestPSuccessStrictlyIncreasingInTheta(t *testing.T) {
	prev := PSuccess(1.2, 0.3, -3.0)
	for theta := -2.75; theta <= 3.0; theta += 0.25 {
		p := PSuccess(1.2, 0.3, theta)
		require.Greater(t, p, prev, "theta=%v", theta)
		prev = p
	}
}

func TestPSuccessHalfAtDifficulty(t *testing.T) {
	for _, b := range []float64{-2.5, -0.7, 0, 1.3, 2.5} {
		assert.InDelta(t, 0.5, PSuccess(1.0, b, b), 1e-12)
	}
}

func TestPSuccessStableForExtremeInputs(t *testing.T) {
	// 截断指数后极端输入也不会溢出或恰好到达 0/1
	p := PSuccess(1000, -1000, 1000)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)

	p = PSuccess(1000, 1000, -1000)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}
