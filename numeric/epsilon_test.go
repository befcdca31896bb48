package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatEquals(t *testing.T) {
	tests := map[string]struct {
		a, b, epsilon float64
		expected      bool
	}{
		"exactly equal":           {1.5, 1.5, 1e-10, true},
		"within epsilon":          {1.0, 1.0 + 1e-11, 1e-10, true},
		"outside epsilon":         {1.0, 1.0 + 1e-9, 1e-10, false},
		"negative values":         {-2.5, -2.5 - 1e-12, 1e-10, true},
		"zero epsilon exact only": {1.0, 1.0, 0, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FloatEquals(tc.a, tc.b, tc.epsilon))
		})
	}
}

func TestFloatComparisons(t *testing.T) {
	epsilon := 1e-10

	t.Run("greater than", func(t *testing.T) {
		assert.True(t, FloatGreaterThan(2.0, 1.0, epsilon))
		assert.False(t, FloatGreaterThan(1.0, 1.0+1e-12, epsilon), "within epsilon is not greater")
		assert.False(t, FloatGreaterThan(1.0, 2.0, epsilon))
	})

	t.Run("greater than or equal", func(t *testing.T) {
		assert.True(t, FloatGreaterThanOrEqualTo(2.0, 1.0, epsilon))
		assert.True(t, FloatGreaterThanOrEqualTo(1.0, 1.0+1e-12, epsilon))
		assert.False(t, FloatGreaterThanOrEqualTo(1.0, 2.0, epsilon))
	})

	t.Run("less than", func(t *testing.T) {
		assert.True(t, FloatLessThan(1.0, 2.0, epsilon))
		assert.False(t, FloatLessThan(1.0+1e-12, 1.0, epsilon), "within epsilon is not less")
		assert.False(t, FloatLessThan(2.0, 1.0, epsilon))
	})

	t.Run("less than or equal", func(t *testing.T) {
		assert.True(t, FloatLessThanOrEqualTo(1.0, 2.0, epsilon))
		assert.True(t, FloatLessThanOrEqualTo(1.0+1e-12, 1.0, epsilon))
		assert.False(t, FloatLessThanOrEqualTo(2.0, 1.0, epsilon))
	})

	t.Run("is zero", func(t *testing.T) {
		assert.True(t, FloatIsZero(0, epsilon))
		assert.True(t, FloatIsZero(1e-12, epsilon))
		assert.False(t, FloatIsZero(1e-9, epsilon))
	})
}

func TestSnapToEpsilon(t *testing.T) {
	tests := map[string]struct {
		value, epsilon float64
		expected       float64
	}{
		"snaps up":        {0.9999999999999, 1e-10, 1.0},
		"snaps down":      {2.0000000000001, 1e-10, 2.0},
		"no snap needed":  {2.5, 1e-10, 2.5},
		"already integer": {3.0, 1e-10, 3.0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SnapToEpsilon(tc.value, tc.epsilon))
		})
	}
}

func TestGetSetEpsilon(t *testing.T) {
	original := GetEpsilon()
	defer SetEpsilon(original)

	assert.Equal(t, DefaultEpsilon, original)

	SetEpsilon(1e-6)
	assert.Equal(t, 1e-6, GetEpsilon())

	SetEpsilon(-1)
	assert.Equal(t, 0.0, GetEpsilon(), "negative epsilon defaults to exact comparisons")
}
