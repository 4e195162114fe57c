package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterp(t *testing.T) {
	xs := []float64{0., 30., 100.}
	ys := []float64{2., 3., 1.}

	assert.Equal(t, 2., Interp(-10., xs, ys))
	assert.Equal(t, 2., Interp(0., xs, ys))
	assert.InDelta(t, 2.5, Interp(15., xs, ys), 1e-12)
	assert.Equal(t, 3., Interp(30., xs, ys))
	assert.InDelta(t, 2., Interp(65., xs, ys), 1e-12)
	assert.Equal(t, 1., Interp(100., xs, ys))
	assert.Equal(t, 1., Interp(250., xs, ys))
}

func TestInterpDegenerate(t *testing.T) {
	assert.Equal(t, 0., Interp(1., nil, nil))
	assert.Equal(t, 5., Interp(7., []float64{3.}, []float64{5.}))
}
