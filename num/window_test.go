package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowPartialFill(t *testing.T) {
	w := Window{}
	w.Init(3)

	assert.Equal(t, 0., w.Mean())

	w.Push(3.)
	assert.Equal(t, 3., w.Mean())

	w.Push(5.)
	assert.InDelta(t, 4., w.Mean(), 1e-12)
}

func TestWindowEviction(t *testing.T) {
	w := Window{}
	w.Init(3)

	for _, v := range []float64{1., 2., 3., 10.} {
		w.Push(v)
	}

	assert.Equal(t, 3, w.Len())
	assert.InDelta(t, 5., w.Mean(), 1e-12)

	w.Reset()
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0., w.Mean())
}
