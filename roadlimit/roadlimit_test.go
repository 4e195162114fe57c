package roadlimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSignalFirstStartedEdge(t *testing.T) {
	l := &Limiter{}

	road := l.fromSignal(60., 60., 150.)
	assert.Equal(t, 60., road.Limit)
	assert.True(t, road.FirstStarted)

	// same limit again: no edge
	road = l.fromSignal(60., 60., 120.)
	assert.False(t, road.FirstStarted)

	// a new limit fires the edge again
	road = l.fromSignal(80., 80., 400.)
	assert.True(t, road.FirstStarted)
}

func TestFromSignalIgnoresLowLimits(t *testing.T) {
	l := &Limiter{}

	road := l.fromSignal(20., 20., 50.)
	assert.False(t, road.FirstStarted)
	assert.Equal(t, 20., road.Limit)
}
