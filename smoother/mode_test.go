package smoother

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/sccd/car"
)

func TestModeToggleOnGapButton(t *testing.T) {
	store := newMemStore("0")
	s, err := New(smoothConfig(), store)
	require.NoError(t, err)

	cs := car.State{CruiseButtons: car.ButtonGapDist}
	controls := Controls{}

	changed := s.dispatchButtons(&cs, &controls)
	assert.True(t, changed)
	assert.Equal(t, ModeSmooth, s.Mode())
	assert.Equal(t, ModeSmooth, controls.Out.Mode)

	// persisted immediately
	data, err := store.Get(CruiseStateParam)
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))

	// exactly one alert per toggle
	var alerts []Alert
	s.InjectEvents(&alerts)
	require.Equal(t, []Alert{AlertModeChanged}, alerts)
	alerts = alerts[:0]
	s.InjectEvents(&alerts)
	assert.Empty(t, alerts)
}

func TestModeToggleNeedsEdge(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "0")

	cs := car.State{CruiseButtons: car.ButtonGapDist}
	controls := Controls{}

	assert.True(t, s.dispatchButtons(&cs, &controls))
	// held button: no second toggle until released and pressed again
	assert.False(t, s.dispatchButtons(&cs, &controls))
	assert.Equal(t, ModeSmooth, s.Mode())

	cs.CruiseButtons = car.ButtonNone
	assert.False(t, s.dispatchButtons(&cs, &controls))
	cs.CruiseButtons = car.ButtonGapDist
	assert.True(t, s.dispatchButtons(&cs, &controls))
	assert.Equal(t, ModeStock, s.Mode())
}

func TestModeToggleBlockedWhileEngaged(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "0")

	cs := car.State{CruiseButtons: car.ButtonGapDist, CruiseEnabled: true}
	controls := Controls{}

	assert.False(t, s.dispatchButtons(&cs, &controls))
	assert.Equal(t, ModeStock, s.Mode())
}

func TestModeToggleCancelRestriction(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "0")

	cs := car.State{CruiseButtons: car.ButtonCancel}
	controls := Controls{}
	assert.True(t, s.dispatchButtons(&cs, &controls))

	cfg := smoothConfig()
	cfg.SwitchOnlyWithGapButton = true
	s = newTestSmoother(t, cfg, "0")
	assert.False(t, s.dispatchButtons(&cs, &controls))
	assert.Equal(t, ModeStock, s.Mode())
}
