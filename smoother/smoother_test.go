package smoother

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.einride.tech/can"

	"pfeifer.dev/sccd/car"
	ms "pfeifer.dev/sccd/settings"
)

type memStore struct {
	m map[string][]byte
}

func newMemStore(mode string) *memStore {
	return &memStore{m: map[string][]byte{CruiseStateParam: []byte(mode)}}
}

func (s *memStore) Get(name string) ([]byte, error) {
	data, ok := s.m[name]
	if !ok {
		return nil, assert.AnError
	}
	return data, nil
}

func (s *memStore) Put(name string, data []byte) error {
	s.m[name] = data
	return nil
}

func newTestSmoother(t *testing.T, cfg Config, mode string) *Smoother {
	t.Helper()
	s, err := New(cfg, newMemStore(mode))
	require.NoError(t, err)
	return s
}

func smoothConfig() Config {
	return Config{
		AccelGain:     1.,
		DecelGain:     1.,
		CurvatureGain: 1.,
		Enabled:       true,
		SlowOnCurves:  true,
	}
}

func TestNewReadsPersistedMode(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")
	assert.Equal(t, ModeSmooth, s.Mode())

	s = newTestSmoother(t, smoothConfig(), "0")
	assert.Equal(t, ModeStock, s.Mode())

	// out of range falls back to stock instead of failing
	s = newTestSmoother(t, smoothConfig(), "7")
	assert.Equal(t, ModeStock, s.Mode())
}

func TestNewFailsWithoutMode(t *testing.T) {
	_, err := New(smoothConfig(), &memStore{m: map[string][]byte{}})
	assert.Error(t, err)

	_, err = New(smoothConfig(), newMemStore("not a number"))
	assert.Error(t, err)
}

func cruisingState() car.State {
	return car.State{
		CluSpeed:       60.,
		VEgo:           60. * ms.KPH_TO_MS,
		CruiseSetSpeed: 40. * ms.KPH_TO_MS,
		CruiseGap:      2.,
		CruiseEnabled:  true,
		AccMode:        true,
	}
}

func TestUpdateDisabledSendsNothing(t *testing.T) {
	cfg := smoothConfig()
	cfg.Enabled = false
	s := newTestSmoother(t, cfg, "1")
	s.targetSpeed = 50.

	cs := cruisingState()
	controls := Controls{IsMetric: true, VCruiseKph: 100.}
	var sends []can.Frame

	s.Update(true, &sends, &cs, nil, nil, RoadLimit{}, 10, 1., &controls)

	assert.Empty(t, sends)
	assert.Equal(t, 0., s.targetSpeed)
}

func TestUpdateStockModeHoldsOff(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "0")

	cs := cruisingState()
	controls := Controls{IsMetric: true, VCruiseKph: 100.}
	var sends []can.Frame

	s.Update(true, &sends, &cs, nil, nil, RoadLimit{}, 10, 1., &controls)

	assert.Empty(t, sends)
	assert.Equal(t, phaseCooldown, s.phase)
	assert.Equal(t, maxCount(ALIVE_COUNTS)+maxCount(WAIT_COUNTS), s.phaseTarget)
}

func TestUpdateSmoothModePressesUp(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	controls := Controls{IsMetric: true, Enabled: true, VCruiseKph: 100.}
	var sends []can.Frame

	s.Update(true, &sends, &cs, nil, nil, RoadLimit{}, 10, 1., &controls)

	// driving above the displayed set speed with headroom: press up
	require.Len(t, sends, 1)
	assert.Equal(t, car.ButtonResAccel, car.CLU11Button(sends[0]))
	assert.Equal(t, uint(0), car.CLU11AliveCounter(sends[0]))

	assert.Equal(t, ModeSmooth, controls.Out.Mode)
	assert.InDelta(t, 40., controls.CruiseVirtualMaxSpeed, 1e-9)
	assert.Equal(t, 100., controls.Out.CruiseRealMaxSpeed)
}

func TestUpdateLongControlForcesStock(t *testing.T) {
	cfg := smoothConfig()
	cfg.LongControl = true
	s := newTestSmoother(t, cfg, "1")

	cs := cruisingState()
	controls := Controls{IsMetric: true, VCruiseKph: 100.}
	var sends []can.Frame

	s.Update(true, &sends, &cs, nil, nil, RoadLimit{}, 10, 1., &controls)

	assert.Equal(t, ModeStock, s.Mode())
	assert.Equal(t, ModeStock, controls.Out.Mode)
}
