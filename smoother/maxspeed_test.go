package smoother

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/sccd/car"
)

func TestMaxSpeedDefaultsToSetSpeed(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	controls := Controls{VCruiseKph: 100.}

	// no lead, no limit, straight path: the ceiling is the driver's set speed
	s.calcMaxSpeed(&cs, nil, nil, RoadLimit{}, 10, &controls)
	assert.Equal(t, 100., s.maxSpeed)
}

func TestMaxSpeedCurveLowering(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	cs.CluSpeed = 144. // 40 m/s
	cs.VEgo = 40.
	controls := Controls{VCruiseKph: 140.}

	s.calcMaxSpeed(&cs, nil, circlePath(100.), RoadLimit{}, 10, &controls)
	assert.Less(t, s.maxSpeed, 140.)
	assert.GreaterOrEqual(t, s.maxSpeed, MIN_CURVE_SPEED)
}

func TestMaxSpeedRoadLimit(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	cs.CluSpeed = 80.
	controls := Controls{VCruiseKph: 100.}
	road := RoadLimit{Limit: 60., RoadLimit: 60., FirstStarted: true}

	s.calcMaxSpeed(&cs, nil, nil, road, 10, &controls)
	assert.Equal(t, 60., s.maxSpeed)

	// over the limit: one sound alert, then a persistent visual alert
	var alerts []Alert
	s.InjectEvents(&alerts)
	require.Equal(t, []Alert{AlertSlowingDownSpeedSound}, alerts)

	alerts = alerts[:0]
	s.InjectEvents(&alerts)
	assert.Equal(t, []Alert{AlertSlowingDownSpeed}, alerts)

	// back under the limit clears the alert
	cs.CluSpeed = 55.
	road.FirstStarted = false
	s.calcMaxSpeed(&cs, nil, nil, road, 20, &controls)
	alerts = alerts[:0]
	s.InjectEvents(&alerts)
	assert.Empty(t, alerts)
}

func TestMaxSpeedLimitEndClearsLatch(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	cs.CluSpeed = 80.
	controls := Controls{VCruiseKph: 100.}

	s.calcMaxSpeed(&cs, nil, nil, RoadLimit{Limit: 60., FirstStarted: true}, 10, &controls)
	assert.True(t, s.slowingDown)

	s.calcMaxSpeed(&cs, nil, nil, RoadLimit{}, 20, &controls)
	assert.False(t, s.slowingDown)
	assert.False(t, s.slowingDownAlert)
}

func TestLongLeadSpeedCeiling(t *testing.T) {
	cfg := smoothConfig()
	cfg.LongControl = true
	s := newTestSmoother(t, cfg, "1")

	cs := cruisingState()
	cs.CluSpeed = 100.
	lead := &car.Lead{DRel: 30., VRel: -6.}

	ceiling := s.longLeadSpeed(&cs, lead)
	assert.Less(t, ceiling, 100.)
	assert.GreaterOrEqual(t, ceiling, MIN_SET_SPEED)

	// inactive without long control
	s.cfg.LongControl = false
	assert.Equal(t, 0., s.longLeadSpeed(&cs, lead))
}

func TestUpdateMaxSpeedFilter(t *testing.T) {
	cfg := smoothConfig()
	cfg.LongControl = true
	s := newTestSmoother(t, cfg, "1")

	// first value snaps, later values move by the filter gain
	s.updateMaxSpeed(100.)
	assert.Equal(t, 100., s.maxSpeed)

	s.updateMaxSpeed(50.)
	assert.InDelta(t, 99.5, s.maxSpeed, 1e-9)
}

func TestCalcTargetSpeedGasSync(t *testing.T) {
	cfg := smoothConfig()
	cfg.SyncSetSpeedWhileGasPressed = true
	s := newTestSmoother(t, cfg, "1")
	s.maxSpeed = 110.

	cs := cruisingState()
	cs.CluSpeed = 120.
	cs.GasPressed = true
	controls := Controls{VCruiseKph: 100.}

	s.calcTargetSpeed(5., &cs, &controls)

	// overtaking on the gas pulls the set speed up with the car
	assert.Equal(t, 120., controls.VCruiseKph)
	assert.Equal(t, 110., s.targetSpeed)
}
