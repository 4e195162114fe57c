package smoother

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pfeifer.dev/sccd/car"
)

func TestBlendAccelClosingLead(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	cs.CluSpeed = 80.
	lead := &car.Lead{DRel: 20., VRel: -5.}

	accel, override := s.blendAccel(0.5, &cs, lead)

	// closing fast: the correction term fires and the result brakes
	assert.Less(t, override, 0.)
	assert.Less(t, accel, 0.)
	assert.GreaterOrEqual(t, accel, -LIMIT_DECEL)
}

func TestBlendAccelNoLead(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	cs.CluSpeed = 40.

	accel, override := s.blendAccel(1., &cs, nil)

	// low speed shaping amplifies the baseline up to the clamp
	assert.Equal(t, LIMIT_ACCEL, accel)
	assert.Equal(t, 0., override)
}

func TestBlendAccelClamps(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")
	cs := cruisingState()

	accel, _ := s.blendAccel(-10., &cs, nil)
	assert.Equal(t, -LIMIT_DECEL, accel)

	accel, _ = s.blendAccel(10., &cs, nil)
	assert.Equal(t, LIMIT_ACCEL, accel)
}

func TestBlendAccelSlowTraffic(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	cs := cruisingState()
	cs.CluSpeed = 30.
	// receding lead at moderate range: creep up harder than the baseline
	lead := &car.Lead{DRel: 20., VRel: 1.}

	withLead, _ := s.blendAccel(0.3, &cs, lead)
	without, _ := s.blendAccel(0.3, &cs, nil)

	assert.Greater(t, withLead, without)
}

func TestFusedAccelWeighsStockNearLead(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	// inside 2 m the stock command takes over completely
	fused, dRel := s.FusedAccel(-0.5, -2., &car.Lead{DRel: 2.})
	assert.InDelta(t, -2., fused, 1e-9)
	assert.Equal(t, 2., dRel)

	s.fused.Reset()

	// far away the stock command is ignored
	fused, _ = s.FusedAccel(-0.5, -2., &car.Lead{DRel: 25.})
	assert.InDelta(t, -0.5, fused, 1e-9)
}

func TestFusedAccelAverages(t *testing.T) {
	s := newTestSmoother(t, smoothConfig(), "1")

	s.FusedAccel(-2., 0., nil)
	fused, dRel := s.FusedAccel(1., 0., nil)

	assert.InDelta(t, -0.5, fused, 1e-9)
	assert.Equal(t, 0., dRel)
}
