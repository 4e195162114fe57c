package smoother

import (
	"github.com/samber/lo"

	"pfeifer.dev/sccd/car"
	"pfeifer.dev/sccd/num"
	ms "pfeifer.dev/sccd/settings"
)

const (
	// distance knocked off the raw radar range so the math works against
	// usable gap, not bumper-to-sensor distance
	LEAD_DISTANCE_OFFSET = 5.

	// gap-closing window factors, tuned separately for the accel blender
	// and the lead speed ceiling
	GAP_CLOSING_FACTOR_ACCEL = 7.7
	GAP_CLOSING_FACTOR_LEAD  = 9.0
)

// speed-dependent shaping of the baseline command. The stock system
// under-responds at low speed when driven through stalk presses; the
// multiplier compensates, tapering to 1.0 at highway speed.
var (
	accelShapeBP = []float64{0., 30., 38., 50., 51., 60., 100.}
	accelShapeV  = []float64{2.3, 3.4, 3.2, 1.7, 1.65, 1.4, 1.0}

	accelGainBP = []float64{35., 60., 100.}
	accelGainV  = []float64{1.5, 1.25, 1.2}
)

// blendAccel combines the baseline longitudinal command (m/s^2) with a
// lead-gap correction and returns a clamped command in km/h per second,
// plus the raw correction term for diagnostics.
func (s *Smoother) blendAccel(applyAccel float64, cs *car.State, lead *car.Lead) (float64, float64) {
	cruiseGap := lo.Clamp(cs.CruiseGap, 1., 4.)

	overrideAcc := 0.
	opAccel := applyAccel * ms.MS_TO_KPH

	shaped := opAccel * num.Interp(cs.CluSpeed, accelShapeBP, accelShapeV)

	var accel float64
	if lead == nil {
		accel = shaped
	} else {
		d := lead.DRel - LEAD_DISTANCE_OFFSET

		if 0. < d && d < -lead.VRel*(GAP_CLOSING_FACTOR_ACCEL+cruiseGap)*2. && lead.VRel < -1. {
			// closing fast: decelerate proportionally to gap-closing time,
			// anticipating harder than the baseline alone would
			t := d / lead.VRel
			acc := -(lead.VRel / t) * ms.MS_TO_KPH * 1.84
			overrideAcc = acc
			accel = (opAccel + acc) / 2.
		} else if lead.DRel > 12. && lead.DRel < 40. && cs.CluSpeed < 15.*ms.MS_TO_KPH {
			accel = opAccel * 3.8
		} else {
			accel = shaped
		}
	}

	if accel > 0. {
		accel *= s.cfg.AccelGain * num.Interp(cs.CluSpeed, accelGainBP, accelGainV)
	} else {
		accel *= s.cfg.DecelGain * 1.8
	}

	return lo.Clamp(accel, -LIMIT_DECEL, LIMIT_ACCEL), overrideAcc
}

// FusedAccel damps oscillation near a lead: when both this command and the
// stock command are braking, the stock command is weighted in by proximity
// (fully stock inside ~2 m, fully ours beyond ~25 m), then averaged over a
// short window. Returns the fused command and the lead distance used.
func (s *Smoother) FusedAccel(applyAccel float64, stockAccel float64, lead *car.Lead) (float64, float64) {
	dRel := 0.
	if lead != nil {
		dRel = lead.DRel

		if stockAccel < applyAccel && applyAccel < -0.1 {
			stockWeight := num.Interp(dRel, []float64{2., 25.}, []float64{1., 0.})
			applyAccel = applyAccel*(1.-stockWeight) + stockAccel*stockWeight
		}
	}

	s.fused.Push(applyAccel)
	return s.fused.Mean(), dRel
}
