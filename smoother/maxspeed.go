package smoother

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"pfeifer.dev/sccd/car"
	ms "pfeifer.dev/sccd/settings"
)

// calcMaxSpeed merges the curvature estimate, the lead-implied ceiling and
// the advisory road limit into the smoothed working ceiling, and maintains
// the slowing-down latch. Returns the diagnostic log line.
func (s *Smoother) calcMaxSpeed(cs *car.State, lead *car.Lead, path *Polyline,
	road RoadLimit, frame uint64, controls *Controls) string {

	s.calcCurveSpeed(path, cs.CluSpeed*ms.KPH_TO_MS, frame)

	maxSpeed := controls.VCruiseKph
	if s.cfg.SlowOnCurves && s.curveSpeed >= MIN_CURVE_SPEED {
		maxSpeed = math.Min(maxSpeed, s.curveSpeed)
	}

	maxSpeedLog := fmt.Sprintf("%.1f/%.1f", road.Limit, cs.CluSpeed)

	leadSpeed := s.longLeadSpeed(cs, lead)
	if leadSpeed >= MIN_SET_SPEED {
		maxSpeed = math.Min(maxSpeed, leadSpeed)
	}

	if road.Limit >= ROAD_LIMIT_MIN_SPEED {
		if road.FirstStarted {
			s.maxSpeed = cs.CluSpeed
		}

		maxSpeed = math.Min(maxSpeed, road.Limit)

		if cs.CluSpeed > road.Limit {
			if !s.slowingDownAlert && !s.slowingDown {
				s.slowingDownSoundAlert = true
				s.slowingDown = true
			}
			s.slowingDownAlert = true
		} else {
			s.slowingDownAlert = false
		}
	} else {
		s.slowingDownAlert = false
		s.slowingDown = false
	}

	s.updateMaxSpeed(math.Round(maxSpeed))

	return maxSpeedLog
}

// longLeadSpeed derives a set-speed ceiling from a rapidly closing lead.
// Returns 0 when inactive. Only meaningful under long control with the
// feature enabled; the button path handles leads through blendAccel.
func (s *Smoother) longLeadSpeed(cs *car.State, lead *car.Lead) float64 {
	if !s.cfg.LongControl || !s.cfg.Enabled || lead == nil {
		return 0
	}

	d := lead.DRel - LEAD_DISTANCE_OFFSET
	cruiseGap := lo.Clamp(cs.CruiseGap, 1., 4.)

	if 0. < d && d < -lead.VRel*(GAP_CLOSING_FACTOR_LEAD+cruiseGap)*2. && lead.VRel < -1. {
		t := d / lead.VRel
		accel := -(lead.VRel / t) * ms.MS_TO_KPH
		accel *= s.cfg.DecelGain * 1.6

		if accel < 0. {
			return math.Max(cs.CluSpeed+accel, MIN_SET_SPEED)
		}
	}

	return 0
}

// updateMaxSpeed filters the working ceiling into the persisted maximum so
// the set speed never has to jump by an implausible burst of presses.
func (s *Smoother) updateMaxSpeed(maxSpeed float64) {
	if !s.cfg.LongControl || s.maxSpeed <= 0 {
		s.maxSpeed = maxSpeed
	} else {
		s.maxSpeed += (maxSpeed - s.maxSpeed) * MAX_SPEED_KP
	}
}

// calcTargetSpeed derives the speed the button protocol should steer the
// displayed set speed toward, bounded by the working ceiling.
func (s *Smoother) calcTargetSpeed(accel float64, cs *car.State, controls *Controls) {
	if !s.cfg.LongControl {
		if cs.GasPressed {
			s.targetSpeed = cs.CluSpeed
			if cs.CluSpeed > controls.VCruiseKph && s.cfg.SyncSetSpeedWhileGasPressed {
				controls.VCruiseKph = lo.Clamp(cs.CluSpeed, MIN_SET_SPEED, MAX_SET_SPEED)
			}
		} else {
			s.targetSpeed = cs.CluSpeed + accel
		}

		s.targetSpeed = lo.Clamp(s.targetSpeed, MIN_SET_SPEED, s.maxSpeed)
	} else {
		if cs.GasPressed && cs.CruiseEnabled &&
			cs.CluSpeed+2. > controls.VCruiseKph && s.cfg.SyncSetSpeedWhileGasPressed {
			s.targetSpeed = lo.Clamp(cs.CluSpeed+2., MIN_SET_SPEED, MAX_SET_SPEED)
		}
	}
}
