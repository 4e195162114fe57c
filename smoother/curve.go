package smoother

import (
	"math"

	"github.com/samber/lo"

	"pfeifer.dev/sccd/num"
	ms "pfeifer.dev/sccd/settings"
)

const (
	CURVE_EVAL_PERIOD = 10   // ticks between polyline evaluations
	CURVE_EPSILON     = 1e-4 // 1/m, curvature floor before the sqrt

	// samples at both ends of the polyline carry little curvature
	// confidence and are discarded
	curveSkipHead = 5
	curveSkipTail = 10
)

// calcCurveSpeed derives a safe cornering speed from the forward path
// polyline, re-evaluated every CURVE_EVAL_PERIOD ticks and held in between.
// Anything that cannot be trusted (wrong sample count, NaN) falls back to
// the no-limit sentinel. vEgo is in m/s, the cached result in km/h.
func (s *Smoother) calcCurveSpeed(path *Polyline, vEgo float64, frame uint64) {
	if frame%CURVE_EVAL_PERIOD != 0 {
		return
	}

	if path == nil || len(path.X) != TRAJECTORY_SIZE || len(path.Y) != TRAJECTORY_SIZE {
		s.curveSpeed = CURVE_SPEED_NO_LIMIT
		return
	}

	dy := num.Gradient(path.Y, path.X)
	d2y := num.Gradient(dy, path.X)

	// lateral acceleration budget shrinks with speed: ~2.6 m/s^2 around
	// town, ~1.85 m/s^2 at highway speed
	aYMax := 2.975 - vEgo*0.0375

	speeds := make([]float64, 0, TRAJECTORY_SIZE-curveSkipHead-curveSkipTail)
	for i := curveSkipHead; i < TRAJECTORY_SIZE-curveSkipTail; i++ {
		curv := d2y[i] / math.Pow(1+dy[i]*dy[i], 1.5)
		curv = math.Max(math.Abs(curv), CURVE_EPSILON)
		speeds = append(speeds, math.Sqrt(aYMax/curv))
	}

	modelSpeed := lo.Mean(speeds) * 0.9 * s.cfg.CurvatureGain

	if modelSpeed < vEgo {
		s.curveSpeed = math.Max(modelSpeed*ms.MS_TO_KPH, MIN_CURVE_SPEED)
	} else {
		s.curveSpeed = CURVE_SPEED_NO_LIMIT
	}

	if math.IsNaN(s.curveSpeed) {
		s.curveSpeed = CURVE_SPEED_NO_LIMIT
	}
}
