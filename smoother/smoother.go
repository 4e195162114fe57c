package smoother

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.einride.tech/can"

	"pfeifer.dev/sccd/car"
	"pfeifer.dev/sccd/num"
	ms "pfeifer.dev/sccd/settings"
)

const (
	MIN_SET_SPEED = 30.  // km/h, lowest speed the stalk can set
	MAX_SET_SPEED = 160. // km/h

	LIMIT_ACCEL = 10. // km/h per s, upper clamp on the blended command
	LIMIT_DECEL = 18. // km/h per s, lower clamp magnitude

	MIN_CURVE_SPEED      = 32.  // km/h
	CURVE_SPEED_NO_LIMIT = 300. // km/h sentinel for "no curvature limit"

	TRAJECTORY_SIZE = 33 // samples in the forward path polyline

	ROAD_LIMIT_MIN_SPEED = 30. // km/h, advisory limits below this are noise

	BUTTON_ERROR_THRESHOLD = 0.9  // km/h, dead band before pressing
	MAX_SPEED_KP           = 0.01 // per tick, ceiling smoothing gain

	FUSED_ACCEL_WINDOW = 3
)

// Press burst and pause lengths in ticks. The firmware expects bursts in
// this range; the pause set is shuffled once at startup so the cadence does
// not repeat a fixed pattern.
var (
	ALIVE_COUNTS = []uint{6, 8}
	WAIT_COUNTS  = []uint{12, 13, 14, 15, 16}
)

type Mode int

const (
	ModeStock Mode = iota
	ModeSmooth
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeStock:
		return "stock"
	case ModeSmooth:
		return "smooth"
	}
	return "unknown"
}

type Alert int

const (
	AlertModeChanged Alert = iota
	AlertSlowingDownSpeed
	AlertSlowingDownSpeedSound
)

// Config carries the construction-time gains and feature flags, read from
// the settings param by the daemon before the smoother is built.
type Config struct {
	AccelGain     float64
	DecelGain     float64
	CurvatureGain float64

	Enabled                     bool
	SlowOnCurves                bool
	SyncSetSpeedWhileGasPressed bool
	SwitchOnlyWithGapButton     bool
	LongControl                 bool
}

// Polyline is the forward driving path in vehicle frame, x longitudinal and
// y lateral, meters. Stale or truncated model output shows up as a length
// mismatch and is rejected by the curvature estimator.
type Polyline struct {
	X []float64
	Y []float64
}

// RoadLimit is the externally supplied advisory speed limit signal.
type RoadLimit struct {
	Limit        float64 // km/h, active limit, 0 when none
	RoadLimit    float64 // km/h, raw posted limit for display
	LeftDist     float64 // m to the point where the limit applies
	FirstStarted bool    // true on the first tick a new limit is active
}

// Output is what the smoother reports back to the outer loop each tick.
type Output struct {
	Mode                  Mode
	LongControl           bool
	CruiseVirtualMaxSpeed float64
	CruiseRealMaxSpeed    float64
	RoadLimitSpeed        float64
	RoadLimitLeftDist     float64
	LogMessage            string
}

// Controls is the outer loop's mutable control context.
type Controls struct {
	Enabled         bool // openpilot engaged
	IsMetric        bool
	IsCruiseEnabled bool
	VCruiseKph      float64

	CruiseVirtualMaxSpeed float64
	Out                   Output
}

type buttonPhase int

const (
	phaseIdle buttonPhase = iota
	phaseSending
	phaseCooldown
)

// Smoother owns all mutable state across ticks. It is mutated exactly once
// per tick by Update and is not safe for concurrent use; the daemon loop is
// the only writer.
type Smoother struct {
	cfg   Config
	store Store
	mode  Mode

	lastCruiseButtons car.Button

	targetSpeed float64
	maxSpeed    float64
	curveSpeed  float64

	slowingDown           bool
	slowingDownAlert      bool
	slowingDownSoundAlert bool
	modeChangedAlert      bool

	fused num.Window

	phase         buttonPhase
	activeButton  car.Button
	phaseElapsed  uint
	phaseTarget   uint
	lastSendStart uint64

	aliveSeq []uint
	waitSeq  []uint
	aliveIdx int
	waitIdx  int
}

// New reads the persisted mode from the store. A failed read is fatal: the
// daemon must not guess which mode the driver left the car in.
func New(cfg Config, store Store) (*Smoother, error) {
	data, err := store.Get(CruiseStateParam)
	if err != nil {
		return nil, errors.Wrap(err, "could not read persisted cruise mode")
	}
	modeVal, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.Wrap(err, "invalid persisted cruise mode")
	}
	if modeVal < 0 || modeVal >= int(modeCount) {
		modeVal = int(ModeStock)
	}

	s := &Smoother{
		cfg:   cfg,
		store: store,
		mode:  Mode(modeVal),
	}
	s.aliveSeq = append([]uint(nil), ALIVE_COUNTS...)
	s.waitSeq = append([]uint(nil), WAIT_COUNTS...)
	rand.Shuffle(len(s.waitSeq), func(i, j int) {
		s.waitSeq[i], s.waitSeq[j] = s.waitSeq[j], s.waitSeq[i]
	})
	s.fused.Init(FUSED_ACCEL_WINDOW)
	return s, nil
}

func (s *Smoother) Mode() Mode {
	return s.mode
}

// Reset clears all transient state. Called whenever the feature is disabled,
// the mode toggles, or adaptive cruise drops out.
func (s *Smoother) Reset() {
	s.phase = phaseIdle
	s.activeButton = car.ButtonNone
	s.phaseElapsed = 0
	s.phaseTarget = 0
	s.targetSpeed = 0

	s.maxSpeed = 0
	s.curveSpeed = 0

	s.fused.Reset()

	s.slowingDown = false
	s.slowingDownAlert = false
	s.slowingDownSoundAlert = false
}

// Update runs one control tick: aggregate the speed ceiling, blend the
// acceleration command, derive the target speed and step the button
// protocol, appending at most one synthetic frame to sends.
func (s *Smoother) Update(enabled bool, sends *[]can.Frame, cs *car.State, lead *car.Lead,
	path *Polyline, road RoadLimit, frame uint64, applyAccel float64, controls *Controls) {

	maxSpeedLog := s.calcMaxSpeed(cs, lead, path, road, frame, controls)
	controls.Out.RoadLimitSpeed = road.RoadLimit
	controls.Out.RoadLimitLeftDist = road.LeftDist

	controls.CruiseVirtualMaxSpeed = lo.Clamp(cs.CruiseSetSpeed*ms.MS_TO_KPH, MIN_SET_SPEED, s.maxSpeed)
	controls.Out.LongControl = s.cfg.LongControl
	controls.Out.CruiseVirtualMaxSpeed = controls.CruiseVirtualMaxSpeed
	controls.Out.CruiseRealMaxSpeed = controls.VCruiseKph
	controls.Out.Mode = s.mode

	asccEnabled := cs.AccMode && enabled && cs.CruiseEnabled &&
		cs.CruiseSetSpeed > 1 && cs.CruiseSetSpeed < 255 && !cs.BrakePressed

	var accel float64
	if !s.cfg.LongControl {
		if !s.cfg.Enabled {
			s.Reset()
			return
		}

		if s.dispatchButtons(cs, controls) {
			s.Reset()
			return
		}

		if s.mode == ModeStock || !asccEnabled || cs.Standstill || cs.CruiseButtons != car.ButtonNone {
			controls.Out.LogMessage = maxSpeedLog
			s.Reset()
			// hold off long enough that a resumed sequence cannot collide
			// with presses the firmware may still be registering
			s.phase = phaseCooldown
			s.phaseTarget = maxCount(ALIVE_COUNTS) + maxCount(WAIT_COUNTS)
			return
		}

		accel, _ = s.blendAccel(applyAccel, cs, lead)
	} else {
		accel = 0
		s.mode = ModeStock
		controls.Out.Mode = s.mode

		if !asccEnabled {
			s.Reset()
		}
	}

	s.calcTargetSpeed(accel, cs, controls)
	controls.Out.LogMessage = maxSpeedLog

	s.stepButtons(frame, asccEnabled, cs, sends)
}

// InjectEvents appends pending alerts: the one-shot mode change, and either
// the one-shot sound alert or the persistent visual alert while slowing
// down for a limit.
func (s *Smoother) InjectEvents(alerts *[]Alert) {
	if s.modeChangedAlert {
		s.modeChangedAlert = false
		*alerts = append(*alerts, AlertModeChanged)
	}

	if s.slowingDownSoundAlert {
		s.slowingDownSoundAlert = false
		*alerts = append(*alerts, AlertSlowingDownSpeedSound)
	} else if s.slowingDownAlert {
		*alerts = append(*alerts, AlertSlowingDownSpeed)
	}
}

func maxCount(counts []uint) uint {
	m := uint(0)
	for _, c := range counts {
		if c > m {
			m = c
		}
	}
	return m
}
