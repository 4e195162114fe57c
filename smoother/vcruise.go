package smoother

import (
	"math"

	"github.com/samber/lo"

	"pfeifer.dev/sccd/car"
	ms "pfeifer.dev/sccd/settings"
)

const (
	LONG_PRESS_TICKS = 70 // hold length before a press becomes a long press

	V_CRUISE_DELTA_KM = 10.
	V_CRUISE_DELTA_MI = 5. * ms.MPH_TO_KPH
)

// ButtonTracker holds the physical press state for the manual set-speed
// adjuster. One instance per control loop; it carries no other state.
type ButtonTracker struct {
	prev        car.ButtonType
	count       int
	longPressed bool
}

func (t *ButtonTracker) Reset() {
	t.prev = car.ButtonTypeUnknown
	t.count = 0
	t.longPressed = false
}

// UpdateVCruise steps the driver-visible set speed from stalk button
// events: a short press nudges by one unit, a long hold snaps to the next
// rounded boundary and keeps stepping by that delta per hold interval.
func (t *ButtonTracker) UpdateVCruise(vCruiseKph float64, events []car.ButtonEvent, enabled bool, metric bool) float64 {
	if !enabled {
		return vCruiseKph
	}

	if t.count > 0 {
		t.count++
	}

	unit := 1.
	if !metric {
		unit = ms.MPH_TO_KPH
	}

	for _, b := range events {
		if b.Pressed && t.count == 0 &&
			(b.Type == car.ButtonTypeAccelCruise || b.Type == car.ButtonTypeDecelCruise) {
			t.count = 1
			t.prev = b.Type
		} else if !b.Pressed && t.count > 0 {
			if !t.longPressed && b.Type == car.ButtonTypeAccelCruise {
				vCruiseKph += unit
			} else if !t.longPressed && b.Type == car.ButtonTypeDecelCruise {
				vCruiseKph -= unit
			}
			t.longPressed = false
			t.count = 0
		}
	}

	if t.count > LONG_PRESS_TICKS {
		t.longPressed = true

		delta := V_CRUISE_DELTA_KM
		if !metric {
			delta = V_CRUISE_DELTA_MI
		}

		if t.prev == car.ButtonTypeAccelCruise {
			vCruiseKph += delta - pyMod(vCruiseKph, delta)
		} else if t.prev == car.ButtonTypeDecelCruise {
			vCruiseKph -= delta - pyMod(-vCruiseKph, delta)
		}
		t.count %= LONG_PRESS_TICKS
	}

	return lo.Clamp(vCruiseKph, MIN_SET_SPEED, MAX_SET_SPEED)
}

// UpdateCruiseButtons is invoked by the outer loop's state transition to
// recompute the visible set speed: the car's own set speed under stock or
// long control, the tracker-adjusted one under smoothing, snapping on
// cruise enable edges.
func UpdateCruiseButtons(controls *Controls, tracker *ButtonTracker, cs *car.State, mode Mode, longControl bool) {
	carSetSpeed := cs.CruiseSetSpeed * ms.MS_TO_KPH
	isCruiseEnabled := carSetSpeed != 0 && carSetSpeed != 255 && cs.CruiseEnabled

	var vCruiseKph float64
	if isCruiseEnabled {
		if longControl || mode == ModeStock {
			vCruiseKph = carSetSpeed
		} else {
			vCruiseKph = tracker.UpdateVCruise(controls.VCruiseKph, cs.ButtonEvents, controls.Enabled, controls.IsMetric)
		}
	}

	if controls.IsCruiseEnabled != isCruiseEnabled {
		controls.IsCruiseEnabled = isCruiseEnabled

		if isCruiseEnabled {
			vCruiseKph = carSetSpeed
		} else {
			vCruiseKph = 0
		}
	}

	controls.VCruiseKph = vCruiseKph
}

// pyMod is a floored modulo. The long-press snapping arithmetic was tuned
// against floored-modulo semantics, which differ from math.Mod for negated
// operands; at an exact multiple the decrement is a full delta.
func pyMod(a float64, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
