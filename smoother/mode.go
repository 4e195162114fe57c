package smoother

import (
	"log/slog"
	"strconv"

	"pfeifer.dev/sccd/car"
)

// dispatchButtons toggles between STOCK and SMOOTH on a rising edge of the
// designated stalk button while cruise is disengaged: GAP always toggles,
// CANCEL only when the gap-only restriction is off. The new mode is
// persisted immediately so a restart comes back in the driver's last choice.
func (s *Smoother) dispatchButtons(cs *car.State, controls *Controls) bool {
	changed := false

	if s.lastCruiseButtons != cs.CruiseButtons {
		s.lastCruiseButtons = cs.CruiseButtons

		if !cs.CruiseEnabled {
			if (!s.cfg.SwitchOnlyWithGapButton && cs.CruiseButtons == car.ButtonCancel) ||
				cs.CruiseButtons == car.ButtonGapDist {
				s.mode++
				if s.mode >= modeCount {
					s.mode = ModeStock
				}

				if err := s.store.Put(CruiseStateParam, []byte(strconv.Itoa(int(s.mode)))); err != nil {
					slog.Warn("could not persist cruise mode", "error", err)
				}
				s.modeChangedAlert = true
				changed = true
			}
		}
	}

	controls.Out.Mode = s.mode
	return changed
}
