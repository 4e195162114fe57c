package smoother

import (
	"math"

	"go.einride.tech/can"

	"pfeifer.dev/sccd/car"
	ms "pfeifer.dev/sccd/settings"
)

// stepButtons advances the press state machine by one tick. At most one
// synthetic frame is appended per tick, only while SENDING. COOLDOWN runs
// down regardless of engagement so a re-engage cannot shorten the pause the
// firmware expects between bursts.
func (s *Smoother) stepButtons(frame uint64, asccEnabled bool, cs *car.State, sends *[]can.Frame) {
	switch s.phase {
	case phaseCooldown:
		if s.cfg.LongControl && s.targetSpeed >= MIN_SET_SPEED {
			// stale target: force a recompute next cycle instead of
			// resending it after the pause
			s.targetSpeed = 0
		}
		s.phaseElapsed++
		if s.phaseElapsed >= s.phaseTarget {
			s.phase = phaseIdle
			s.phaseElapsed = 0
			s.phaseTarget = 0
		}

	case phaseIdle:
		if !asccEnabled {
			if s.cfg.LongControl {
				s.targetSpeed = 0
			}
			return
		}

		btn := s.pickButton(cs.CruiseSetSpeed * ms.MS_TO_KPH)
		if btn == car.ButtonNone {
			if s.cfg.LongControl && s.targetSpeed >= MIN_SET_SPEED {
				s.targetSpeed = 0
			}
			return
		}

		s.phase = phaseSending
		s.activeButton = btn
		s.phaseElapsed = 0
		s.phaseTarget = s.nextAliveCount()
		s.lastSendStart = frame
		fallthrough

	case phaseSending:
		if !asccEnabled {
			return
		}

		*sends = append(*sends, car.CreateCLU11(s.phaseElapsed, cs.CluSpeed, s.activeButton))
		s.phaseElapsed++

		if s.phaseElapsed >= s.phaseTarget {
			s.phase = phaseCooldown
			s.activeButton = car.ButtonNone
			s.phaseElapsed = 0
			s.phaseTarget = s.nextWaitCount()
		}
	}
}

// pickButton maps the target-speed error onto a stalk direction, with a
// dead band so the protocol does not chatter around the target.
func (s *Smoother) pickButton(currentSetSpeed float64) car.Button {
	if s.targetSpeed < MIN_SET_SPEED {
		return car.ButtonNone
	}

	err := s.targetSpeed - currentSetSpeed
	if math.Abs(err) < BUTTON_ERROR_THRESHOLD {
		return car.ButtonNone
	}

	if err > 0 {
		return car.ButtonResAccel
	}
	return car.ButtonSetDecel
}

// IsActive reports whether a press sequence may still be in flight, within
// the longest possible burst plus pause of the last send start.
func (s *Smoother) IsActive(frame uint64) bool {
	return frame-s.lastSendStart <= uint64(maxCount(ALIVE_COUNTS)+maxCount(WAIT_COUNTS))
}

func (s *Smoother) nextAliveCount() uint {
	count := s.aliveSeq[s.aliveIdx]
	s.aliveIdx = (s.aliveIdx + 1) % len(s.aliveSeq)
	return count
}

func (s *Smoother) nextWaitCount() uint {
	count := s.waitSeq[s.waitIdx]
	s.waitIdx = (s.waitIdx + 1) % len(s.waitSeq)
	return count
}
