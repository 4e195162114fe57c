package roadlimit

import (
	"pfeifer.dev/sccd/cereal"
	"pfeifer.dev/sccd/cereal/log"
	"pfeifer.dev/sccd/smoother"
	"pfeifer.dev/sccd/utils"
)

// Limiter consumes the externally computed advisory speed limit and derives
// the freshly-started edge the ceiling aggregator keys on. The subscription
// is conflated; between messages the last signal is held with the edge
// cleared.
type Limiter struct {
	Sub     cereal.Subscriber[log.RoadLimitSpeed]
	tracker utils.Float64Tracker
	last    smoother.RoadLimit
}

func New() *Limiter {
	return &Limiter{
		Sub: cereal.NewSubscriber("roadLimitSpeed", cereal.RoadLimitSpeedReader, true),
	}
}

// MaxSpeed returns the current advisory limit signal for this tick.
func (l *Limiter) MaxSpeed() smoother.RoadLimit {
	data, ok := l.Sub.Read()
	if !ok {
		l.last.FirstStarted = false
		return l.last
	}
	return l.fromSignal(float64(data.LimitSpeed()), float64(data.RoadLimitSpeed()), float64(data.LeftDist()))
}

func (l *Limiter) fromSignal(limit float64, roadLimit float64, leftDist float64) smoother.RoadLimit {
	changed := l.tracker.Update(limit)
	l.last = smoother.RoadLimit{
		Limit:        limit,
		RoadLimit:    roadLimit,
		LeftDist:     leftDist,
		FirstStarted: changed && limit >= smoother.ROAD_LIMIT_MIN_SPEED,
	}
	return l.last
}
