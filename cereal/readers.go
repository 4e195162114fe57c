package cereal

import (
	"pfeifer.dev/sccd/cereal/log"
)

func CarStateReader(evt log.Event) (log.CarState, error) {
	return evt.CarState()
}

func RadarStateReader(evt log.Event) (log.RadarState, error) {
	return evt.RadarState()
}

func ModelV2Reader(evt log.Event) (log.ModelDataV2, error) {
	return evt.ModelV2()
}

func CarControlReader(evt log.Event) (log.CarControl, error) {
	return evt.CarControl()
}

func RoadLimitSpeedReader(evt log.Event) (log.RoadLimitSpeed, error) {
	return evt.RoadLimitSpeed()
}

func SccdOutCreator(evt log.Event) (log.SccdOut, error) {
	return evt.NewSccdOut()
}
