package main

import (
	"go.einride.tech/can"

	"pfeifer.dev/sccd/car"
	"pfeifer.dev/sccd/cereal"
	"pfeifer.dev/sccd/cereal/log"
	"pfeifer.dev/sccd/roadlimit"
	ms "pfeifer.dev/sccd/settings"
	"pfeifer.dev/sccd/smoother"
	"pfeifer.dev/sccd/utils"
)

// State is the daemon-side glue: the conflated subscriptions, the last known
// telemetry held between messages, and the per-tick scratch buffers handed
// to the smoother.
type State struct {
	CarSub     cereal.Subscriber[log.CarState]
	RadarSub   cereal.Subscriber[log.RadarState]
	ModelSub   cereal.Subscriber[log.ModelDataV2]
	ControlSub cereal.Subscriber[log.CarControl]
	Limiter    *roadlimit.Limiter

	Smoother *smoother.Smoother
	Controls smoother.Controls
	Tracker  smoother.ButtonTracker
	Tick     utils.UpdateTracker

	Car    car.State
	Sends  []can.Frame
	Alerts []smoother.Alert

	haveCar    bool
	lead       *car.Lead
	path       *smoother.Polyline
	applyAccel float64
	opEnabled  bool
}

func (s *State) Init(sm *smoother.Smoother) {
	s.CarSub = cereal.NewSubscriber("carState", cereal.CarStateReader, true)
	s.RadarSub = cereal.NewSubscriber("radarState", cereal.RadarStateReader, true)
	s.ModelSub = cereal.NewSubscriber("modelV2", cereal.ModelV2Reader, true)
	s.ControlSub = cereal.NewSubscriber("carControl", cereal.CarControlReader, true)
	s.Limiter = roadlimit.New()

	s.Smoother = sm
	s.Controls.IsMetric = ms.Settings.IsMetric
	s.Tick.Init(100)
}

// ReadCar refreshes the telemetry snapshot. Returns false until the first
// car message arrives; after that the previous snapshot stays valid for
// ticks without a new message.
func (s *State) ReadCar() bool {
	data, ok := s.CarSub.Read()
	if !ok {
		return s.haveCar
	}

	events := s.Car.ButtonEvents[:0]
	list, err := data.ButtonEvents()
	if err == nil {
		for i := range list.Len() {
			be := list.At(i)
			events = append(events, car.ButtonEvent{
				Type:    car.ButtonType(be.Type()),
				Pressed: be.Pressed(),
			})
		}
	}

	s.Car = car.State{
		CluSpeed:       float64(data.CluSpeed()),
		VEgo:           float64(data.VEgo()),
		AEgo:           float64(data.AEgo()),
		CruiseSetSpeed: float64(data.VCruise()) * ms.KPH_TO_MS,
		CruiseGap:      float64(data.CruiseGap()),
		CruiseEnabled:  data.CruiseEnabled(),
		AccMode:        data.AccMode(),
		Standstill:     data.Standstill(),
		GasPressed:     data.GasPressed(),
		BrakePressed:   data.BrakePressed(),
		CruiseButtons:  car.Button(data.CruiseButtons()),
		ButtonEvents:   events,
		SccBus:         data.SccBus(),
	}
	s.haveCar = true
	return true
}

// ReadLead returns the tracked lead, or nil when none.
func (s *State) ReadLead() *car.Lead {
	data, ok := s.RadarSub.Read()
	if !ok {
		return s.lead
	}

	leadOne, err := data.LeadOne()
	if err != nil || !leadOne.Status() {
		s.lead = nil
		return nil
	}

	s.lead = &car.Lead{
		DRel: float64(leadOne.DRel()),
		VRel: float64(leadOne.VRel()),
	}
	return s.lead
}

// ReadPath returns the forward path polyline from the latest model output.
// A truncated message is passed through as-is; the curvature estimator
// rejects anything that is not the full trajectory length.
func (s *State) ReadPath() *smoother.Polyline {
	data, ok := s.ModelSub.Read()
	if !ok {
		return s.path
	}

	position, err := data.Position()
	if err != nil {
		return s.path
	}
	xs, errX := position.X()
	ys, errY := position.Y()
	if errX != nil || errY != nil {
		return s.path
	}

	path := &smoother.Polyline{
		X: make([]float64, xs.Len()),
		Y: make([]float64, ys.Len()),
	}
	for i := range xs.Len() {
		path.X[i] = float64(xs.At(i))
	}
	for i := range ys.Len() {
		path.Y[i] = float64(ys.At(i))
	}
	s.path = path
	return s.path
}

// ReadCarControl returns the baseline longitudinal command and whether the
// outer control loop is engaged.
func (s *State) ReadCarControl() (float64, bool) {
	data, ok := s.ControlSub.Read()
	if ok {
		s.applyAccel = float64(data.ActuatorAccel())
		s.opEnabled = data.Enabled()
	}
	return s.applyAccel, s.opEnabled
}

const (
	alertNone uint16 = iota
	alertModeChanged
	alertSlowingDown
	alertSlowingDownSound
)

// FillOutput copies this tick's results into the outgoing event.
func (s *State) FillOutput(out log.SccdOut, active bool, fusedAccel float64) {
	out.SetState(uint16(s.Controls.Out.Mode))

	alert := alertNone
	for _, a := range s.Alerts {
		switch a {
		case smoother.AlertModeChanged:
			alert = alertModeChanged
		case smoother.AlertSlowingDownSpeed:
			alert = alertSlowingDown
		case smoother.AlertSlowingDownSpeedSound:
			alert = alertSlowingDownSound
		}
	}
	out.SetAlert(alert)

	out.SetRoadLimitSpeed(float32(s.Controls.Out.RoadLimitSpeed))
	out.SetRoadLimitLeftDist(float32(s.Controls.Out.RoadLimitLeftDist))
	out.SetCruiseVirtualMaxSpeed(float32(s.Controls.Out.CruiseVirtualMaxSpeed))
	out.SetCruiseRealMaxSpeed(float32(s.Controls.Out.CruiseRealMaxSpeed))
	out.SetFusedAccel(float32(fusedAccel))
	out.SetLongControl(s.Controls.Out.LongControl)
	out.SetSccActive(active)
	loge(out.SetLogMessage(s.Controls.Out.LogMessage))
}
