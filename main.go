package main

import (
	"context"
	"log/slog"
	"time"

	"pfeifer.dev/sccd/car"
	"pfeifer.dev/sccd/cereal"
	"pfeifer.dev/sccd/cli"
	"pfeifer.dev/sccd/params"
	ms "pfeifer.dev/sccd/settings"
	"pfeifer.dev/sccd/smoother"
)

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	params.EnsureParamsExist()
	ms.Settings.LoadWithRetries(5)

	sm, err := smoother.New(smootherConfig(), params.Store{})
	check(err)

	state := State{}
	state.Init(sm)

	pub := cereal.NewPublisher("sccdOut", cereal.SccdOutCreator)

	ctx := context.Background()
	writer := openCANWriter(ctx)
	if writer != nil {
		defer func() { loge(writer.Close()) }()
	}

	var frame uint64
	for {
		time.Sleep(ms.LOOP_DELAY)
		frame++
		state.Tick.Update()

		if !state.ReadCar() {
			continue
		}
		lead := state.ReadLead()
		path := state.ReadPath()
		applyAccel, opEnabled := state.ReadCarControl()
		road := state.Limiter.MaxSpeed()

		state.Controls.Enabled = opEnabled
		smoother.UpdateCruiseButtons(&state.Controls, &state.Tracker, &state.Car,
			sm.Mode(), ms.Settings.LongControlEnabled)

		state.Sends = state.Sends[:0]
		state.Alerts = state.Alerts[:0]

		sm.Update(opEnabled, &state.Sends, &state.Car, lead, path, road, frame,
			applyAccel, &state.Controls)
		sm.InjectEvents(&state.Alerts)

		if writer != nil {
			for _, send := range state.Sends {
				loge(writer.WriteFrame(ctx, send))
			}
		}

		fused, dRel := sm.FusedAccel(applyAccel, state.Car.AEgo, lead)

		msg, out := pub.NewMessage(true)
		state.FillOutput(out, sm.IsActive(frame), fused)
		loge(pub.Send(msg))

		if frame%1000 == 0 {
			slog.Debug("sccdOut",
				"mode", state.Controls.Out.Mode.String(),
				"vCruise", state.Controls.VCruiseKph,
				"virtualMax", state.Controls.CruiseVirtualMaxSpeed,
				"fusedAccel", fused,
				"dRel", dRel,
				"interval", state.Tick.MeanInterval(),
			)
		}
	}
}

func smootherConfig() smoother.Config {
	return smoother.Config{
		AccelGain:     ms.Settings.AccelGain,
		DecelGain:     ms.Settings.DecelGain,
		CurvatureGain: ms.Settings.CurvatureGain,

		Enabled:                     ms.Settings.Enabled,
		SlowOnCurves:                ms.Settings.SlowOnCurves,
		SyncSetSpeedWhileGasPressed: ms.Settings.SyncSetSpeedWhileGasPressed,
		SwitchOnlyWithGapButton:     ms.Settings.SwitchOnlyWithGapButton,
		LongControl:                 ms.Settings.LongControlEnabled,
	}
}

// openCANWriter connects to the configured bus. A missing interface is not
// fatal: the frames still go out on the publisher for a downstream bridge.
func openCANWriter(ctx context.Context) car.CANWriter {
	if ms.Settings.CanInterface == "" {
		return nil
	}
	writer, err := car.NewSocketCANWriter(ctx, ms.Settings.CanInterface)
	if err != nil {
		slog.Warn("could not open can interface, frames will only be published",
			"interface", ms.Settings.CanInterface, "error", err)
		return nil
	}
	return writer
}
