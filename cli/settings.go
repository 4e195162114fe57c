package cli

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"pfeifer.dev/sccd/params"
	ms "pfeifer.dev/sccd/settings"
)

type field struct {
	name string
	get  func() string
	set  func(string) error
}

func boolField(name string, v *bool) field {
	return field{
		name: name,
		get:  func() string { return strconv.FormatBool(*v) },
		set: func(raw string) error {
			val, err := strconv.ParseBool(raw)
			if err != nil {
				return err
			}
			*v = val
			return nil
		},
	}
}

func floatField(name string, v *float64) field {
	return field{
		name: name,
		get:  func() string { return strconv.FormatFloat(*v, 'g', -1, 64) },
		set: func(raw string) error {
			val, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return err
			}
			*v = val
			return nil
		},
	}
}

func stringField(name string, v *string) field {
	return field{
		name: name,
		get:  func() string { return *v },
		set: func(raw string) error {
			*v = raw
			return nil
		},
	}
}

func settingsFields() []field {
	s := &ms.Settings
	return []field{
		boolField("Enabled", &s.Enabled),
		boolField("Slow On Curves", &s.SlowOnCurves),
		boolField("Sync Set Speed While Gas Pressed", &s.SyncSetSpeedWhileGasPressed),
		boolField("Switch Only With Gap Button", &s.SwitchOnlyWithGapButton),
		boolField("Long Control Enabled", &s.LongControlEnabled),
		boolField("Is Metric", &s.IsMetric),
		floatField("Accel Gain", &s.AccelGain),
		floatField("Decel Gain", &s.DecelGain),
		floatField("Curvature Gain", &s.CurvatureGain),
		stringField("CAN Interface", &s.CanInterface),
		stringField("Log Level", &s.LogLevel),
	}
}

func editSettings() {
	params.EnsureParamDirectories()
	ms.Settings.Load()
	fields := settingsFields()

	for {
		items := make([]string, 0, len(fields)+2)
		for _, f := range fields {
			items = append(items, fmt.Sprintf("%s: %s", f.name, f.get()))
		}
		items = append(items, "Save", "Exit")

		prompt := promptui.Select{
			Label: "Sccd Settings",
			Items: items,
			Size:  len(items),
		}

		idx, _, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return
		}

		switch {
		case idx < len(fields):
			editField(fields[idx])
		case idx == len(fields):
			ms.Settings.Save()
			fmt.Println("settings saved")
		default:
			return
		}
	}
}

func editField(f field) {
	prompt := promptui.Prompt{
		Label:   f.name,
		Default: f.get(),
	}
	raw, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}
	if err := f.set(raw); err != nil {
		fmt.Printf("Invalid value %q: %v\n", raw, err)
	}
}

func printSettings() {
	for _, f := range settingsFields() {
		fmt.Printf("%s: %s\n", f.name, f.get())
	}
}
