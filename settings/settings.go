package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/sccd/params"
	"pfeifer.dev/sccd/utils"
)

var (
	Settings = SccdSettings{}
)

type SccdSettings struct {
	Enabled                     bool    `json:"enabled"`
	SlowOnCurves                bool    `json:"slow_on_curves"`
	SyncSetSpeedWhileGasPressed bool    `json:"sync_set_speed_while_gas_pressed"`
	SwitchOnlyWithGapButton     bool    `json:"switch_only_with_gap_button"`
	LongControlEnabled          bool    `json:"long_control_enabled"`
	IsMetric                    bool    `json:"is_metric"`
	AccelGain                   float64 `json:"accel_gain"`
	DecelGain                   float64 `json:"decel_gain"`
	CurvatureGain               float64 `json:"curvature_gain"`
	CanInterface                string  `json:"can_interface"`
	LogLevel                    string  `json:"log_level"`
}

func (s *SccdSettings) Default() {
	s.Enabled = false
	s.SlowOnCurves = false
	s.SyncSetSpeedWhileGasPressed = false
	s.SwitchOnlyWithGapButton = false
	s.LongControlEnabled = false
	s.IsMetric = true
	s.AccelGain = 1.0
	s.DecelGain = 1.0
	s.CurvatureGain = 1.0
	s.CanInterface = "can0"
	s.LogLevel = "error"
}

func (s *SccdSettings) Recommended() {
	s.Enabled = true
	s.SlowOnCurves = true
	s.SyncSetSpeedWhileGasPressed = true
	s.SwitchOnlyWithGapButton = false
	s.LongControlEnabled = false
	s.IsMetric = true
	s.AccelGain = 1.0
	s.DecelGain = 1.0
	s.CurvatureGain = 1.0
	s.CanInterface = "can0"
	s.LogLevel = "error"
}

func (s *SccdSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.SCCD_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *SccdSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *SccdSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.SCCD_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *SccdSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}
