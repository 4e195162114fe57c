package car

// Button is the raw cruise stalk switch value carried in CLU11.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonResAccel
	ButtonSetDecel
	ButtonGapDist
	ButtonCancel
)

// ButtonType classifies a debounced button event from the car interface.
type ButtonType uint8

const (
	ButtonTypeUnknown ButtonType = iota
	ButtonTypeAccelCruise
	ButtonTypeDecelCruise
	ButtonTypeGapAdjust
	ButtonTypeCancel
)

type ButtonEvent struct {
	Type    ButtonType
	Pressed bool
}

// State is the per-tick telemetry snapshot consumed by the smoother. All
// speeds are in the unit noted per field; CluSpeed is the cluster-displayed
// speed in km/h because that is what the emulated stalk acts against.
type State struct {
	CluSpeed       float64 // km/h, cluster displayed speed
	VEgo           float64 // m/s, measured speed
	AEgo           float64 // m/s^2, measured acceleration
	CruiseSetSpeed float64 // m/s, the car's own displayed set speed
	CruiseGap      float64 // 1..4 gap setting
	CruiseEnabled  bool
	AccMode        bool
	Standstill     bool
	GasPressed     bool
	BrakePressed   bool
	CruiseButtons  Button // raw stalk value this tick
	ButtonEvents   []ButtonEvent
	SccBus         uint8
}

// Lead is the pre-selected tracked vehicle ahead. A nil *Lead means no lead
// is currently tracked.
type Lead struct {
	DRel float64 // m, relative distance
	VRel float64 // m/s, relative velocity, negative when closing
}
