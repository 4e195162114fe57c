package utils

import (
	"time"

	"pfeifer.dev/sccd/num"
)

// UpdateTracker measures the interval between loop iterations. Every
// duration in the control core is tick-counted, so a drifting loop rate is
// worth a warning.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffWin  num.Window
}

func (u *UpdateTracker) Init(windowLength int) {
	u.LastTime = time.Now()
	u.Time = time.Now()
	u.DiffWin.Init(windowLength)
}

func (u *UpdateTracker) Update() {
	u.LastTime = u.Time
	u.Time = time.Now()
	u.DiffWin.Push(u.Time.Sub(u.LastTime).Seconds())
}

func (u *UpdateTracker) MeanInterval() time.Duration {
	return time.Duration(u.DiffWin.Mean() * float64(time.Second))
}
