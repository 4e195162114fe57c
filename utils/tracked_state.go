package utils

import (
	"math"
	"time"
)

// Float64Tracker remembers the previous distinct value of a signal and when
// it last changed. Used for edge detection on conflated subscriptions.
type Float64Tracker struct {
	LastValue          float64
	Value              float64
	UpdatedTime        time.Time
	AllowNullLastValue bool
}

func (t *Float64Tracker) Update(val float64) (updated bool) {
	if t.Value != val {
		if t.AllowNullLastValue || !(math.IsNaN(t.Value) || t.Value == 0) {
			t.LastValue = t.Value
		}
		t.UpdatedTime = time.Now()
		t.Value = val
		return true
	}
	return false
}
