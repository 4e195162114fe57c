package num

import "github.com/samber/lo"

// Window is a fixed-capacity FIFO of samples. Unlike a moving average it
// reports the mean of only the samples seen so far, so early values are not
// over-weighted while the window fills.
type Window struct {
	values []float64
	size   int
}

func (w *Window) Init(size int) {
	w.size = size
	w.values = make([]float64, 0, size)
}

func (w *Window) Reset() {
	w.values = w.values[:0]
}

func (w *Window) Push(val float64) {
	w.values = append(w.values, val)
	if len(w.values) > w.size {
		w.values = w.values[1:]
	}
}

func (w *Window) Len() int {
	return len(w.values)
}

func (w *Window) Mean() float64 {
	if len(w.values) == 0 {
		return 0
	}
	return lo.Mean(w.values)
}
