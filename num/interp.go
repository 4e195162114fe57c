package num

// Interp linearly interpolates y at x over the breakpoints (xs, ys).
// Outside the breakpoint range the nearest endpoint value is returned.
// xs must be sorted ascending.
func Interp(x float64, xs []float64, ys []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			span := xs[i] - xs[i-1]
			if span == 0 {
				return ys[i]
			}
			t := (x - xs[i-1]) / span
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[len(ys)-1]
}
