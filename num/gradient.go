package num

// Gradient computes dy/dx with second-order accurate central differences on
// the interior and one-sided differences at the edges, matching numpy's
// gradient for non-uniform sample spacing. Inputs must be the same length.
// Zero spacing is not guarded; it surfaces as Inf/NaN and callers treat any
// NaN downstream as an invalid result.
func Gradient(y []float64, x []float64) []float64 {
	n := len(y)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	out[0] = (y[1] - y[0]) / (x[1] - x[0])
	out[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]
		out[i] = (hs*hs*y[i+1] + (hd*hd-hs*hs)*y[i] - hd*hd*y[i-1]) /
			(hs * hd * (hd + hs))
	}

	return out
}
