package handanim

import "math"

// SolveQuadratic finds real roots of a*t^2 + b*t + c = 0, sorted
// ascending. A vanishing leading coefficient degrades to the linear case;
// a fully degenerate equation yields no roots rather than an error.
func SolveQuadratic(a, b, c float64) []float64 {
	if a == 0 || !isFinite(c/a) || !isFinite(b/a) {
		// Linear: b*t + c = 0.
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}

	// Numerically stable form: avoid cancellation between -b and the root
	// of the discriminant.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	r1 := q / a
	r2 := c / q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// solveQuadraticUnit returns the roots of a*t^2 + b*t + c = 0 that lie
// strictly inside (0, 1), for curve extrema searches.
func solveQuadraticUnit(a, b, c float64) []float64 {
	var result []float64
	for _, t := range SolveQuadratic(a, b, c) {
		if t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	return result
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
