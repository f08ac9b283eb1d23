package graph

import "math"

const epsilon = 2.220446049250313e-16

// DoCurve eases x in [0, 1] along the kson curve family. a pulls the start of
// the segment and b the end; a == b is the identity.
//
// The curve is the quadratic bezier through (0, 0), (a, b), (1, 1), solved
// for the parameter t that lands on x.
// https://github.com/m4saka/ksh2kson/issues/4#issuecomment-573343229
func DoCurve(x, a, b float64) float64 {
	var t float64
	// Explicit float64 conversions prevent FMA fusion of the products.
	if (x < epsilon || a < epsilon) && a != 0.5 {
		t = (a - math.Sqrt(float64(a*a)+x-float64(2*a*x))) / (-1 + 2*a)
	} else {
		t = x / (a + math.Sqrt(float64(a*a)+float64((1-2*a)*x)))
	}
	return float64(2*(1-t)*t*b) + float64(t*t)
}
