package curveisect

// Record is one intersection between two curves (or two branches of the
// same curve, for self-intersection): parameter T1 on the first curve
// and the point it evaluates to, and the matching T2/point on the
// second. A parameter of -1 marks a line argument, which has no
// meaningful [0,1] curve-time of its own.
type Record struct {
	T1, X1, Y1 float64
	T2, X2, Y2 float64
}
