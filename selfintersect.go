package curveisect

import "math"

// selfIntersection finds the pair of curve parameters at which a single
// cubic curve crosses itself, via the sign of its inflection-point
// discriminant. It returns false if the curve has no loop, or — per the
// algorithm's conservative policy — if only one of the two roots of the
// discriminant lands in (0,1); a lone in-range root typically marks a
// near-miss rather than a genuine self-crossing.
func selfIntersection(v Curve) (t1, t2 float64, ok bool) {
	x0, y0 := v[0], v[1]
	x1, y1 := v[2], v[3]
	x2, y2 := v[4], v[5]
	x3, y3 := v[6], v[7]

	a1 := x0*(y3-y2) + y0*(x2-x3) + x3*y2 - y3*x2
	a2 := x1*(y0-y3) + y1*(x3-x0) + x0*y3 - y0*x3
	a3 := x2*(y1-y0) + y2*(x0-x1) + x1*y0 - y1*x0

	d3 := 3 * a3
	d2 := d3 - a2
	d1 := d2 - a2 + a1

	l := math.Sqrt(d1*d1 + d2*d2 + d3*d3)
	s := 0.0
	if l != 0 {
		s = 1.0 / l
	}
	d1 *= s
	d2 *= s
	d3 *= s

	if isZero(d1) {
		return 0, 0, false
	}

	d := 3*d2*d2 - 4*d1*d3
	if d >= 0 {
		return 0, 0, false
	}

	var f1 float64
	if d > 0 {
		f1 = math.Sqrt(d / 3.0)
	} else {
		f1 = math.Sqrt(-d)
	}
	f2 := 2 * d1
	ta := (d2 + f1) / f2
	tb := (d2 - f1) / f2

	taOK := ta > 0 && ta < 1
	tbOK := tb > 0 && tb < 1

	if !(taOK && tbOK) {
		return 0, 0, false
	}

	if ta < tb {
		return ta, tb, true
	}
	return tb, ta, true
}
