package curveisect

// bezierCoeffs converts four on-curve/control values of one cubic
// Bézier axis into the coefficients of its cubic polynomial in t.
func bezierCoeffs(p0, p1, p2, p3 float64) [4]float64 {
	return [4]float64{
		-p0 + 3*p1 - 3*p2 + p3,
		3*p0 - 6*p1 + 3*p2,
		-3*p0 + 3*p1,
		p0,
	}
}

// lineCurveHit is one solution of lineAndCurveIntersection: the curve
// parameter t and the point it evaluates to.
type lineCurveHit struct {
	T    float64
	X, Y float64
}

// lineAndCurveIntersection substitutes a cubic curve's polynomial form
// into a line's implicit equation Ax+By+C=0, solves the resulting cubic
// in t via cubicRoots, and keeps only the roots that also land within
// the line's own [0,1] segment.
func lineAndCurveIntersection(v Curve, line [4]float64) []lineCurveHit {
	px := [4]float64{v[0], v[2], v[4], v[6]}
	py := [4]float64{v[1], v[3], v[5], v[7]}
	lx := [2]float64{line[0], line[2]}
	ly := [2]float64{line[1], line[3]}

	a := ly[1] - ly[0] // A = y2 - y1
	b := lx[0] - lx[1] // B = x1 - x2
	c := lx[0]*(ly[0]-ly[1]) + ly[0]*(lx[1]-lx[0])

	bx := bezierCoeffs(px[0], px[1], px[2], px[3])
	by := bezierCoeffs(py[0], py[1], py[2], py[3])

	p := [4]float64{
		a*bx[0] + b*by[0],
		a*bx[1] + b*by[1],
		a*bx[2] + b*by[2],
		a*bx[3] + b*by[3] + c,
	}

	roots := cubicRoots(p)
	var hits []lineCurveHit
	for _, t := range roots {
		x := bx[0]*t*t*t + bx[1]*t*t + bx[2]*t + bx[3]
		y := by[0]*t*t*t + by[1]*t*t + by[2]*t + by[3]

		var s float64
		if lx[1] != lx[0] {
			s = (x - lx[0]) / (lx[1] - lx[0])
		} else {
			s = (y - ly[0]) / (ly[1] - ly[0])
		}

		if !(t < 0 || t > 1 || s < 0 || s > 1) {
			hits = append(hits, lineCurveHit{t, x, y})
		}
	}
	return hits
}
