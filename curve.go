package curveisect

import "math"

// Curve is a cubic Bézier curve stored as a flat 8-number tuple
// [p1x,p1y,c1x,c1y,c2x,c2y,p2x,p2y]. Curve is a value type: copying it
// copies the curve, matching the immutability of the geometry it models.
type Curve [8]float64

// NewCurve builds a Curve from its two endpoints and two control points.
func NewCurve(p1, c1, c2, p2 Point) Curve {
	return Curve{p1.X, p1.Y, c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y}
}

// P1 returns the curve's start point.
func (c Curve) P1() Point { return Point{c[0], c[1]} }

// C1 returns the curve's first control point.
func (c Curve) C1() Point { return Point{c[2], c[3]} }

// C2 returns the curve's second control point.
func (c Curve) C2() Point { return Point{c[4], c[5]} }

// P2 returns the curve's end point.
func (c Curve) P2() Point { return Point{c[6], c[7]} }

// IsLineLike reports whether both control points coincide with their
// adjacent endpoints, i.e. the curve degenerates to a straight line.
func (c Curve) IsLineLike() bool {
	return c[2] == c[0] && c[3] == c[1] && c[4] == c[6] && c[5] == c[7]
}

// isZeroControl reports whether both control points of the curve sit
// exactly at the origin.
func (c Curve) isZeroControl() bool {
	return c[2] == 0 && c[3] == 0 && c[4] == 0 && c[5] == 0
}

// Bounds is an axis-aligned bounding box expressed as its min/max corners,
// the shape the broad-phase sweep in collision.go operates on.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the bounding box of the curve's four control points
// (not the tight bounds of the curve itself, which would require finding
// its extrema — the broad phase only needs a fast conservative box).
func (c Curve) Bounds() Bounds {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < 8; i += 2 {
		if c[i] < minX {
			minX = c[i]
		}
		if c[i] > maxX {
			maxX = c[i]
		}
		if c[i+1] < minY {
			minY = c[i+1]
		}
		if c[i+1] > maxY {
			maxY = c[i+1]
		}
	}
	return Bounds{minX, minY, maxX, maxY}
}

// splitCubicBezier splits v at parameter t using de Casteljau's
// construction, returning the curve restricted to [0,t] and to [t,1].
func splitCubicBezier(v Curve, t float64) (Curve, Curve) {
	p1x, p1y, c1x, c1y, c2x, c2y, p2x, p2y := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]

	u := 1 - t
	p3x := u*p1x + t*c1x
	p3y := u*p1y + t*c1y
	p4x := u*c1x + t*c2x
	p4y := u*c1y + t*c2y
	p5x := u*c2x + t*p2x
	p5y := u*c2y + t*p2y
	p6x := u*p3x + t*p4x
	p6y := u*p3y + t*p4y
	p7x := u*p4x + t*p5x
	p7y := u*p4y + t*p5y
	p8x := u*p6x + t*p7x
	p8y := u*p6y + t*p7y

	left := Curve{p1x, p1y, p3x, p3y, p6x, p6y, p8x, p8y}
	right := Curve{p8x, p8y, p7x, p7y, p5x, p5y, p2x, p2y}
	return left, right
}

// splitCubicBezierPart restricts v to the sub-curve spanning [t1,t2].
func splitCubicBezierPart(v Curve, t1, t2 float64) Curve {
	part := v
	if t1 > 0 {
		_, part = splitCubicBezier(part, t1)
	}
	if t2 < 1 {
		t := (t2 - t1) / (1 - t1)
		part, _ = splitCubicBezier(part, t)
	}
	return part
}

// evalKind selects what evaluate computes at a given curve parameter.
type evalKind int

const (
	evalPoint evalKind = iota
	evalTangent
	evalNormal
	evalCurvature
)

// evaluate computes the position, tangent, normal, or curvature of v at
// parameter t, returning false if t is out of [0,1] or NaN.
func evaluate(v Curve, t float64, kind evalKind) (Point, bool) {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return Point{}, false
	}

	x0, y0 := v[0], v[1]
	x1, y1 := v[2], v[3]
	x2, y2 := v[4], v[5]
	x3, y3 := v[6], v[7]

	if isZero(x1-x0) && isZero(y1-y0) {
		x1, y1 = x0, y0
	}
	if isZero(x2-x3) && isZero(y2-y3) {
		x2, y2 = x3, y3
	}

	cx := 3 * (x1 - x0)
	bx := 3*(x2-x1) - cx
	ax := x3 - x0 - cx - bx
	cy := 3 * (y1 - y0)
	by := 3*(y2-y1) - cy
	ay := y3 - y0 - cy - by

	var x, y float64
	if kind == evalPoint {
		switch t {
		case 0:
			x, y = x0, y0
		case 1:
			x, y = x3, y3
		default:
			x = ((ax*t+bx)*t+cx)*t + x0
			y = ((ay*t+by)*t+cy)*t + y0
		}
	} else {
		tMin := curveTimeEpsilon
		tMax := 1 - tMin
		switch {
		case t < tMin:
			x, y = cx, cy
		case t > tMax:
			x, y = 3*(x3-x2), 3*(y3-y2)
		default:
			x = (3*ax*t+2*bx)*t + cx
			y = (3*ay*t+2*by)*t + cy
		}

		if kind == evalCurvature {
			x2d := 6*ax*t + 2*bx
			y2d := 6*ay*t + 2*by
			d := math.Pow(x*x+y*y, 1.5)
			if d != 0 {
				x = (x*y2d - y*x2d) / d
			} else {
				x = 0
			}
			y = 0
		}
	}

	if kind == evalNormal {
		return Point{y, -x}, true
	}
	return Point{x, y}, true
}

// signedDistance returns the signed distance of point (x,y) from the line
// through (px,py) and (vx,vy) (or along direction (vx,vy) if asVector is
// set), using whichever axis has the larger magnitude as the stable
// denominator.
func signedDistance(px, py, vx, vy, x, y float64, asVector bool) float64 {
	if !asVector {
		vx -= px
		vy -= py
	}
	switch {
	case vx == 0:
		if vy > 0 {
			return x - px
		}
		return px - x
	case vy == 0:
		if vx < 0 {
			return y - py
		}
		return py - y
	default:
		dist := (x-px)*vy - (y-py)*vx
		var denom float64
		if vy > vx {
			denom = vy * math.Sqrt(1+(vx*vx)/(vy*vy))
		} else {
			denom = vx * math.Sqrt(1+(vy*vy)/(vx*vx))
		}
		return dist / denom
	}
}

// fatLine computes the thin enclosing strip around v: the perpendicular
// distance band [dMin,dMax] from v's baseline that fully contains v,
// along with the raw signed distances of its two control points.
func fatLine(v Curve) (dMin, dMax, d1, d2 float64) {
	q0x, q0y := v[0], v[1]
	q3x, q3y := v[6], v[7]
	d1 = signedDistance(q0x, q0y, q3x, q3y, v[2], v[3], false)
	d2 = signedDistance(q0x, q0y, q3x, q3y, v[4], v[5], false)
	factor := 4.0 / 9.0
	if d1*d2 > 0 {
		factor = 3.0 / 4.0
	}
	dMin = factor * math.Min(math.Min(d1, d2), 0)
	dMax = factor * math.Max(math.Max(d1, d2), 0)
	return
}

// convexHull computes the convex hull of the four samples
// (0,dq0),(1/3,dq1),(2/3,dq2),(1,dq3), split into its upper and lower
// chains (ordered left to right along the curve parameter).
func convexHull(dq0, dq1, dq2, dq3 float64) (top, bottom []Point) {
	p0 := Point{0, dq0}
	p1 := Point{1.0 / 3.0, dq1}
	p2 := Point{2.0 / 3.0, dq2}
	p3 := Point{1, dq3}
	dist1 := dq1 - (2*dq0+dq3)/3.0
	dist2 := dq2 - (dq0+2*dq3)/3.0

	switch {
	case dist1*dist2 < 0:
		// The hull is made of two triangles that share the p0-p3 diagonal.
		top, bottom = []Point{p0, p1, p3}, []Point{p0, p2, p3}
	default:
		ratio := dist1 / dist2
		switch {
		case ratio >= 2:
			top, bottom = []Point{p0, p1, p3}, []Point{p0, p3}
		case ratio <= 0.5:
			top, bottom = []Point{p0, p2, p3}, []Point{p0, p3}
		default:
			top, bottom = []Point{p0, p1, p2, p3}, []Point{p0, p3}
		}
	}

	switch {
	case dist1 > 0:
		return top, bottom
	case dist1 < 0:
		return bottom, top
	case dist2 < 0:
		return bottom, top
	default:
		return top, bottom
	}
}

// clipConvexHull finds where the hull (top,bottom) enters the band
// [dMin,dMax], reporting the curve parameter of entry. It returns false
// if the hull never enters the band.
func clipConvexHull(top, bottom []Point, dMin, dMax float64) (float64, bool) {
	switch {
	case top[0].Y < dMin:
		return clipConvexHullPart(top, true, dMin)
	case bottom[0].Y > dMax:
		return clipConvexHullPart(bottom, false, dMax)
	default:
		return top[0].X, true
	}
}

// clipConvexHullPart walks one chain of the hull looking for the segment
// that crosses threshold, and linearly interpolates the crossing point.
func clipConvexHullPart(part []Point, isTop bool, threshold float64) (float64, bool) {
	prevX, prevY := part[0].X, part[0].Y
	for _, cur := range part[1:] {
		curX, curY := cur.X, cur.Y
		if (isTop && curY >= threshold) || (!isTop && curY <= threshold) {
			if curY == threshold {
				return curX, true
			}
			return prevX + ((threshold-prevY)*(curX-prevX))/(curY-prevY), true
		}
		prevX, prevY = curX, curY
	}
	return 0, false
}
