package curveisect

import "math"

// lineIntersection finds the intersection of line (p1,v1) with line
// (p2,v2), where v1/v2 are second points on each line (not direction
// vectors), clamping the first line's hit to its own [0,1] segment.
func lineIntersection(p1, v1, p2, v2 Point) (Point, bool) {
	v1 = v1.Sub(p1)
	v2 = v2.Sub(p2)
	cross := v1.X*v2.Y - v1.Y*v2.X
	if isMachineZero(cross) {
		return Point{}, false
	}

	d := p1.Sub(p2)
	u1 := (v2.X*d.Y - v2.Y*d.X) / cross
	u2 := (v1.X*d.Y - v1.Y*d.X) / cross

	uMin := -machineEpsilon
	uMax := 1 + machineEpsilon
	if !(uMin < u1 && u1 < uMax && uMin < u2 && u2 < uMax) {
		return Point{}, false
	}

	t := u1
	switch {
	case u1 <= 0:
		t = 0
	case u1 >= 1:
		t = 1
	}
	return Point{p1.X + t*v1.X, p1.Y + t*v1.Y}, true
}

func sgn(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// sortSpecial orders roots so that all in-range values ([0,1], stored as
// non-negative) come first in ascending order, followed by the -1
// sentinels marking discarded roots. It is a plain bubble sort because
// the input is always exactly 3 elements.
func sortSpecial(a [3]float64) [3]float64 {
	flipped := true
	for flipped {
		flipped = false
		for i := 0; i < len(a)-1; i++ {
			if (a[i+1] >= 0 && a[i] > a[i+1]) || (a[i] < 0 && a[i+1] >= 0) {
				a[i], a[i+1] = a[i+1], a[i]
				flipped = true
			}
		}
	}
	return a
}

// cubicRoots finds the real roots in [0,1] of p[0]*t^3 + p[1]*t^2 +
// p[2]*t + p[3] via Cardano's method (or the quadratic/linear formula
// when p[0] is zero), returning up to three roots with out-of-range or
// complex roots marked as -1 and pushed to the end.
func cubicRoots(p [4]float64) [3]float64 {
	a := p[1] / p[0]
	b := p[2] / p[0]
	c := p[3] / p[0]

	q := (3*b - a*a) / 9.0
	r := (9*a*b - 27*c - 2*a*a*a) / 54.0
	d := q*q*q + r*r

	t := [3]float64{-1, -1, -1}

	if p[0] == 0 {
		if p[1] != 0 {
			if disc := p[2]*p[2] - 4*p[1]*p[3]; disc >= 0 {
				t[0] = (-p[2] + math.Sqrt(disc)) / (2 * p[1])
				t[1] = (-p[2] - math.Sqrt(disc)) / (2 * p[1])
			}
		} else if p[2] != 0 {
			t[0] = -p[3] / p[2]
		}
	} else if d >= 0 {
		dSqrt := math.Sqrt(d)
		s := sgn(r+dSqrt) * math.Pow(math.Abs(r+dSqrt), 1.0/3.0)
		tv := sgn(r-dSqrt) * math.Pow(math.Abs(r-dSqrt), 1.0/3.0)

		t[0] = -a/3.0 + (s + tv)
		t[1] = -a/3.0 - (s+tv)/2.0
		t[2] = t[1]
		im := (math.Sqrt(3) * (s - tv)) / 2.0

		if im != 0 {
			t[1] = -1
			t[2] = -1
		}
	} else {
		qSqrt := math.Sqrt(-q)
		qt := math.Sqrt(-(q * q * q))
		th := math.Acos(r / qt)

		t[0] = 2*qSqrt*math.Cos(th/3.0) - a/3.0
		t[1] = 2*qSqrt*math.Cos((th+2*math.Pi)/3.0) - a/3.0
		t[2] = 2*qSqrt*math.Cos((th+4*math.Pi)/3.0) - a/3.0
	}

	for i := 0; i < 3; i++ {
		if t[i] < 0 || t[i] > 1 {
			t[i] = -1
		}
	}

	return sortSpecial(t)
}
