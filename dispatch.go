package curveisect

// getCurveIntersections routes one curve/curve pair to the matching
// intersection regime (line/line, line/curve, or curve/curve) once the
// broad phase has already confirmed their bounding boxes overlap, and
// re-confirms the overlap itself since callers may invoke it directly.
func getCurveIntersections(v1, v2 Curve, locations *[]Record) {
	v1MinX := minOf(v1[0], v1[2], v1[4], v1[6])
	v1MaxX := maxOf(v1[0], v1[2], v1[4], v1[6])
	v1MinY := minOf(v1[1], v1[3], v1[5], v1[7])
	v1MaxY := maxOf(v1[1], v1[3], v1[5], v1[7])
	v2MinX := minOf(v2[0], v2[2], v2[4], v2[6])
	v2MaxX := maxOf(v2[0], v2[2], v2[4], v2[6])
	v2MinY := minOf(v2[1], v2[3], v2[5], v2[7])
	v2MaxY := maxOf(v2[1], v2[3], v2[5], v2[7])

	if !(v1MaxX+epsilon > v2MinX && v1MinX-epsilon < v2MaxX &&
		v1MaxY+epsilon > v2MinY && v1MinY-epsilon < v2MaxY) {
		return
	}

	straight1 := v1.IsLineLike()
	straight2 := v2.IsLineLike()
	straight := straight1 && straight2
	flip := straight1 && !straight2

	if straight {
		pt, ok := lineIntersection(Point{v1[0], v1[1]}, Point{v1[6], v1[7]}, Point{v2[0], v2[1]}, Point{v2[6], v2[7]})
		if !ok {
			return
		}
		count := 0
		if (pt.X == v1[0] && pt.Y == v1[1]) || (pt.X == v1[6] && pt.Y == v1[7]) {
			count++
		}
		if (pt.X == v2[0] && pt.Y == v2[1]) || (pt.X == v2[6] && pt.Y == v2[7]) {
			count++
		}
		// Both lines just touch at a shared endpoint: not a crossing.
		if count == 2 {
			return
		}
		*locations = append(*locations, Record{-1, pt.X, pt.Y, -1, pt.X, pt.Y})
		return
	}

	if straight1 || straight2 {
		isV1Line := straight1
		curve, line := v1, [4]float64{v2[0], v2[1], v2[6], v2[7]}
		if isV1Line {
			curve, line = v2, [4]float64{v1[0], v1[1], v1[6], v1[7]}
		}
		for _, h := range lineAndCurveIntersection(curve, line) {
			if isV1Line {
				*locations = append(*locations, Record{-1, h.X, h.Y, h.T, h.X, h.Y})
			} else {
				*locations = append(*locations, Record{h.T, h.X, h.Y, -1, h.X, h.Y})
			}
		}
		return
	}

	vv1, vv2 := v1, v2
	if flip {
		vv1, vv2 = v2, v1
	}
	bezierIntersections(vv1, vv2, locations, flip, 0, 0, 0, 1, 0, 1)
}

func minOf(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
