package curveisect

import "sort"

// getBounds computes the bounding box of every curve's control points.
func getBounds(curves []Curve) []Bounds {
	bounds := make([]Bounds, len(curves))
	for i, c := range curves {
		bounds[i] = c.Bounds()
	}
	return bounds
}

// findCurveBoundsCollisions runs the broad phase over two curve lists
// (or one list against itself in self-intersection mode).
func findCurveBoundsCollisions(curves1, curves2 []Curve, isSelf bool, tolerance float64) [][]int {
	bounds1 := getBounds(curves1)
	if isSelf {
		return findBoundsCollisions(bounds1, bounds1, isSelf, tolerance)
	}
	bounds2 := getBounds(curves2)
	return findBoundsCollisions(bounds1, bounds2, isSelf, tolerance)
}

// boundsMaxX pulls out the field that the sweep's active list is kept
// sorted by (the only coordinate findBoundsCollisions ever searches on).
func boundsMaxX(b Bounds) float64 { return b.MaxX }

// binarySearch returns the index (into indices) of an entry whose
// boundsMaxX equals value if the search meets one (not necessarily the
// rightmost of several equal entries); otherwise the index of the
// rightmost entry whose boundsMaxX is below value, or -1 if every
// entry's boundsMaxX exceeds value (or indices is empty).
func binarySearch(indices []int, bounds []Bounds, value float64) int {
	left, right := 0, len(indices)
	for left < right {
		mid := left + (right-left)/2
		v := boundsMaxX(bounds[indices[mid]])
		switch {
		case v < value:
			left = mid + 1
		case v > value:
			right = mid
		default:
			return mid
		}
	}
	if left > 0 {
		return left - 1
	}
	return -1
}

// findBoundsCollisions is the broad-phase sweep: it scans all boxes
// left to right by min-x, keeps a list of "active" boxes (ones whose
// max-x could still overlap something to their right) sorted by max-x,
// prunes boxes that have fallen behind, and records a collision for
// every active/current pair whose y-ranges also overlap within
// tolerance.
func findBoundsCollisions(boundsA, boundsB []Bounds, isSelf bool, tolerance float64) [][]int {
	var allBounds []Bounds
	if isSelf {
		allBounds = boundsA
	} else {
		allBounds = make([]Bounds, 0, len(boundsA)+len(boundsB))
		allBounds = append(allBounds, boundsA...)
		allBounds = append(allBounds, boundsB...)
	}
	lengthA := len(boundsA)

	allIndicesByPri0 := make([]int, len(allBounds))
	for i := range allIndicesByPri0 {
		allIndicesByPri0[i] = i
	}
	sort.SliceStable(allIndicesByPri0, func(i, j int) bool {
		return allBounds[allIndicesByPri0[i]].MinX < allBounds[allIndicesByPri0[j]].MinX
	})

	var activeIndicesByPri1 []int
	allCollisions := make([][]int, lengthA)

	for _, curIndex := range allIndicesByPri0 {
		curBounds := allBounds[curIndex]
		origIndex := curIndex
		if !isSelf {
			origIndex = curIndex - lengthA
		}
		isCurrentA := curIndex < lengthA
		isCurrentB := isSelf || !isCurrentA
		var curCollisions []int

		if len(activeIndicesByPri1) > 0 {
			pruneCount := 0
			if idx := binarySearch(activeIndicesByPri1, allBounds, curBounds.MinX-tolerance); idx >= 0 {
				pruneCount = idx + 1
			}
			activeIndicesByPri1 = activeIndicesByPri1[pruneCount:]

			curSec1 := curBounds.MaxY
			curSec0 := curBounds.MinY

			for _, activeIndex := range activeIndicesByPri1 {
				activeBounds := allBounds[activeIndex]
				isActiveA := activeIndex < lengthA
				isActiveB := isSelf || activeIndex >= lengthA

				if ((isCurrentA && isActiveB) || (isCurrentB && isActiveA)) &&
					(curSec1 >= activeBounds.MinY-tolerance && curSec0 <= activeBounds.MaxY+tolerance) {
					if isCurrentA && isActiveB {
						collIndex := activeIndex
						if !isSelf {
							collIndex -= lengthA
						}
						curCollisions = append(curCollisions, collIndex)
					}
					if isCurrentB && isActiveA {
						allCollisions[activeIndex] = append(allCollisions[activeIndex], origIndex)
					}
				}
			}
		}

		if isCurrentA {
			if isSelf {
				curCollisions = append(curCollisions, curIndex)
			}
			allCollisions[curIndex] = curCollisions
		}

		curPri1 := curBounds.MaxX
		insertAt := 0
		if idx := binarySearch(activeIndicesByPri1, allBounds, curPri1); idx >= 0 {
			insertAt = idx + 1
		}
		activeIndicesByPri1 = append(activeIndicesByPri1, 0)
		copy(activeIndicesByPri1[insertAt+1:], activeIndicesByPri1[insertAt:])
		activeIndicesByPri1[insertAt] = curIndex
	}

	for _, collisions := range allCollisions {
		sort.Ints(collisions)
	}

	return allCollisions
}
