package main

import (
	"fmt"

	"github.com/tdewolff/curveisect"
	"github.com/tdewolff/strconv"
)

// skipCommaWhitespace advances past any run of separator bytes between
// two numbers in a flat-number curve argument.
func skipCommaWhitespace(s []byte) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == ',' || s[i] == '\n' || s[i] == '\r' || s[i] == '\t') {
		i++
	}
	return i
}

// parseNum reads one float off the front of s, returning its value and
// how many bytes it consumed (including leading separators).
func parseNum(s []byte) (float64, int, bool) {
	i := skipCommaWhitespace(s)
	if i >= len(s) {
		return 0, i, false
	}
	f, n := strconv.ParseFloat(s[i:])
	if n == 0 {
		return 0, i, false
	}
	return f, i + n, true
}

// decodeCurves parses a flat-number curve argument (8 comma/whitespace
// separated floats per curve, concatenated) into a sequence of curves.
func decodeCurves(arg string) ([]curveisect.Curve, error) {
	raw := []byte(arg)
	var nums []float64
	for len(raw) > 0 {
		f, n, ok := parseNum(raw)
		if !ok {
			raw = raw[skipCommaWhitespace(raw):]
			if len(raw) == 0 {
				break
			}
			return nil, fmt.Errorf("bad number at %q", string(raw))
		}
		nums = append(nums, f)
		raw = raw[n:]
	}
	if len(nums)%8 != 0 {
		return nil, fmt.Errorf("curve argument must hold a multiple of 8 numbers, got %d", len(nums))
	}
	curves := make([]curveisect.Curve, len(nums)/8)
	for i := range curves {
		n := nums[i*8 : i*8+8]
		curves[i] = curveisect.NewCurve(
			curveisect.Point{X: n[0], Y: n[1]},
			curveisect.Point{X: n[2], Y: n[3]},
			curveisect.Point{X: n[4], Y: n[5]},
			curveisect.Point{X: n[6], Y: n[7]},
		)
	}
	return curves, nil
}
