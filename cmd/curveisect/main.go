package main

import (
	"fmt"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/curveisect"
)

// Intersect is the CLI's single command: decode two flat-number curve
// arguments (or one, in self-intersection mode) and print every
// resulting record.
type Intersect struct {
	A    string `short:"a" default:"" desc:"Flat-number curve sequence A"`
	B    string `short:"b" default:"" desc:"Flat-number curve sequence B"`
	Self bool   `desc:"Self-intersect sequence A instead of intersecting A with B"`
}

func main() {
	cmd := argp.NewCmd(&Intersect{}, "Cubic Bézier curve intersection toolkit")
	cmd.Parse()
}

// Run executes the command once argp has parsed flags into cmd.
func (cmd *Intersect) Run() error {
	if cmd.A == "" {
		return argp.ShowUsage
	}
	if cmd.Self && cmd.B != "" {
		return fmt.Errorf("-self cannot be combined with -b")
	}

	curvesA, err := decodeCurves(cmd.A)
	if err != nil {
		return fmt.Errorf("curve argument A: %w", err)
	}

	var records []curveisect.Record
	if cmd.Self {
		records = curveisect.SelfIntersect(curvesA)
	} else {
		if cmd.B == "" {
			return fmt.Errorf("curve argument B is required unless -self is given")
		}
		curvesB, err := decodeCurves(cmd.B)
		if err != nil {
			return fmt.Errorf("curve argument B: %w", err)
		}
		records = curveisect.Intersect(curvesA, curvesB)
	}

	for _, r := range records {
		fmt.Printf("t1=%g (%g,%g)  t2=%g (%g,%g)\n", r.T1, r.X1, r.Y1, r.T2, r.X2, r.Y2)
	}
	return nil
}
