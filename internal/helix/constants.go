package helix

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/justinchang1124/helices/internal/frame"
)

// Constants are the helical parameters, fixed per helix instance. Angles in
// radians. The sign of Twist encodes handedness (positive = right-handed);
// negative Rise is valid and reverses stacking order. There are no hidden
// defaults: a zero-valued Constants fails Validate.
type Constants struct {
	// Radius is the distance of each rung center from the path axis.
	Radius float64
	// Rise is the axial distance between consecutive rungs.
	Rise float64
	// Twist is the signed rotation about the axis per rung.
	Twist float64
	// Tilt is the inclination added per rung, accumulating down the chain
	// (rung i carries i*Tilt); it shapes the major/minor grooves.
	Tilt float64
	// Strands is 1 or 2.
	Strands int
	// StrandOffset is the angular displacement of the second strand
	// relative to the first.
	StrandOffset float64
	// Antiparallel reverses the second strand's sequence and forward
	// direction.
	Antiparallel bool
	// Stretch scales the rise for backbone visualization without touching
	// the logical sequence index. Must be positive; 1 means none.
	Stretch float64
}

// Validate checks the constants, accumulating every violation.
func (c Constants) Validate() error {
	var err error
	if c.Radius < 0 {
		err = multierr.Append(err, fmt.Errorf("helix: radius %g is negative: %w", c.Radius, frame.ErrInvalidConfiguration))
	}
	if c.Strands != 1 && c.Strands != 2 {
		err = multierr.Append(err, fmt.Errorf("helix: strand count %d not in {1, 2}: %w", c.Strands, frame.ErrInvalidConfiguration))
	}
	if c.Stretch <= 0 {
		err = multierr.Append(err, fmt.Errorf("helix: stretch %g is not positive: %w", c.Stretch, frame.ErrInvalidConfiguration))
	}
	return err
}

// BDNA returns B-form DNA constants: 10.5 rungs per turn, right-handed,
// 1.10 radius (so that base inner edges meet at the 135 degree strand
// offset), 0.332 rise, 1.2 degree tilt.
func BDNA(stretch float64) Constants {
	return Constants{
		Radius:       1.10,
		Rise:         0.332,
		Twist:        2 * math.Pi / 10.5,
		Tilt:         1.2 * math.Pi / 180,
		Strands:      2,
		StrandOffset: 135 * math.Pi / 180,
		Antiparallel: true,
		Stretch:      stretch,
	}
}
