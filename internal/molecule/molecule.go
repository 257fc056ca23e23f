// Package molecule assembles branching structures by appending sub-trees to
// a parent through bond edge frames, plus the depth-first subtree
// operations (copy, select, color, join) used to build molecules out of
// molecules.
package molecule

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/multierr"

	"github.com/justinchang1124/helices/internal/frame"
)

// BondSpec orients one attachment relative to its parent. Angles in
// radians. The bond frame yaws about the parent's Z, pitches down, and the
// attachment sits Length along the bond axis, rolled about it (right-hand
// rule pointing toward the parent).
type BondSpec struct {
	Length float64
	Pitch  float64
	Yaw    float64
	Roll   float64
}

func (b BondSpec) validate() error {
	if b.Length < 0 {
		return fmt.Errorf("molecule: bond length %g is negative: %w", b.Length, frame.ErrInvalidConfiguration)
	}
	return nil
}

// Attachment pairs a detached (or reparentable) subtree root with the bond
// placing it.
type Attachment struct {
	Root frame.Handle
	Bond BondSpec
}

// MakeMolecule appends each attachment to parent through a fresh bond edge
// frame: a content-free pivot carrying the bond orientation, with the
// attachment's root re-parented beneath it. Attachments may themselves be
// products of earlier MakeMolecule calls, which is how arbitrary-depth
// branching structures grow. All attachments are validated before the
// first mutation; on error the tree is unchanged.
func MakeMolecule(t *frame.Tree, parent frame.Handle, atts []Attachment) error {
	if !t.Alive(parent) {
		return fmt.Errorf("molecule: parent %d: %w", parent, frame.ErrDetachedFrame)
	}
	var err error
	seen := make(map[frame.Handle]int, len(atts))
	for i, a := range atts {
		if !t.Alive(a.Root) {
			err = multierr.Append(err, fmt.Errorf("molecule: attachment %d root %d: %w", i, a.Root, frame.ErrDetachedFrame))
			continue
		}
		if first, dup := seen[a.Root]; dup {
			err = multierr.Append(err, fmt.Errorf("molecule: attachments %d and %d share root %q: %w", first, i, t.Name(a.Root), frame.ErrInvalidConfiguration))
		} else {
			seen[a.Root] = i
		}
		if t.IsAncestor(a.Root, parent) {
			err = multierr.Append(err, fmt.Errorf("molecule: attachment %d %q is an ancestor of %q: %w", i, t.Name(a.Root), t.Name(parent), frame.ErrCyclicStructure))
		}
		if e := a.Bond.validate(); e != nil {
			err = multierr.Append(err, fmt.Errorf("attachment %d: %w", i, e))
		}
	}
	if err != nil {
		return err
	}

	for i, a := range atts {
		bond := t.NewFrame(fmt.Sprintf("%s_bond_%d", t.Name(parent), i))
		t.SetParent(bond, parent)
		t.SetLocal(bond, frame.Placement{
			Rot: mgl64.QuatRotate(a.Bond.Yaw, mgl64.Vec3{0, 0, 1}).
				Mul(mgl64.QuatRotate(a.Bond.Pitch, mgl64.Vec3{0, 1, 0})).
				Normalize(),
		})
		t.SetDisplay(bond, frame.Display{Kind: "arrow", Size: 3 * a.Bond.Length})

		t.SetParent(a.Root, bond)
		t.SetLocal(a.Root, frame.Placement{
			Pos: mgl64.Vec3{0, 0, a.Bond.Length},
			// Flip to face the parent, then roll about the bond.
			Rot: mgl64.QuatRotate(a.Bond.Roll, mgl64.Vec3{0, 0, 1}).
				Mul(mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0})).
				Normalize(),
		})
	}
	return nil
}
