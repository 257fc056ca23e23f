// Package coil rotates frames about bond axes, and drives the synchronized
// rotations that coil and uncoil a helix without disturbing its path.
package coil

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/justinchang1124/helices/internal/frame"
)

// RotateBond rotates target's placement by delta about the axis frame's
// world forward (+Z) axis through the axis frame's world position, then
// re-expresses the result as target's local transform under its actual
// parent. The axis frame need not be the target's parent; it only supplies
// the pivot point and direction. Zero delta is an exact no-op, so repeated
// zero-delta calls compose to nothing.
func RotateBond(t *frame.Tree, axis, target frame.Handle, delta float64) error {
	if !t.Alive(axis) {
		return fmt.Errorf("coil: axis %d: %w", axis, frame.ErrDetachedFrame)
	}
	if !t.Alive(target) {
		return fmt.Errorf("coil: target %d: %w", target, frame.ErrDetachedFrame)
	}
	if delta == 0 {
		return nil
	}
	aw := t.World(axis)
	q := mgl64.QuatRotate(delta, aw.Forward())
	tw := t.World(target)
	return t.SetWorld(target, frame.Placement{
		Pos: q.Rotate(tw.Pos.Sub(aw.Pos)).Add(aw.Pos),
		Rot: q.Mul(tw.Rot).Normalize(),
	})
}
