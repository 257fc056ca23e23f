package frame

import "github.com/go-gl/mathgl/mgl64"

// Placement is a rigid transform: a position plus a unit-quaternion
// orientation. Value type, composes losslessly under repeated relative
// rotation (no Euler drift).
type Placement struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

// Identity returns the identity placement.
func Identity() Placement {
	return Placement{Rot: mgl64.QuatIdent()}
}

// Mul composes p with a child placement expressed in p's space.
func (p Placement) Mul(child Placement) Placement {
	return Placement{
		Pos: p.Rot.Rotate(child.Pos).Add(p.Pos),
		Rot: p.Rot.Mul(child.Rot).Normalize(),
	}
}

// Relative returns world re-expressed in parent's space, so that
// parent.Mul(Relative(parent, world)) == world.
func Relative(parent, world Placement) Placement {
	inv := parent.Rot.Inverse()
	return Placement{
		Pos: inv.Rotate(world.Pos.Sub(parent.Pos)),
		Rot: inv.Mul(world.Rot).Normalize(),
	}
}

// Forward returns the placement's local +Z axis in world space. The forward
// axis of a reference frame is the axis its rotator child spins about.
func (p Placement) Forward() mgl64.Vec3 {
	return p.Rot.Rotate(mgl64.Vec3{0, 0, 1})
}
