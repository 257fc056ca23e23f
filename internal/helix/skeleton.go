// Package helix builds helical pivot hierarchies: a chain of reference
// frames along a path, each with a rotator child sharing its position. The
// reference chain fixes the path; rotators carry the independently
// adjustable coiling rotation. Content attached under a rotator inherits
// both the path placement and the coiling angle.
package helix

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/justinchang1124/helices/internal/frame"
)

// PathSpec places a skeleton in space: either a straight axis (Origin +
// Axis) or an explicit ordered list of control placements for manually
// adjusted, non-linear paths. When Control is set its length must equal the
// rung count and Origin/Axis are ignored.
type PathSpec struct {
	Origin  mgl64.Vec3
	Axis    mgl64.Vec3
	Control []frame.Placement
}

// Pair is one rung position: a path-anchored reference frame and its
// rotator child. The rotator's position always equals the reference's;
// only its orientation is ever adjusted.
type Pair struct {
	Ref frame.Handle
	Rot frame.Handle
}

// Skeleton is a built pivot hierarchy for one strand.
type Skeleton struct {
	Root   frame.Handle
	Pairs  []Pair
	Consts Constants
	Strand int
}

// BuildSkeleton creates count reference/rotator pairs for the given strand
// (0 or 1). reference[0] parents under a synthetic root; reference[i+1]
// parents under reference[i], so moving an early reference carries the rest
// of the path rigidly. count 0 yields an empty pair list and a bare root.
func BuildSkeleton(t *frame.Tree, path PathSpec, count int, c Constants, strand int) (*Skeleton, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if strand != 0 && strand != 1 {
		return nil, fmt.Errorf("helix: strand index %d not in {0, 1}: %w", strand, frame.ErrInvalidConfiguration)
	}
	if count < 0 {
		return nil, fmt.Errorf("helix: rung count %d is negative: %w", count, frame.ErrInvalidConfiguration)
	}
	if path.Control != nil && len(path.Control) != count {
		return nil, fmt.Errorf("helix: path has %d control frames for %d rungs: %w", len(path.Control), count, frame.ErrInvalidConfiguration)
	}
	if path.Control == nil && path.Axis.Len() < 1e-12 && count > 0 {
		return nil, fmt.Errorf("helix: path axis is zero: %w", frame.ErrInvalidConfiguration)
	}

	s := &Skeleton{
		Root:   t.NewFrame(fmt.Sprintf("strand_%d", strand)),
		Consts: c,
		Strand: strand,
	}
	prev := s.Root
	for i := 0; i < count; i++ {
		var w frame.Placement
		if path.Control != nil {
			w = path.Control[i]
		} else {
			w = placeRung(path, count, c, strand, i)
		}
		ref := t.NewFrame(fmt.Sprintf("ref_%d_%d", strand, i))
		t.SetParent(ref, prev)
		t.SetWorld(ref, w)
		t.SetDisplay(ref, frame.Display{Kind: "axes", Size: c.Rise / 4})

		rot := t.NewFrame(fmt.Sprintf("rot_%d_%d", strand, i))
		t.SetParent(rot, ref)
		t.SetDisplay(rot, frame.Display{Kind: "cube", Size: c.Rise / 8})

		s.Pairs = append(s.Pairs, Pair{Ref: ref, Rot: rot})
		prev = ref
	}
	return s, nil
}

// placeRung computes the analytic world placement of rung ordinal i on one
// strand. For an antiparallel second strand the geometric order reverses,
// so its ordinal 0 aligns with the first strand's last rung, and the frame
// is flipped to run the opposite direction.
func placeRung(path PathSpec, count int, c Constants, strand, i int) frame.Placement {
	g := i
	flip := strand == 1 && c.Antiparallel
	if flip {
		g = count - 1 - i
	}

	u, v, w := axisBasis(path.Axis)
	theta := float64(g) * c.Twist
	z := float64(g) * c.Rise * c.Stretch
	if strand == 1 {
		theta += c.StrandOffset
		// The complement base sits slightly above its pair plane; this is
		// what separates the major and minor grooves.
		z += 2 * c.Radius * math.Sin(c.Tilt)
	}

	pos := path.Origin.
		Add(w.Mul(z)).
		Add(u.Mul(c.Radius * math.Cos(theta))).
		Add(v.Mul(c.Radius * math.Sin(theta)))

	// Face the axis (the -pi yaw), then apply the accumulated tilt; the
	// second strand is additionally turned upside down so its forward
	// direction opposes the first.
	tilt := -float64(g) * c.Tilt
	if strand == 1 {
		tilt = -tilt
	}
	rot := basisQuat(u, v, w).
		Mul(mgl64.QuatRotate(theta-math.Pi, mgl64.Vec3{0, 0, 1})).
		Mul(mgl64.QuatRotate(tilt, mgl64.Vec3{0, 1, 0}))
	if strand == 1 {
		rot = rot.Mul(mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0}))
	}
	return frame.Placement{Pos: pos, Rot: rot.Normalize()}
}

// axisBasis returns an orthonormal basis (u, v, w) with w along axis. For
// the canonical +Z axis it yields the world basis, keeping radial angle 0
// on +X.
func axisBasis(axis mgl64.Vec3) (u, v, w mgl64.Vec3) {
	w = axis.Normalize()
	helper := mgl64.Vec3{1, 0, 0}
	if math.Abs(w.Dot(helper)) > 0.9 {
		helper = mgl64.Vec3{0, 1, 0}
	}
	u = helper.Sub(w.Mul(helper.Dot(w))).Normalize()
	v = w.Cross(u)
	return u, v, w
}

func basisQuat(u, v, w mgl64.Vec3) mgl64.Quat {
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(u, v, w).Mat4())
}
