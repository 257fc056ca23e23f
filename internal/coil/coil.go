package coil

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/justinchang1124/helices/internal/frame"
	"github.com/justinchang1124/helices/internal/helix"
)

// Sink receives resulting rotator orientations as coiling is applied. The
// core is stateless with respect to time; writing samples into a timeline
// or keyframe store is the host's responsibility.
type Sink interface {
	Keyframe(h frame.Handle, rot mgl64.Quat)
}

// RateFunc maps a rung's geometric index to its coiling angle per unit
// coil amount, enabling per-position easing such as coiling that
// propagates from one end.
type RateFunc func(rung int) float64

// UniformRate is the default: rung i unwinds by i times the helical twist,
// so a coil amount of -1 exactly unwinds the helix.
func UniformRate(c helix.Constants) RateFunc {
	return func(rung int) float64 { return float64(rung) * c.Twist }
}

// RotateSimilars applies the same delta to every rotator, each about its
// own reference frame's (parent's) forward axis. Corresponding parts of
// every rung rotate identically regardless of sequence position, which
// keeps posed rungs congruent across the helix and avoids self-collision
// from uneven twisting. All frames are validated before the first
// rotation.
func RotateSimilars(t *frame.Tree, rotators []frame.Handle, delta float64) error {
	for _, h := range rotators {
		if !t.Alive(h) {
			return fmt.Errorf("coil: rotator %d: %w", h, frame.ErrDetachedFrame)
		}
		if t.Parent(h) == frame.None {
			return fmt.Errorf("coil: rotator %d has no reference frame: %w", h, frame.ErrInvalidConfiguration)
		}
	}
	for _, h := range rotators {
		if err := RotateBond(t, t.Parent(h), h, delta); err != nil {
			return err
		}
	}
	return nil
}

// CoilCollection turns every rotator of s by amount*rate(rung) about its
// reference axis, rate nil meaning UniformRate. Because a rotator's
// position is pinned to its reference frame, repeated coiling never
// perturbs the helical path; only orientations change, and coiling by
// -amount afterwards restores them. If sink is non-nil it receives each
// rotator's resulting world orientation for animation hand-off.
func CoilCollection(t *frame.Tree, s *helix.Structure, amount float64, rate RateFunc, sink Sink) error {
	if rate == nil {
		rate = UniformRate(s.Consts)
	}
	for _, sk := range s.Skeletons {
		for _, p := range sk.Pairs {
			if !t.Alive(p.Ref) || !t.Alive(p.Rot) {
				return fmt.Errorf("coil: skeleton pair %d/%d: %w", p.Ref, p.Rot, frame.ErrDetachedFrame)
			}
		}
	}
	for _, sk := range s.Skeletons {
		n := len(sk.Pairs)
		for i, p := range sk.Pairs {
			// Both strands key the angle off the geometric rung so paired
			// bases stay in step.
			rung := i
			if sk.Strand == 1 && s.Consts.Antiparallel {
				rung = n - 1 - i
			}
			if err := RotateBond(t, p.Ref, p.Rot, amount*rate(rung)); err != nil {
				return err
			}
			if sink != nil {
				sink.Keyframe(p.Rot, t.World(p.Rot).Rot)
			}
		}
	}
	return nil
}
