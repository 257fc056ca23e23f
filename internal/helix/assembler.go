package helix

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/justinchang1124/helices/internal/content"
	"github.com/justinchang1124/helices/internal/frame"
	"github.com/justinchang1124/helices/internal/sequence"
)

// Structure is an assembled single- or double-stranded helix.
type Structure struct {
	Root      frame.Handle
	Consts    Constants
	Skeletons []*Skeleton
}

// Rotators returns every rotator frame in strand order then rung order.
func (s *Structure) Rotators() []frame.Handle {
	var out []frame.Handle
	for _, sk := range s.Skeletons {
		for _, p := range sk.Pairs {
			out = append(out, p.Rot)
		}
	}
	return out
}

// MakeHelix assembles a helix for seq along path. Index 0 is the 5' end of
// the first strand. For two strands, rung i of the second strand receives
// pairing(seq[len-1-i]) so the strands read antiparallel; pairing nil means
// identity self-pairing. All names (and, for double strands, all
// complements) must resolve in lib before any frame is created. Explicit
// control paths are limited to single strands.
func MakeHelix(t *frame.Tree, name string, seq []string, lib *content.Library, c Constants, path PathSpec, pairing func(string) string) (*Structure, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("helix: %s: empty sequence: %w", name, frame.ErrInvalidConfiguration)
	}
	// A control path pins every reference placement verbatim, so a second
	// strand would land on top of the first with no strand offset or
	// antiparallel geometry.
	if c.Strands == 2 && path.Control != nil {
		return nil, fmt.Errorf("helix: %s: control paths support single strands only: %w", name, frame.ErrInvalidConfiguration)
	}
	if pairing == nil {
		pairing = sequence.Identity
	}
	comp := sequence.Complement(seq, pairing)

	var err error
	for i, n := range seq {
		if _, ok := lib.Resolve(n); !ok {
			err = multierr.Append(err, fmt.Errorf("helix: %s: rung %d %q: %w", name, i, n, frame.ErrUnknownRung))
		}
	}
	if c.Strands == 2 {
		for i, n := range comp {
			if _, ok := lib.Resolve(n); !ok {
				err = multierr.Append(err, fmt.Errorf("helix: %s: complement rung %d %q: %w", name, i, n, frame.ErrUnknownRung))
			}
		}
	}
	if err != nil {
		return nil, err
	}

	s0, err := BuildSkeleton(t, path, len(seq), c, 0)
	if err != nil {
		return nil, err
	}
	for i, p := range s0.Pairs {
		tpl, _ := lib.Resolve(seq[i])
		Attach(t, p.Rot, tpl.Clone())
	}

	st := &Structure{Consts: c, Skeletons: []*Skeleton{s0}}
	if c.Strands == 1 {
		st.Root = s0.Root
		return st, nil
	}

	s1, err := BuildSkeleton(t, path, len(seq), c, 1)
	if err != nil {
		t.Destroy(s0.Root)
		return nil, err
	}
	// Rung i of the second strand is the complement of the rung it faces
	// spatially: with antiparallel order that is seq[len-1-i].
	for i, p := range s1.Pairs {
		j := i
		if c.Antiparallel {
			j = len(seq) - 1 - i
		}
		tpl, _ := lib.Resolve(comp[j])
		Attach(t, p.Rot, tpl.Clone())
	}

	st.Root = t.NewFrame(name)
	t.SetParent(s0.Root, st.Root)
	t.SetParent(s1.Root, st.Root)
	st.Skeletons = append(st.Skeletons, s1)
	return st, nil
}
