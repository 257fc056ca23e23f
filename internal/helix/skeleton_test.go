package helix

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/justinchang1124/helices/internal/frame"
)

const eps = 1e-9

func testConstants() Constants {
	return Constants{
		Radius:       1,
		Rise:         1,
		Twist:        math.Pi / 2,
		Tilt:         0,
		Strands:      1,
		StrandOffset: 0,
		Stretch:      1,
	}
}

func zPath() PathSpec {
	return PathSpec{Axis: mgl64.Vec3{0, 0, 1}}
}

func TestBuildSkeletonPairCount(t *testing.T) {
	for n := 0; n <= 8; n++ {
		tr := frame.NewTree()
		s, err := BuildSkeleton(tr, zPath(), n, testConstants(), 0)
		if err != nil {
			t.Fatalf("BuildSkeleton(count=%d) error = %v", n, err)
		}
		if got := len(s.Pairs); got != n {
			t.Errorf("count=%d: len(Pairs) = %d, want %d", n, got, n)
		}
		if !tr.Alive(s.Root) {
			t.Errorf("count=%d: root not alive", n)
		}
		for i, p := range s.Pairs {
			refPos := tr.World(p.Ref).Pos
			rotPos := tr.World(p.Rot).Pos
			if refPos.Sub(rotPos).Len() > eps {
				t.Errorf("count=%d pair %d: rotator pos %v != reference pos %v", n, i, rotPos, refPos)
			}
			if got := tr.Parent(p.Rot); got != p.Ref {
				t.Errorf("count=%d pair %d: rotator parent = %d, want reference %d", n, i, got, p.Ref)
			}
		}
	}
}

func TestBuildSkeletonReferenceChain(t *testing.T) {
	tr := frame.NewTree()
	s, err := BuildSkeleton(tr, zPath(), 4, testConstants(), 0)
	if err != nil {
		t.Fatalf("BuildSkeleton() error = %v", err)
	}
	if got := tr.Parent(s.Pairs[0].Ref); got != s.Root {
		t.Errorf("Parent(ref[0]) = %d, want root %d", got, s.Root)
	}
	for i := 1; i < len(s.Pairs); i++ {
		if got := tr.Parent(s.Pairs[i].Ref); got != s.Pairs[i-1].Ref {
			t.Errorf("Parent(ref[%d]) = %d, want ref[%d] %d", i, got, i-1, s.Pairs[i-1].Ref)
		}
	}
}

func TestBuildSkeletonAnalyticPositions(t *testing.T) {
	// radius 1, rise 1, quarter-turn twist about +Z
	tr := frame.NewTree()
	s, err := BuildSkeleton(tr, zPath(), 3, testConstants(), 0)
	if err != nil {
		t.Fatalf("BuildSkeleton() error = %v", err)
	}
	want := []mgl64.Vec3{
		{1, 0, 0},
		{0, 1, 1},
		{-1, 0, 2},
	}
	for i, p := range s.Pairs {
		got := tr.World(p.Ref).Pos
		if got.Sub(want[i]).Len() > eps {
			t.Errorf("ref[%d] pos = %v, want %v", i, got, want[i])
		}
	}
}

func TestBuildSkeletonTiltAccumulates(t *testing.T) {
	c := testConstants()
	c.Twist = 0
	c.Tilt = 1.2 * math.Pi / 180

	tr := frame.NewTree()
	s, err := BuildSkeleton(tr, zPath(), 6, c, 0)
	if err != nil {
		t.Fatalf("BuildSkeleton() error = %v", err)
	}
	axis := mgl64.Vec3{0, 0, 1}
	for i, p := range s.Pairs {
		fwd := tr.World(p.Ref).Forward()
		d := fwd.Dot(axis)
		if d > 1 {
			d = 1
		} else if d < -1 {
			d = -1
		}
		got := math.Acos(d)
		want := float64(i) * c.Tilt
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("rung %d tilt = %.6f rad, want %.6f", i, got, want)
		}
	}
}

func TestBuildSkeletonMovingEarlyReferenceCarriesPath(t *testing.T) {
	tr := frame.NewTree()
	s, _ := BuildSkeleton(tr, zPath(), 4, testConstants(), 0)

	before := tr.World(s.Pairs[3].Ref).Pos
	shift := mgl64.Vec3{10, 0, 0}

	// Translate ref[1]; everything downstream must move rigidly with it.
	local := tr.Local(s.Pairs[1].Ref)
	w1 := tr.World(s.Pairs[0].Ref)
	local.Pos = local.Pos.Add(w1.Rot.Inverse().Rotate(shift))
	tr.SetLocal(s.Pairs[1].Ref, local)

	after := tr.World(s.Pairs[3].Ref).Pos
	if after.Sub(before.Add(shift)).Len() > eps {
		t.Errorf("ref[3] pos after shifting ref[1] = %v, want %v", after, before.Add(shift))
	}
}

func TestBuildSkeletonControlPath(t *testing.T) {
	control := []frame.Placement{
		{Pos: mgl64.Vec3{0, 0, 0}, Rot: mgl64.QuatIdent()},
		{Pos: mgl64.Vec3{5, 1, 2}, Rot: mgl64.QuatRotate(0.4, mgl64.Vec3{0, 1, 0})},
		{Pos: mgl64.Vec3{9, -3, 4}, Rot: mgl64.QuatRotate(1.1, mgl64.Vec3{1, 0, 0})},
	}
	tr := frame.NewTree()
	s, err := BuildSkeleton(tr, PathSpec{Control: control}, 3, testConstants(), 0)
	if err != nil {
		t.Fatalf("BuildSkeleton(control) error = %v", err)
	}
	for i, p := range s.Pairs {
		got := tr.World(p.Ref).Pos
		if got.Sub(control[i].Pos).Len() > eps {
			t.Errorf("ref[%d] pos = %v, want control %v", i, got, control[i].Pos)
		}
	}
}

func TestBuildSkeletonValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Constants)
		count  int
		strand int
		path   PathSpec
	}{
		{"negative radius", func(c *Constants) { c.Radius = -1 }, 3, 0, zPath()},
		{"bad strand count", func(c *Constants) { c.Strands = 3 }, 3, 0, zPath()},
		{"zero stretch", func(c *Constants) { c.Stretch = 0 }, 3, 0, zPath()},
		{"bad strand index", func(c *Constants) {}, 3, 2, zPath()},
		{"negative count", func(c *Constants) {}, -1, 0, zPath()},
		{"control length mismatch", func(c *Constants) {}, 3, 0,
			PathSpec{Control: []frame.Placement{{Rot: mgl64.QuatIdent()}}}},
		{"zero axis", func(c *Constants) {}, 3, 0, PathSpec{}},
	}
	for _, tt := range tests {
		c := testConstants()
		tt.mutate(&c)
		tr := frame.NewTree()
		_, err := BuildSkeleton(tr, tt.path, tt.count, c, tt.strand)
		if !errors.Is(err, frame.ErrInvalidConfiguration) {
			t.Errorf("%s: error = %v, want ErrInvalidConfiguration", tt.name, err)
		}
		if got := tr.Count(); got != 0 {
			t.Errorf("%s: tree has %d frames after failed build, want 0", tt.name, got)
		}
	}
}

func TestBuildSkeletonNegativeTwistAndRise(t *testing.T) {
	c := testConstants()
	c.Twist = -math.Pi / 2
	c.Rise = -0.5

	tr := frame.NewTree()
	s, err := BuildSkeleton(tr, zPath(), 3, c, 0)
	if err != nil {
		t.Fatalf("BuildSkeleton(left-handed) error = %v", err)
	}
	got := tr.World(s.Pairs[1].Ref).Pos
	want := mgl64.Vec3{0, -1, -0.5}
	if got.Sub(want).Len() > eps {
		t.Errorf("ref[1] pos = %v, want %v", got, want)
	}
}
