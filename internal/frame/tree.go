// Package frame implements the pivot-frame arena underlying helix and
// molecule assembly. Frames are indexed by integer handle and owned by a
// Tree; parent/child edges form a forest of acyclic transform hierarchies.
// A frame's world transform is the composition of its local transform with
// its parent chain, evaluated top-down.
//
// A Tree is not safe for concurrent mutation; a single logical owner
// mutates a given tree at a time. Independent trees need no coordination.
package frame

import (
	"fmt"

	"github.com/justinchang1124/helices/internal/content"
)

// Handle identifies a frame within its Tree. The low bits index the arena
// slot and the high bits carry the slot's generation, bumped every time a
// frame is destroyed, so a handle held across a destroy stays invalid even
// after the slot is recycled for a new frame.
type Handle int64

// None is the null handle.
const None Handle = -1

func newHandle(slot int, gen uint32) Handle {
	return Handle(int64(gen)<<32 | int64(uint32(slot)))
}

func (h Handle) slot() int { return int(uint32(h)) }

func (h Handle) gen() uint32 { return uint32(uint64(h) >> 32) }

// Display is a host-side visualization hint for non-rendered pivot frames
// (the "empty" concept). The core never interprets it.
type Display struct {
	Kind string // "axes", "cube", "arrow" or empty
	Size float64
}

type node struct {
	name     string
	local    Placement
	parent   Handle
	children []Handle
	content  content.Content
	display  Display
	gen      uint32
	alive    bool
}

// Tree is an arena of frames.
type Tree struct {
	nodes []node
	free  []int
	count int
}

// NewTree returns an empty arena.
func NewTree() *Tree {
	return &Tree{}
}

// NewFrame creates a detached root frame with identity local transform.
func (t *Tree) NewFrame(name string) Handle {
	t.count++
	if len(t.free) > 0 {
		slot := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[slot] = node{
			name:   name,
			local:  Identity(),
			parent: None,
			gen:    t.nodes[slot].gen,
			alive:  true,
		}
		return newHandle(slot, t.nodes[slot].gen)
	}
	t.nodes = append(t.nodes, node{
		name:   name,
		local:  Identity(),
		parent: None,
		alive:  true,
	})
	return newHandle(len(t.nodes)-1, 0)
}

// Alive reports whether h refers to a live frame. Handles into destroyed
// frames stay dead forever; a recycled slot carries a new generation.
func (t *Tree) Alive(h Handle) bool {
	if h < 0 {
		return false
	}
	s := h.slot()
	return s < len(t.nodes) && t.nodes[s].alive && t.nodes[s].gen == h.gen()
}

// Count returns the number of live frames.
func (t *Tree) Count() int {
	return t.count
}

func (t *Tree) check(h Handle) error {
	if !t.Alive(h) {
		return fmt.Errorf("frame: handle %d: %w", h, ErrDetachedFrame)
	}
	return nil
}

// Name returns the frame's name.
func (t *Tree) Name(h Handle) string {
	if !t.Alive(h) {
		return ""
	}
	return t.nodes[h.slot()].name
}

// Local returns the frame's local placement relative to its parent.
func (t *Tree) Local(h Handle) Placement {
	if !t.Alive(h) {
		return Identity()
	}
	return t.nodes[h.slot()].local
}

// SetLocal replaces the frame's local placement.
func (t *Tree) SetLocal(h Handle, p Placement) error {
	if err := t.check(h); err != nil {
		return err
	}
	t.nodes[h.slot()].local = p
	return nil
}

// World returns the frame's resolved world placement.
func (t *Tree) World(h Handle) Placement {
	if !t.Alive(h) {
		return Identity()
	}
	// Collect the parent chain, then compose top-down.
	var chain []Handle
	for cur := h; cur != None; cur = t.nodes[cur.slot()].parent {
		chain = append(chain, cur)
	}
	w := Identity()
	for i := len(chain) - 1; i >= 0; i-- {
		w = w.Mul(t.nodes[chain[i].slot()].local)
	}
	return w
}

// SetWorld sets the frame's local placement so that its resolved world
// placement equals p.
func (t *Tree) SetWorld(h Handle, p Placement) error {
	if err := t.check(h); err != nil {
		return err
	}
	parent := t.nodes[h.slot()].parent
	if parent == None {
		t.nodes[h.slot()].local = p
		return nil
	}
	t.nodes[h.slot()].local = Relative(t.World(parent), p)
	return nil
}

// Parent returns the frame's parent, or None for roots.
func (t *Tree) Parent(h Handle) Handle {
	if !t.Alive(h) {
		return None
	}
	return t.nodes[h.slot()].parent
}

// Children returns the frame's children in attachment order.
func (t *Tree) Children(h Handle) []Handle {
	if !t.Alive(h) {
		return nil
	}
	out := make([]Handle, len(t.nodes[h.slot()].children))
	copy(out, t.nodes[h.slot()].children)
	return out
}

// IsAncestor reports whether a is b or an ancestor of b.
func (t *Tree) IsAncestor(a, b Handle) bool {
	if !t.Alive(a) || !t.Alive(b) {
		return false
	}
	for cur := b; cur != None; cur = t.nodes[cur.slot()].parent {
		if cur == a {
			return true
		}
	}
	return false
}

// SetParent reattaches child under parent, keeping the child's local
// placement. Fails with ErrCyclicStructure if child is parent or one of
// parent's ancestors, leaving the tree unmodified.
func (t *Tree) SetParent(child, parent Handle) error {
	if err := t.check(child); err != nil {
		return err
	}
	if err := t.check(parent); err != nil {
		return err
	}
	if t.IsAncestor(child, parent) {
		return fmt.Errorf("frame: %q under %q: %w", t.nodes[child.slot()].name, t.nodes[parent.slot()].name, ErrCyclicStructure)
	}
	t.detach(child)
	t.nodes[child.slot()].parent = parent
	t.nodes[parent.slot()].children = append(t.nodes[parent.slot()].children, child)
	return nil
}

// Detach removes the frame from its parent, making it a root. The frame and
// its subtree stay alive; the caller owns them.
func (t *Tree) Detach(h Handle) error {
	if err := t.check(h); err != nil {
		return err
	}
	t.detach(h)
	return nil
}

func (t *Tree) detach(h Handle) {
	p := t.nodes[h.slot()].parent
	if p == None {
		return
	}
	kids := t.nodes[p.slot()].children
	for i, c := range kids {
		if c == h {
			t.nodes[p.slot()].children = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	t.nodes[h.slot()].parent = None
}

// Destroy removes the frame and its whole subtree from the arena. Handles
// into the destroyed subtree become invalid and later access fails with
// ErrDetachedFrame, even after their slots are recycled.
func (t *Tree) Destroy(h Handle) error {
	if err := t.check(h); err != nil {
		return err
	}
	t.detach(h)
	doomed := t.collect(h)
	for _, d := range doomed {
		s := d.slot()
		t.nodes[s] = node{parent: None, gen: t.nodes[s].gen + 1}
		t.free = append(t.free, s)
		t.count--
	}
	return nil
}

// Content returns the frame's attached content, nil for pivot-only frames.
func (t *Tree) Content(h Handle) content.Content {
	if !t.Alive(h) {
		return nil
	}
	return t.nodes[h.slot()].content
}

// SetContent attaches opaque content to the frame.
func (t *Tree) SetContent(h Handle, c content.Content) error {
	if err := t.check(h); err != nil {
		return err
	}
	t.nodes[h.slot()].content = c
	return nil
}

// Display returns the frame's visualization hint.
func (t *Tree) Display(h Handle) Display {
	if !t.Alive(h) {
		return Display{}
	}
	return t.nodes[h.slot()].display
}

// SetDisplay stores a visualization hint on the frame.
func (t *Tree) SetDisplay(h Handle, d Display) error {
	if err := t.check(h); err != nil {
		return err
	}
	t.nodes[h.slot()].display = d
	return nil
}

// Walk visits the subtree rooted at h depth-first, pre-order, children in
// attachment order. Iterative so arbitrarily deep molecule trees stay
// bounded.
func (t *Tree) Walk(h Handle, visit func(h Handle, depth int)) error {
	if err := t.check(h); err != nil {
		return err
	}
	type item struct {
		h     Handle
		depth int
	}
	stack := []item{{h, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(it.h, it.depth)
		kids := t.nodes[it.h.slot()].children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{kids[i], it.depth + 1})
		}
	}
	return nil
}

func (t *Tree) collect(h Handle) []Handle {
	var out []Handle
	t.Walk(h, func(n Handle, _ int) { out = append(out, n) })
	return out
}
