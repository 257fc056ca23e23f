package molecule

import (
	"fmt"

	"github.com/justinchang1124/helices/internal/content"
	"github.com/justinchang1124/helices/internal/frame"
)

// CopySubtree deep-copies every frame under root into a detached tree with
// the same shape, names, local placements, and display hints. Content
// references are shared unless deepContent is set, in which case each is
// cloned. The copy owns none of the original's frames.
func CopySubtree(t *frame.Tree, root frame.Handle, deepContent bool) (frame.Handle, error) {
	if !t.Alive(root) {
		return frame.None, fmt.Errorf("molecule: copy %d: %w", root, frame.ErrDetachedFrame)
	}
	clones := make(map[frame.Handle]frame.Handle)
	t.Walk(root, func(h frame.Handle, _ int) {
		dup := t.NewFrame(t.Name(h))
		t.SetLocal(dup, t.Local(h))
		t.SetDisplay(dup, t.Display(h))
		if c := t.Content(h); c != nil {
			if deepContent {
				c = c.Clone()
			}
			t.SetContent(dup, c)
		}
		clones[h] = dup
		if h != root {
			t.SetParent(dup, clones[t.Parent(h)])
		}
	})
	return clones[root], nil
}

// SelectSubtree returns every frame in the subtree, depth-first pre-order,
// for host-side selection.
func SelectSubtree(t *frame.Tree, root frame.Handle) ([]frame.Handle, error) {
	if !t.Alive(root) {
		return nil, fmt.Errorf("molecule: select %d: %w", root, frame.ErrDetachedFrame)
	}
	var out []frame.Handle
	t.Walk(root, func(h frame.Handle, _ int) { out = append(out, h) })
	return out, nil
}

// ColorSubtree applies rule to every content node in the subtree, keyed by
// the content and its depth below root. Pure side effect on content; frames
// are untouched.
func ColorSubtree(t *frame.Tree, root frame.Handle, rule func(c content.Content, depth int)) error {
	if !t.Alive(root) {
		return fmt.Errorf("molecule: color %d: %w", root, frame.ErrDetachedFrame)
	}
	t.Walk(root, func(h frame.Handle, depth int) {
		if c := t.Content(h); c != nil {
			rule(c, depth)
		}
	})
	return nil
}

// JoinSubtree collapses the subtree's content into one merged unit,
// discarding the bond empties: the subtree is destroyed and replaced by a
// single content frame at the root's world placement, under the root's
// former parent. Fails with ErrUnjoinableContent, tree unmodified, if the
// subtree holds no content or any content lacks a mergeable
// representation.
func JoinSubtree(t *frame.Tree, root frame.Handle) (content.Content, frame.Handle, error) {
	if !t.Alive(root) {
		return nil, frame.None, fmt.Errorf("molecule: join %d: %w", root, frame.ErrDetachedFrame)
	}
	var parts []content.Content
	t.Walk(root, func(h frame.Handle, _ int) {
		if c := t.Content(h); c != nil {
			parts = append(parts, c)
		}
	})
	if len(parts) == 0 {
		return nil, frame.None, fmt.Errorf("molecule: join %q: no content in subtree: %w", t.Name(root), frame.ErrUnjoinableContent)
	}
	for _, p := range parts {
		if _, ok := p.(content.Mergeable); !ok {
			return nil, frame.None, fmt.Errorf("molecule: join %q: content %q: %w", t.Name(root), p.ContentID(), frame.ErrUnjoinableContent)
		}
	}

	merged := parts[0]
	for _, p := range parts[1:] {
		var err error
		merged, err = merged.(content.Mergeable).Merge(p)
		if err != nil {
			return nil, frame.None, fmt.Errorf("molecule: join %q: %v: %w", t.Name(root), err, frame.ErrUnjoinableContent)
		}
	}

	world := t.World(root)
	parent := t.Parent(root)
	name := t.Name(root)
	t.Destroy(root)

	joined := t.NewFrame(name)
	if parent != frame.None {
		t.SetParent(joined, parent)
	}
	t.SetWorld(joined, world)
	t.SetContent(joined, merged)
	return merged, joined, nil
}
