package helix

import (
	"fmt"

	"github.com/justinchang1124/helices/internal/content"
	"github.com/justinchang1124/helices/internal/frame"
)

// Attach parents c under the rotator with identity local transform; the
// content supplies its own internal geometry. Returns the created content
// frame.
func Attach(t *frame.Tree, rotator frame.Handle, c content.Content) (frame.Handle, error) {
	if !t.Alive(rotator) {
		return frame.None, fmt.Errorf("helix: attach to %d: %w", rotator, frame.ErrDetachedFrame)
	}
	h := t.NewFrame(t.Name(rotator) + "_content")
	t.SetParent(h, rotator)
	t.SetContent(h, c)
	return h, nil
}

// ClearChildren strips every rotator of its attached content, keeping the
// skeleton for reuse. Idempotent: clearing an already bare skeleton is a
// no-op. External references into the removed content frames are
// invalidated; the skeleton frames themselves survive.
func ClearChildren(t *frame.Tree, s *Skeleton) error {
	for _, p := range s.Pairs {
		if !t.Alive(p.Rot) {
			return fmt.Errorf("helix: clear rotator %d: %w", p.Rot, frame.ErrDetachedFrame)
		}
	}
	for _, p := range s.Pairs {
		for _, child := range t.Children(p.Rot) {
			t.Destroy(child)
		}
	}
	return nil
}
