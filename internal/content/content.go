// Package content defines the opaque content handles the geometry core
// attaches to frames. The core never inspects content geometry; it only
// creates parent/child frame relationships referencing these handles. The
// host resolves a handle to a renderable primitive.
package content

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Content is an opaque handle to host-resolved renderable content.
type Content interface {
	// ContentID is a stable identifier the host resolves.
	ContentID() string
	// Clone returns an independent copy with a fresh identity. Attaching a
	// library template to a rung always attaches a clone.
	Clone() Content
}

// Mergeable content can be collapsed with other content into one unit, the
// capability behind recursive join.
type Mergeable interface {
	Content
	Merge(other Content) (Content, error)
}

// Library maps rung names to content templates. Supplied by the host
// alongside the sequence input.
type Library struct {
	templates map[string]Content
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{templates: make(map[string]Content)}
}

// Register adds a template under name, replacing any previous entry.
func (l *Library) Register(name string, c Content) {
	l.templates[name] = c
}

// Resolve looks up a template by rung name.
func (l *Library) Resolve(name string) (Content, bool) {
	c, ok := l.templates[name]
	return c, ok
}

// Names returns all registered rung names, sorted.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.templates))
	for n := range l.templates {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Placeholder is the default host content: a named unit with an optional
// color, standing in for a mesh or primitive. It merges into a Group.
type Placeholder struct {
	id    string
	Label string
	Color string
}

// NewPlaceholder creates placeholder content with a unique identity.
func NewPlaceholder(label string) *Placeholder {
	return &Placeholder{id: label + "-" + uuid.NewString()[:8], Label: label}
}

// ContentID implements Content.
func (p *Placeholder) ContentID() string { return p.id }

// Clone implements Content.
func (p *Placeholder) Clone() Content {
	c := NewPlaceholder(p.Label)
	c.Color = p.Color
	return c
}

// Merge implements Mergeable by wrapping both parts in a Group.
func (p *Placeholder) Merge(other Content) (Content, error) {
	return newGroup(p, other)
}

// Group is merged content: a flat ordered collection of parts presented to
// the host as a single unit.
type Group struct {
	id    string
	Parts []Content
}

// NewGroup merges parts into one group, flattening nested groups.
func NewGroup(parts ...Content) (*Group, error) {
	g := &Group{id: "group-" + uuid.NewString()[:8]}
	for _, p := range parts {
		if err := g.absorb(p); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func newGroup(a, b Content) (*Group, error) {
	return NewGroup(a, b)
}

func (g *Group) absorb(c Content) error {
	switch v := c.(type) {
	case *Group:
		g.Parts = append(g.Parts, v.Parts...)
	case Mergeable:
		g.Parts = append(g.Parts, v)
	default:
		return fmt.Errorf("content %q has no mergeable representation", c.ContentID())
	}
	return nil
}

// ContentID implements Content.
func (g *Group) ContentID() string { return g.id }

// Clone implements Content.
func (g *Group) Clone() Content {
	parts := make([]Content, len(g.Parts))
	for i, p := range g.Parts {
		parts[i] = p.Clone()
	}
	c, _ := NewGroup(parts...)
	return c
}

// Merge implements Mergeable.
func (g *Group) Merge(other Content) (Content, error) {
	merged := g.Clone().(*Group)
	if err := merged.absorb(other); err != nil {
		return nil, err
	}
	return merged, nil
}
