package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/justinchang1124/helices/internal/content"
	"github.com/justinchang1124/helices/internal/frame"
	"github.com/justinchang1124/helices/internal/helix"
	"github.com/justinchang1124/helices/internal/molecule"
	"github.com/justinchang1124/helices/internal/sequence"
)

// Result is a fully built scene.
type Result struct {
	Tree     *frame.Tree
	Roots    []frame.Handle // top-level structure roots, document order
	Helices  map[string]*helix.Structure
	Subtrees map[string]frame.Handle // non-joined molecule templates
	Library  *content.Library
}

// Builder turns documents into frame trees.
type Builder struct {
	log *zap.Logger
}

// NewBuilder returns a builder; a nil logger means silent.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

// Build constructs every molecule and helix in the document. Molecules are
// built in declaration order so later definitions can attach earlier ones;
// joined molecules become rung library entries usable as helix content.
func (b *Builder) Build(doc *Document) (*Result, error) {
	res := &Result{
		Tree:     frame.NewTree(),
		Helices:  make(map[string]*helix.Structure),
		Subtrees: make(map[string]frame.Handle),
		Library:  content.NewLibrary(),
	}

	for _, e := range doc.Elements {
		p := content.NewPlaceholder(e.Name)
		p.Color = e.Color
		res.Library.Register(e.Name, p)
	}
	b.log.Debug("registered elements", zap.Int("count", len(doc.Elements)))

	for _, m := range doc.Molecules {
		if err := b.buildMolecule(res, m); err != nil {
			return nil, err
		}
	}
	for _, h := range doc.Helices {
		if err := b.buildHelix(res, h); err != nil {
			return nil, err
		}
	}
	b.log.Info("scene built",
		zap.String("scene", doc.Name),
		zap.Int("frames", res.Tree.Count()),
		zap.Int("molecules", len(doc.Molecules)),
		zap.Int("helices", len(doc.Helices)))
	return res, nil
}

// instantiate produces a frame for the named group: a clone of a library
// template, or a deep copy of a previously built molecule subtree.
func (b *Builder) instantiate(res *Result, name string) (frame.Handle, error) {
	if tpl, ok := res.Library.Resolve(name); ok {
		h := res.Tree.NewFrame(name)
		res.Tree.SetContent(h, tpl.Clone())
		return h, nil
	}
	if root, ok := res.Subtrees[name]; ok {
		return molecule.CopySubtree(res.Tree, root, true)
	}
	return frame.None, fmt.Errorf("scene: no group %q: %w", name, frame.ErrUnknownRung)
}

func (b *Builder) buildMolecule(res *Result, def MoleculeDef) error {
	t := res.Tree
	root, err := b.instantiate(res, def.Parent)
	if err != nil {
		return fmt.Errorf("molecule %q: %w", def.Name, err)
	}
	t.SetWorld(root, frame.Placement{
		Pos: mgl64.Vec3{def.Origin[0], def.Origin[1], def.Origin[2]},
		Rot: mgl64.QuatIdent(),
	})

	atts := make([]molecule.Attachment, len(def.Attachments))
	for i, a := range def.Attachments {
		sub, err := b.instantiate(res, a.Of)
		if err != nil {
			return fmt.Errorf("molecule %q attachment %d: %w", def.Name, i, err)
		}
		atts[i] = molecule.Attachment{
			Root: sub,
			Bond: molecule.BondSpec{
				Length: a.Length,
				Pitch:  deg(a.PitchDeg),
				Yaw:    deg(a.YawDeg),
				Roll:   deg(a.RollDeg),
			},
		}
	}
	if err := molecule.MakeMolecule(t, root, atts); err != nil {
		return fmt.Errorf("molecule %q: %w", def.Name, err)
	}

	if def.Join {
		merged, joined, err := molecule.JoinSubtree(t, root)
		if err != nil {
			return fmt.Errorf("molecule %q: %w", def.Name, err)
		}
		res.Library.Register(def.Name, merged)
		res.Roots = append(res.Roots, joined)
		b.log.Debug("joined molecule", zap.String("name", def.Name), zap.String("content", merged.ContentID()))
		return nil
	}

	res.Subtrees[def.Name] = root
	res.Roots = append(res.Roots, root)
	b.log.Debug("built molecule", zap.String("name", def.Name), zap.Int("attachments", len(def.Attachments)))
	return nil
}

func (b *Builder) buildHelix(res *Result, def HelixDef) error {
	path := helix.PathSpec{
		Origin: mgl64.Vec3{def.Origin[0], def.Origin[1], def.Origin[2]},
		Axis:   mgl64.Vec3{def.Axis[0], def.Axis[1], def.Axis[2]},
	}
	if path.Axis.Len() == 0 {
		path.Axis = mgl64.Vec3{0, 0, 1}
	}
	st, err := helix.MakeHelix(res.Tree, def.Name, sequence.Split(def.Sequence),
		res.Library, def.Constants(), path, def.pairing())
	if err != nil {
		return err
	}
	res.Helices[def.Name] = st
	res.Roots = append(res.Roots, st.Root)
	b.log.Debug("built helix",
		zap.String("name", def.Name),
		zap.Int("rungs", len(def.Sequence)),
		zap.Int("strands", def.Constants().Strands))
	return nil
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}
