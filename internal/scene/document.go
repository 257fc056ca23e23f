// Package scene loads declarative scene documents (YAML) describing
// elements, molecules, and helices, builds them into a frame tree, and
// exports host-facing artifacts: a world-transform manifest and coiling
// keyframe tracks.
package scene

import (
	"fmt"
	"math"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/justinchang1124/helices/internal/frame"
	"github.com/justinchang1124/helices/internal/helix"
	"github.com/justinchang1124/helices/internal/sequence"
)

// Document is a full scene description. Angles are degrees in the file and
// converted to radians at the core boundary.
type Document struct {
	Name      string        `yaml:"name"`
	Elements  []ElementDef  `yaml:"elements"`
	Molecules []MoleculeDef `yaml:"molecules"`
	Helices   []HelixDef    `yaml:"helices"`
}

// ElementDef declares a leaf content template (an atom primitive).
type ElementDef struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// MoleculeDef builds a branching structure from previously declared
// elements and molecules.
type MoleculeDef struct {
	Name        string          `yaml:"name"`
	Parent      string          `yaml:"parent"`
	Join        bool            `yaml:"join"`
	Origin      [3]float64      `yaml:"origin"`
	Attachments []AttachmentDef `yaml:"attachments"`
}

// AttachmentDef is one bond in a molecule definition.
type AttachmentDef struct {
	Of       string  `yaml:"of"`
	Length   float64 `yaml:"length"`
	PitchDeg float64 `yaml:"pitch_deg"`
	YawDeg   float64 `yaml:"yaw_deg"`
	RollDeg  float64 `yaml:"roll_deg"`
}

// HelixDef builds a helix from a sequence and helical constants. Preset
// "b-dna" fills the constants (stretch still explicit); otherwise every
// field is required.
type HelixDef struct {
	Name            string     `yaml:"name"`
	Sequence        string     `yaml:"sequence"`
	Pairing         string     `yaml:"pairing"` // dna, rna or identity
	Preset          string     `yaml:"preset"`
	Radius          float64    `yaml:"radius"`
	Rise            float64    `yaml:"rise"`
	TwistDeg        float64    `yaml:"twist_deg"`
	TiltDeg         float64    `yaml:"tilt_deg"`
	Strands         int        `yaml:"strands"`
	StrandOffsetDeg float64    `yaml:"strand_offset_deg"`
	Antiparallel    bool       `yaml:"antiparallel"`
	Stretch         float64    `yaml:"stretch"`
	Origin          [3]float64 `yaml:"origin"`
	Axis            [3]float64 `yaml:"axis"`
}

// Load reads and validates a scene document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return &doc, nil
}

// Validate checks the document for duplicate names, dangling references,
// and invalid sequences, accumulating every violation.
func (d *Document) Validate() error {
	var err error
	seen := make(map[string]bool)
	declare := func(kind, name string) {
		if name == "" {
			err = multierr.Append(err, fmt.Errorf("scene: %s with empty name: %w", kind, frame.ErrInvalidConfiguration))
			return
		}
		if seen[name] {
			err = multierr.Append(err, fmt.Errorf("scene: duplicate name %q: %w", name, frame.ErrInvalidConfiguration))
		}
		seen[name] = true
	}

	for _, e := range d.Elements {
		declare("element", e.Name)
	}
	for _, m := range d.Molecules {
		declare("molecule", m.Name)
		if !seen[m.Parent] {
			err = multierr.Append(err, fmt.Errorf("scene: molecule %q: unknown parent %q: %w", m.Name, m.Parent, frame.ErrUnknownRung))
		}
		for i, a := range m.Attachments {
			if !seen[a.Of] {
				err = multierr.Append(err, fmt.Errorf("scene: molecule %q attachment %d: unknown group %q: %w", m.Name, i, a.Of, frame.ErrUnknownRung))
			}
		}
	}
	for _, h := range d.Helices {
		declare("helix", h.Name)
		if h.Sequence == "" {
			err = multierr.Append(err, fmt.Errorf("scene: helix %q: empty sequence: %w", h.Name, frame.ErrInvalidConfiguration))
		}
		if h.Pairing != "" && !sequence.Valid(h.Sequence) {
			err = multierr.Append(err, fmt.Errorf("scene: helix %q: sequence is not nucleotides: %w", h.Name, frame.ErrInvalidConfiguration))
		}
		switch h.Pairing {
		case "", "identity", "dna", "rna":
		default:
			err = multierr.Append(err, fmt.Errorf("scene: helix %q: unknown pairing %q: %w", h.Name, h.Pairing, frame.ErrInvalidConfiguration))
		}
		if e := h.Constants().Validate(); e != nil {
			err = multierr.Append(err, fmt.Errorf("helix %q: %w", h.Name, e))
		}
	}
	return err
}

// Constants resolves the helix definition to core constants, radians.
func (h HelixDef) Constants() helix.Constants {
	if h.Preset == "b-dna" {
		return helix.BDNA(h.Stretch)
	}
	return helix.Constants{
		Radius:       h.Radius,
		Rise:         h.Rise,
		Twist:        h.TwistDeg * math.Pi / 180,
		Tilt:         h.TiltDeg * math.Pi / 180,
		Strands:      h.Strands,
		StrandOffset: h.StrandOffsetDeg * math.Pi / 180,
		Antiparallel: h.Antiparallel,
		Stretch:      h.Stretch,
	}
}

func (h HelixDef) pairing() func(string) string {
	switch h.Pairing {
	case "dna":
		return sequence.ComplementDNA
	case "rna":
		return sequence.ComplementRNA
	}
	return sequence.Identity
}
