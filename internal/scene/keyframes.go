package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/justinchang1124/helices/internal/coil"
	"github.com/justinchang1124/helices/internal/frame"
	"github.com/justinchang1124/helices/internal/helix"
)

// CoilKey is one sampled timeline position: rotator world orientations by
// frame path at one host frame number.
type CoilKey struct {
	Frame     int                   `json:"frame"`
	Rotations map[string][4]float64 `json:"rotations"`
}

// CoilTrack is a sampled coil/uncoil trajectory for one helix, ready for a
// host to write into its own keyframe store.
type CoilTrack struct {
	Helix string    `json:"helix"`
	Keys  []CoilKey `json:"keys"`
}

type coilRecorder struct {
	t   *frame.Tree
	key CoilKey
}

func (r *coilRecorder) Keyframe(h frame.Handle, rot mgl64.Quat) {
	r.key.Rotations[r.t.Name(h)] = [4]float64{rot.W, rot.V[0], rot.V[1], rot.V[2]}
}

// RecordCoil coils s to amount over steps equal increments, then uncoils
// back, sampling rotator orientations at each step. framesPerStep spaces
// the host frame numbers. The tree is left as found: the ramp is symmetric
// and equal-and-opposite coiling restores every orientation.
func RecordCoil(t *frame.Tree, name string, s *helix.Structure, amount float64, steps, framesPerStep int) (*CoilTrack, error) {
	if steps < 1 {
		return nil, fmt.Errorf("scene: coil track needs at least 1 step: %w", frame.ErrInvalidConfiguration)
	}
	track := &CoilTrack{Helix: name}
	delta := amount / float64(steps)

	record := func(fr int, d float64) error {
		rec := &coilRecorder{t: t, key: CoilKey{Frame: fr, Rotations: make(map[string][4]float64)}}
		if err := coil.CoilCollection(t, s, d, nil, rec); err != nil {
			return err
		}
		track.Keys = append(track.Keys, rec.key)
		return nil
	}

	fr := 0
	for i := 0; i < steps; i++ {
		if err := record(fr, delta); err != nil {
			return nil, err
		}
		fr += framesPerStep
	}
	for i := 0; i < steps; i++ {
		if err := record(fr, -delta); err != nil {
			return nil, err
		}
		fr += framesPerStep
	}
	return track, nil
}

// WriteCoilTrack writes the track as indented JSON.
func WriteCoilTrack(path string, track *CoilTrack) error {
	data, err := json.MarshalIndent(track, "", "  ")
	if err != nil {
		return fmt.Errorf("scene: coil track: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
