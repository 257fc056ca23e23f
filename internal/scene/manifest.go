package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/justinchang1124/helices/internal/frame"
)

// ManifestEntry is one frame's resolved world transform. This is the file
// form of the frame/host transform sync surface: the host reads it to place
// renderable objects and pivot placeholders one-to-one.
type ManifestEntry struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Position [3]float64 `json:"position"`
	Rotation [4]float64 `json:"rotation"` // quaternion, w x y z
	Content  string     `json:"content,omitempty"`
	Display  string     `json:"display,omitempty"`
	Size     float64    `json:"size,omitempty"`
}

// Manifest flattens the built roots depth-first into entries.
func Manifest(t *frame.Tree, roots []frame.Handle) []ManifestEntry {
	var entries []ManifestEntry
	for _, root := range roots {
		prefix := make(map[frame.Handle]string)
		t.Walk(root, func(h frame.Handle, _ int) {
			path := t.Name(h)
			if p := t.Parent(h); p != frame.None {
				if pp, ok := prefix[p]; ok {
					path = pp + "/" + path
				}
			}
			prefix[h] = path

			w := t.World(h)
			e := ManifestEntry{
				Name:     t.Name(h),
				Path:     path,
				Position: [3]float64{w.Pos[0], w.Pos[1], w.Pos[2]},
				Rotation: [4]float64{w.Rot.W, w.Rot.V[0], w.Rot.V[1], w.Rot.V[2]},
				Display:  t.Display(h).Kind,
				Size:     t.Display(h).Size,
			}
			if c := t.Content(h); c != nil {
				e.Content = c.ContentID()
			}
			entries = append(entries, e)
		})
	}
	return entries
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, t *frame.Tree, roots []frame.Handle) error {
	data, err := json.MarshalIndent(Manifest(t, roots), "", "  ")
	if err != nil {
		return fmt.Errorf("scene: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
