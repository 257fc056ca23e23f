// Package preview renders a schematic orthographic snapshot of a built
// frame tree: one disc per content frame, colored by content identity.
// It is a host-side visualization aid mirroring the manifest, not a
// molecular renderer.
package preview

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"github.com/justinchang1124/helices/internal/frame"
)

// Options controls the snapshot.
type Options struct {
	Size        int // output edge in pixels
	Supersample int // render at Size*Supersample, then downsample
}

// Render projects every content frame under roots onto the XZ plane (side
// view) and draws it as a filled disc. Pivot-only frames are skipped.
func Render(t *frame.Tree, roots []frame.Handle, opt Options) *image.NRGBA {
	if opt.Size <= 0 {
		opt.Size = 256
	}
	if opt.Supersample <= 0 {
		opt.Supersample = 2
	}

	type dot struct {
		x, z float64
		col  color.NRGBA
	}
	var dots []dot
	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, root := range roots {
		t.Walk(root, func(h frame.Handle, _ int) {
			c := t.Content(h)
			if c == nil {
				return
			}
			w := t.World(h)
			d := dot{x: w.Pos[0], z: w.Pos[2], col: idColor(c.ContentID())}
			dots = append(dots, d)
			minX, maxX = math.Min(minX, d.x), math.Max(maxX, d.x)
			minZ, maxZ = math.Min(minZ, d.z), math.Max(maxZ, d.z)
		})
	}

	big := opt.Size * opt.Supersample
	img := image.NewNRGBA(image.Rect(0, 0, big, big))
	if len(dots) == 0 {
		return Downsample(img, opt.Size)
	}

	span := math.Max(maxX-minX, maxZ-minZ)
	if span < 1e-9 {
		span = 1
	}
	margin := 0.08 * span
	scale := float64(big) / (span + 2*margin)
	radius := math.Max(2, float64(big)/120)

	for _, d := range dots {
		px := (d.x - minX + margin + (span-(maxX-minX))/2) * scale
		// Image y grows downward; world z grows upward.
		py := float64(big) - (d.z-minZ+margin+(span-(maxZ-minZ))/2)*scale
		disc(img, px, py, radius, d.col)
	}
	return Downsample(img, opt.Size)
}

func disc(img *image.NRGBA, cx, cy, r float64, col color.NRGBA) {
	x0, x1 := int(cx-r)-1, int(cx+r)+1
	y0, y1 := int(cy-r)-1, int(cy+r)+1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !(image.Point{x, y}.In(img.Bounds())) {
				continue
			}
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

// idColor derives a stable, saturated color from a content identifier. The
// label part of a placeholder id precedes the random suffix, so rungs of
// the same kind share a hue.
func idColor(id string) color.NRGBA {
	if i := lastDash(id); i > 0 {
		id = id[:i]
	}
	h := fnv.New32a()
	h.Write([]byte(id))
	v := h.Sum32()
	return color.NRGBA{
		R: 64 + uint8(v)%192,
		G: 64 + uint8(v>>8)%192,
		B: 64 + uint8(v>>16)%192,
		A: 255,
	}
}

func lastDash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			return i
		}
	}
	return -1
}
