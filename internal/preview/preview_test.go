package preview

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/justinchang1124/helices/internal/content"
	"github.com/justinchang1124/helices/internal/frame"
)

func TestRenderDrawsContentFrames(t *testing.T) {
	tr := frame.NewTree()
	root := tr.NewFrame("root")
	for i := 0; i < 3; i++ {
		h := tr.NewFrame("atom")
		tr.SetParent(h, root)
		tr.SetLocal(h, frame.Placement{Pos: mgl64.Vec3{float64(i), 0, float64(i)}, Rot: mgl64.QuatIdent()})
		tr.SetContent(h, content.NewPlaceholder("A"))
	}

	img := Render(tr, []frame.Handle{root}, Options{Size: 64, Supersample: 2})
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 64) {
		t.Fatalf("bounds = %v, want 64x64", got)
	}
	var painted int
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Errorf("render produced a blank image")
	}
}

func TestRenderEmptyTree(t *testing.T) {
	tr := frame.NewTree()
	root := tr.NewFrame("root") // pivot only, no content
	img := Render(tr, []frame.Handle{root}, Options{Size: 32})
	if got := img.Bounds(); got != image.Rect(0, 0, 32, 32) {
		t.Fatalf("bounds = %v, want 32x32", got)
	}
}

func TestIDColorStableAcrossClones(t *testing.T) {
	a1 := content.NewPlaceholder("A")
	a2 := a1.Clone()
	b := content.NewPlaceholder("B")
	if idColor(a1.ContentID()) != idColor(a2.ContentID()) {
		t.Errorf("clones of the same label got different colors")
	}
	if idColor(a1.ContentID()) == idColor(b.ContentID()) {
		t.Errorf("labels A and B share a color")
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	out := Downsample(src, 32)
	if got := out.Bounds(); got != image.Rect(0, 0, 32, 32) {
		t.Fatalf("bounds = %v, want 32x32", got)
	}
	same := Downsample(src, 128)
	if got := same.Bounds(); got != image.Rect(0, 0, 128, 128) {
		t.Fatalf("bounds = %v, want unchanged 128x128", got)
	}
}
