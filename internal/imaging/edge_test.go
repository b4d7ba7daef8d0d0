package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestPrepareForEntropy_FlatImageIsBlack(t *testing.T) {
	img := newSolidImage(40, 30, color.RGBA{200, 100, 50, 255})

	out := PrepareForEntropy(img)
	if out.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Fatalf("bounds: got %v", out.Bounds())
	}

	// no edges anywhere away from the border
	for y := 5; y < 25; y++ {
		for x := 5; x < 35; x++ {
			if r, g, b := SamplePixel(out, x, y); r != 0 || g != 0 || b != 0 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want black", x, y, r, g, b)
			}
		}
	}
}

func TestPrepareForEntropy_HighlightsEdges(t *testing.T) {
	img := newSolidImage(60, 60, color.Black)
	for y := 20; y < 40; y++ {
		for x := 20; x < 40; x++ {
			img.Set(x, y, color.White)
		}
	}

	out := PrepareForEntropy(img)

	edge, _, _ := SamplePixel(out, 20, 30)
	far, _, _ := SamplePixel(out, 5, 5)
	if edge <= far {
		t.Errorf("edge brightness %d should exceed background %d", edge, far)
	}

	// grayscale output
	r, g, b := SamplePixel(out, 20, 30)
	if r != g || g != b {
		t.Errorf("expected gray, got (%d,%d,%d)", r, g, b)
	}
}

func TestPrepareForEntropy_DoesNotModifySource(t *testing.T) {
	img := newSolidImage(10, 10, color.White)
	img.Set(5, 5, color.Black)

	PrepareForEntropy(img)

	if r, _, _ := SamplePixel(img, 5, 5); r != 0 {
		t.Error("source image was modified")
	}
	if r, _, _ := SamplePixel(img, 0, 0); r != 255 {
		t.Error("source image was modified")
	}
}
