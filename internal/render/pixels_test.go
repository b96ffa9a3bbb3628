package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{R: 1, G: 2, B: 3, A: 4}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		10, 20, 30, 255,
		1, 2, 3, 4,
		10, 20, 30, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d (buf=%v)", i, buf[i], want[i], buf)
		}
	}
}
