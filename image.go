package quadtree

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/bmp"
)

// Image renders the tree into a BMP file at path: every node boundary
// in red and every stored item's bounds in green on a black background.
// One world unit maps to one pixel, so it is only practical for worlds
// with modest coordinate ranges. Intended as a debugging aid.
func (t *Tree) Image(path string) error {
	b := t.root.boundary
	frame := image.NewRGBA(image.Rect(int(b.X), int(b.Y), int(b.X+b.Width)+1, int(b.Y+b.Height)+1))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{color.Black}, image.ZP, draw.Src)
	col := color.RGBA{255, 0, 0, 255}

	HLine := func(x1, y, x2 int) {
		for ; x1 <= x2; x1++ {
			frame.Set(x1, y, col)
		}
	}

	// VLine draws a vertical line
	VLine := func(x, y1, y2 int) {
		for ; y1 <= y2; y1++ {
			frame.Set(x, y1, col)
		}
	}

	// Outline draws a rectangle utilizing HLine() and VLine()
	Outline := func(r Rect) {
		x1, y1 := int(r.X), int(r.Y)
		x2, y2 := int(r.X+r.Width), int(r.Y+r.Height)
		HLine(x1, y1, x2)
		HLine(x1, y2, x2)
		VLine(x1, y1, y2)
		VLine(x2, y1, y2)
	}

	var items []Item
	t.root.walk(func(n *node) {
		Outline(n.boundary)
		items = append(items, n.items...)
	})

	col = color.RGBA{0, 255, 0, 255}
	for _, it := range items {
		Outline(it.Bounds())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bmp.Encode(f, frame)
}
