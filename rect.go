package quadtree

// Rect is an axis-aligned rectangle anchored at its minimum corner.
// Width and Height must be non-negative; subdivision only ever
// produces non-negative halves, so the tree never constructs anything
// else on its own.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside r. Points on
// an edge count as inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and o overlap. The test only fails when
// one rectangle is strictly outside the other on some axis, so
// rectangles that merely share an edge or a corner still intersect.
// Whether boundary-adjacent objects survive a range query at region
// edges rides on this.
func (r Rect) Intersects(o Rect) bool {
	return !(r.X+r.Width < o.X ||
		r.Y+r.Height < o.Y ||
		r.X > o.X+o.Width ||
		r.Y > o.Y+o.Height)
}

// ContainsRect reports whether o lies wholly inside r. Touching r's
// edge from the inside still counts.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}
