// Package quadtree implements a fixed-boundary quadtree used as a 2D
// collision broad-phase: spatially close objects are grouped so a range
// query only visits regions that can overlap it, cutting all-pairs
// candidate search from quadratic to near-linear cost.
package quadtree

import (
	log "github.com/sirupsen/logrus"
)

// Item is a reference to an object managed outside the tree. The tree
// stores the reference it is given and never copies the underlying
// object; the caller owns object lifetime and must not destroy an
// object the tree can still hand back.
type Item interface {
	Bounds() Rect
}

// node is one cell of the tree. A node starts as a leaf collecting
// items directly; the first insert that finds it full splits it into
// four children that exactly tile its boundary. The split is one-way,
// and items already held are not pushed down into the new children.
//
// children order: 0 north-east, 1 north-west, 2 south-east,
// 3 south-west. Delegation walks them in that order, so tree shape is
// reproducible for a given insertion order.
type node struct {
	boundary Rect
	capacity int
	items    []Item
	divided  bool
	children [4]*node
}

func newNode(boundary Rect, capacity int) *node {
	return &node{
		boundary: boundary,
		capacity: capacity,
		items:    make([]Item, 0, capacity),
	}
}

// subdivide splits the node's boundary into four equal quadrants with
// no gap and no overlap. Held items stay where they are.
func (n *node) subdivide() {
	hw := n.boundary.Width / 2
	hh := n.boundary.Height / 2
	x := n.boundary.X
	y := n.boundary.Y

	n.children[0] = newNode(Rect{x + hw, y, hw, hh}, n.capacity)      // north-east
	n.children[1] = newNode(Rect{x, y, hw, hh}, n.capacity)           // north-west
	n.children[2] = newNode(Rect{x + hw, y + hh, hw, hh}, n.capacity) // south-east
	n.children[3] = newNode(Rect{x, y + hh, hw, hh}, n.capacity)      // south-west

	n.divided = true
}

// insert stores it somewhere in this node's subtree and reports whether
// it did. False means the item's bounds do not intersect this node's
// boundary at all.
//
// A child only claims an item whose bounds it wholly contains; the
// first containing child in the fixed order wins, and an item is never
// stored twice. Items that straddle a quadrant seam, or hang past this
// node's own boundary, park in this node's items list: an item never
// sits below a node that fails to wholly contain it.
func (n *node) insert(it Item) bool {
	if !n.boundary.Intersects(it.Bounds()) {
		return false
	}

	if !n.divided && len(n.items) < n.capacity {
		n.items = append(n.items, it)
		return true
	}

	if !n.divided {
		n.subdivide()
	}

	for _, c := range n.children {
		if c.boundary.ContainsRect(it.Bounds()) {
			return c.insert(it)
		}
	}

	n.items = append(n.items, it)
	return true
}

// query appends to out every item in this node's subtree whose bounds
// intersect r, pruning any subtree whose boundary misses r outright.
func (n *node) query(r Rect, out []Item) []Item {
	if !n.boundary.Intersects(r) {
		return out
	}

	for _, it := range n.items {
		if r.Intersects(it.Bounds()) {
			out = append(out, it)
		}
	}

	if n.divided {
		for _, c := range n.children {
			out = c.query(r, out)
		}
	}

	return out
}

// walk visits this node and every descendant, parents first.
func (n *node) walk(fn func(*node)) {
	fn(n)
	if n.divided {
		for _, c := range n.children {
			c.walk(fn)
		}
	}
}

// Tree is a quadtree over a fixed world rectangle. It is not safe for
// concurrent mutation; callers sharing a Tree across goroutines must
// synchronize around it themselves.
type Tree struct {
	root *node
	size int
}

// New creates a tree covering boundary. capacity is how many items a
// node holds directly before it splits; values below 1 are raised to 1,
// since a node that can hold nothing would split forever on the first
// insert.
func New(boundary Rect, capacity int) *Tree {
	if capacity < 1 {
		log.Warnln("quadtree: capacity", capacity, "below 1, clamping to 1")
		capacity = 1
	}
	if boundary.Width <= 0 || boundary.Height <= 0 {
		log.Warnln("quadtree: world boundary has non-positive dimensions", boundary)
	}
	return &Tree{root: newNode(boundary, capacity)}
}

// Insert stores a reference to it. It reports false, leaving the tree
// unchanged, when the item's bounds lie entirely outside the world;
// that is a no-op for the caller to ignore or log, not an error.
func (t *Tree) Insert(it Item) bool {
	if !t.root.insert(it) {
		return false
	}
	t.size++
	return true
}

// Query returns every stored item whose bounds intersect r. Touching
// counts as intersecting. The result is freshly allocated, free of
// duplicates, and nil when nothing matches.
func (t *Tree) Query(r Rect) []Item {
	return t.root.query(r, nil)
}

// Len returns the number of items stored in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Bounds returns the world rectangle the tree was constructed over.
func (t *Tree) Bounds() Rect {
	return t.root.boundary
}
