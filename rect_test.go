package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 30, 40}

	assert.True(t, r.Contains(15, 30))
	assert.True(t, r.Contains(10, 20), "minimum corner is inclusive")
	assert.True(t, r.Contains(40, 60), "maximum corner is inclusive")
	assert.False(t, r.Contains(9.999, 30))
	assert.False(t, r.Contains(15, 60.001))
}

func TestRectIntersects(t *testing.T) {
	base := Rect{0, 0, 10, 10}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{5, 5, 10, 10}, true},
		{"identical", Rect{0, 0, 10, 10}, true},
		{"contained", Rect{2, 2, 4, 4}, true},
		{"shared right edge", Rect{10, 0, 10, 10}, true},
		{"shared bottom edge", Rect{0, 10, 10, 10}, true},
		{"shared corner", Rect{10, 10, 5, 5}, true},
		{"strictly right", Rect{10.5, 0, 5, 5}, false},
		{"strictly left", Rect{-6, 0, 5, 5}, false},
		{"strictly below", Rect{0, 10.5, 5, 5}, false},
		{"strictly above", Rect{0, -6, 5, 5}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Intersects(tc.other))
			assert.Equal(t, tc.want, tc.other.Intersects(base), "intersection is symmetric")
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	world := Rect{0, 0, 100, 100}

	assert.True(t, world.ContainsRect(Rect{10, 10, 20, 20}))
	assert.True(t, world.ContainsRect(world), "a rectangle contains itself")
	assert.True(t, world.ContainsRect(Rect{90, 90, 10, 10}), "flush against the far corner")
	assert.False(t, world.ContainsRect(Rect{95, 95, 10, 10}), "hangs past the far corner")
	assert.False(t, world.ContainsRect(Rect{-1, 10, 5, 5}))
	assert.False(t, Rect{10, 10, 20, 20}.ContainsRect(world), "containment is not symmetric")
}
