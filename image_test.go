package quadtree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestImageWritesBMP(t *testing.T) {
	tree := New(Rect{0, 0, 100, 100}, 2)
	for _, o := range []*object{
		{id: 1, bounds: Rect{1, 1, 2, 2}},
		{id: 2, bounds: Rect{5, 5, 2, 2}},
		{id: 3, bounds: Rect{8, 8, 2, 2}},
	} {
		require.True(t, tree.Insert(o))
	}

	path := filepath.Join(t.TempDir(), "tree.bmp")
	require.NoError(t, tree.Image(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 101, img.Bounds().Dx())
	assert.Equal(t, 101, img.Bounds().Dy())
}

func TestImageCreateError(t *testing.T) {
	tree := New(Rect{0, 0, 10, 10}, 4)
	err := tree.Image(filepath.Join(t.TempDir(), "missing", "tree.bmp"))
	assert.Error(t, err)
}
