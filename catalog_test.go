package gradient

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	dir := t.TempDir()

	c, err := NewCatalog(filepath.Join(dir, "gradient.db"))
	require.NoError(t, err)
	defer c.Close()

	g := New(c, nil)

	a := filepath.Join(dir, "a.bmp")
	b := filepath.Join(dir, "b.bmp")

	_, err = g.Generate(a, Options{Width: 8, Height: 8})
	require.NoError(t, err)
	_, err = g.Generate(b, Options{Width: 4, Height: 2, Order: BottomUp})
	require.NoError(t, err)
	// Regenerating the same path replaces the entry
	resA, err := g.Generate(a, Options{Width: 8, Height: 8})
	require.NoError(t, err)

	entries, err := c.Images()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, a, entries[0].Path)
	assert.Equal(t, 8, entries[0].Width)
	assert.Equal(t, 8, entries[0].Height)
	assert.False(t, entries[0].BottomUp)
	assert.Equal(t, int64(54+3*8*8), entries[0].Size)
	assert.Equal(t, resA.CRC, entries[0].CRC)
	assert.Equal(t, resA.SHA1, entries[0].SHA1)

	assert.Equal(t, b, entries[1].Path)
	assert.True(t, entries[1].BottomUp)

	e, err := c.FindBySHA1(resA.SHA1)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, a, e.Path)

	e, err = c.FindBySHA1("0000")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestCatalogSkipsFailedRuns(t *testing.T) {
	dir := t.TempDir()

	c, err := NewCatalog(filepath.Join(dir, "gradient.db"))
	require.NoError(t, err)
	defer c.Close()

	_, err = New(c, nil).Generate(filepath.Join(dir, "missing", "image.bmp"), Options{Width: 2, Height: 2})
	require.Error(t, err)

	entries, err := c.Images()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
