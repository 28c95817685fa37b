/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	require := require.New(t)

	a := NewArena()
	root, b1, b2, common := New(), New(), New(), New()
	hRoot := a.Put("root", root)
	hB1 := a.Put("b1", b1)
	hB2 := a.Put("b2", b2)
	hCommon := a.Put("common", common)

	require.NoError(a.AddImport(hRoot, hB1))
	require.NoError(a.AddImport(hRoot, hB2))
	require.NoError(a.AddImport(hB1, hCommon))
	require.NoError(a.AddImport(hB2, hCommon))
	require.NoError(a.AddImport(hRoot, hB1), "repeated import is ignored")

	require.Equal([]string{"b1", "b2"}, root.ImportKeys())
	require.Equal([]*OBODoc{b1, b2}, a.Imported(hRoot))
	require.Equal([]Handle{hB1, hB2, hCommon}, a.Closure(hRoot))
	require.False(a.HasCycle())

	t.Run("cycles are allowed", func(t *testing.T) {
		require.NoError(a.AddImport(hCommon, hRoot))
		require.True(a.HasCycle())
		require.Equal([]Handle{hRoot, hB1, hB2}, a.Closure(hCommon))
	})

	t.Run("errors", func(t *testing.T) {
		require.ErrorIs(a.AddImport(hRoot, hRoot), ErrInvalidError)
		require.ErrorIs(a.AddImport(hRoot, Handle(100)), ErrNotFoundError)
	})

	t.Run("put replaces document", func(t *testing.T) {
		other := New()
		require.Equal(hB1, a.Put("b1", other))
		d, ok := a.Lookup("b1")
		require.True(ok)
		require.Same(other, d)
		require.Equal("b1", a.Key(hB1))
	})
}

func TestArenaPutCache(t *testing.T) {
	require := require.New(t)

	main, imp := New(), New()
	main.AddImportKey("imp.obo")
	main.AddImportKey("unresolved.obo")

	a := NewArena()
	a.PutCache(Cache{"main.obo": main, "imp.obo": imp})
	require.Equal(2, a.Len())

	h, ok := a.Handle("main.obo")
	require.True(ok)
	require.Equal([]*OBODoc{imp}, a.Imported(h))
}
