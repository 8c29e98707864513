package collections

import (
	"os"
	"path/filepath"
	"testing"

	foundation "github.com/spalx/SXFoundation"
	"github.com/stretchr/testify/require"
)

func TestData(t *testing.T) {
	require := require.New(t)
	before := foundation.GetObjectsInUse()

	d := NewDataWithBytes([]byte{1, 2, 3})
	require.Equal(3, d.Length())
	require.Equal([]byte{1, 2, 3}, d.Bytes())

	require.NoError(d.InitWithData([]byte("abc")))
	require.Equal([]byte("abc"), d.Bytes())

	c := d.Copy().(*Data)
	require.NotSame(d, c)
	require.True(c.IsEqual(d))

	// the copy is independent
	require.NoError(c.InitWithData([]byte("xyz")))
	require.False(c.IsEqual(d))
	require.Equal([]byte("abc"), d.Bytes())

	d.Release()
	c.Release()
	require.Equal(before, foundation.GetObjectsInUse())
}

func TestData_Files(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()
	dir := t.TempDir()

	path := filepath.Join(dir, "data.bin")
	src := CreateDataWithBytes([]byte{0, 1, 2, 255})
	require.NoError(src.WriteToFile(path))

	loaded, err := CreateDataWithContentsOfFile(path)
	require.NoError(err)
	require.True(loaded.IsEqual(src))

	loaded, err = CreateDataWithContentsOfFile(filepath.Join(dir, "absent"))
	require.ErrorIs(err, os.ErrNotExist)
	require.Nil(loaded)

	d := CreateData()
	require.NoError(d.InitWithData([]byte("stale")))
	require.Error(d.InitWithContentsOfFile(filepath.Join(dir, "absent")))
	require.Zero(d.Length())

	require.Error(src.WriteToFile(filepath.Join(dir, "no", "such", "dir")))
}
