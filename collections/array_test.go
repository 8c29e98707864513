package collections

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	foundation "github.com/spalx/SXFoundation"
	"github.com/stretchr/testify/require"
)

func TestArray_RetainsElements(t *testing.T) {
	require := require.New(t)
	before := foundation.GetObjectsInUse()

	a := NewArray()
	s := NewString("a")
	a.AddObject(s)
	require.Equal(uint32(2), s.RetainCount())
	s.Release()

	// the array keeps it alive
	require.Equal(uint32(1), s.RetainCount())
	require.Same(s, a.ObjectAtIndex(0))

	a.Release()
	require.Zero(s.RetainCount())
	require.Equal(before, foundation.GetObjectsInUse())
}

func TestArray_Ops(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	a := CreateArray()
	x, y, z := CreateString("x"), CreateString("y"), CreateString("z")

	a.AddObject(x)
	a.AddObject(z)
	a.AddObject(nil)
	a.InsertObject(y, 1)
	a.InsertObject(y, 10)
	require.Equal(3, a.Count())
	require.Equal(1, a.IndexOfObject(y))
	require.Equal(-1, a.IndexOfObject(CreateString("y")))
	require.Equal(-1, a.IndexOfObject(nil))
	require.True(a.ContainsObject(z))
	require.Same(z, a.LastObject())
	require.Nil(a.ObjectAtIndex(3))
	require.Nil(a.ObjectAtIndex(-1))
	require.Equal(uint32(2), y.RetainCount())

	a.RemoveObject(y)
	require.Equal(2, a.Count())
	require.Equal(uint32(1), y.RetainCount())
	require.Same(z, a.ObjectAtIndex(1))

	a.RemoveLastObject()
	require.Equal(1, a.Count())
	require.Same(x, a.LastObject())

	a.RemoveObjectAtIndex(5)
	a.RemoveObjectAtIndex(0)
	require.Zero(a.Count())
	require.Nil(a.LastObject())
	a.RemoveLastObject()

	other := CreateArray()
	other.AddObject(x)
	other.AddObject(y)
	a.AddObjectsFromArray(other)
	a.AddObjectsFromArray(other)
	require.Equal(4, a.Count())
	require.Equal(uint32(4), x.RetainCount())

	a.RemoveObjectsInArray(other)
	require.Equal(2, a.Count())
	a.RemoveAllObjects()
	require.Zero(a.Count())
	require.Equal(uint32(2), x.RetainCount())

	require.NoError(a.InitWithArray(other))
	require.Equal(2, a.Count())
	require.Same(x, a.ObjectAtIndex(0))
}

func TestArray_EqualityAndCopy(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	a := CreateArray()
	a.AddObject(CreateString("s"))
	a.AddObject(CreateNumber(1))
	inner := CreateArray()
	inner.AddObject(CreateData())
	a.AddObject(inner)

	c := CreateArrayWithArray(a)
	require.NotSame(a, c)
	require.True(c.IsEqual(a))
	require.Equal(uint32(1), c.RetainCount())

	// deep copy: the elements are distinct instances
	for i := 0; i < a.Count(); i++ {
		require.NotSame(a.ObjectAtIndex(i), c.ObjectAtIndex(i))
		require.True(a.ObjectAtIndex(i).IsEqual(c.ObjectAtIndex(i)))
	}

	c.ObjectAtIndex(0).(*String).SetValue("changed")
	require.False(c.IsEqual(a))
	require.False(a.IsEqual(CreateArray()))
	require.False(a.IsEqual(CreateString("s")))

	// elements with no Copy() can not be deep copied
	nonCopyable := CreateArray()
	nonCopyable.AddObject(foundation.Autorelease(foundation.New(&opaque{})))
	inUse := foundation.GetObjectsInUse()
	require.PanicsWithValue("*collections.opaque is not copyable", func() { nonCopyable.Copy() })
	// the partial copy is released
	require.Equal(inUse, foundation.GetObjectsInUse())
}

type opaque struct {
	foundation.Object
}

func TestArray_ContentsOfFile(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o600))

	a, err := CreateArrayWithContentsOfFile(path)
	require.NoError(err)
	require.Equal(3, a.Count())
	require.Equal("two", a.ObjectAtIndex(1).(*String).Value())
	require.Equal(uint32(1), a.ObjectAtIndex(1).RetainCount())

	// no line length limit, the last line has no newline
	long := strings.Repeat("x", 70*1024)
	require.NoError(os.WriteFile(path, []byte("short\r\n\n"+long), 0o600))
	a, err = CreateArrayWithContentsOfFile(path)
	require.NoError(err)
	require.Equal(3, a.Count())
	require.Equal("short", a.ObjectAtIndex(0).(*String).Value())
	require.Zero(a.ObjectAtIndex(1).(*String).Length())
	require.Equal(long, a.ObjectAtIndex(2).(*String).Value())

	a, err = CreateArrayWithContentsOfFile(filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(err, os.ErrNotExist)
	require.Nil(a)
}
