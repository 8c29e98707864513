package collections

import (
	"os"
	"path/filepath"
	"testing"

	foundation "github.com/spalx/SXFoundation"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	s := CreateString("hello")
	require.Equal(uint32(1), s.RetainCount())
	require.Equal("hello", s.Value())
	require.Equal("hello", s.String())
	require.Equal(5, s.Length())
	require.Equal(byte('e'), s.CharAt(1))
	require.Zero(s.CharAt(5))
	require.Zero(s.CharAt(-1))
	require.Zero(s.Compare("hello"))
	require.Negative(s.Compare("world"))

	s.SetValue("bye")
	require.Equal("bye", s.Value())
}

func TestString_Conversions(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	require.Equal(42, CreateString(" 42 ").IntValue())
	require.Zero(CreateString("").IntValue())
	require.Zero(CreateString("abc").IntValue())
	require.Equal(uint64(7), CreateString("7").UintValue())
	require.Zero(CreateString("-7").UintValue())
	require.InDelta(float32(1.5), CreateString("1.5").FloatValue(), 0.0001)
	require.InDelta(2.25, CreateString("2.25").DoubleValue(), 0.0001)
	require.Zero(CreateString("x").DoubleValue())

	require.True(CreateString("true").BoolValue())
	require.True(CreateString("1").BoolValue())
	require.False(CreateString("0").BoolValue())
	require.False(CreateString("").BoolValue())
	require.False(CreateString("yes").BoolValue())

	// only the leading number is parsed
	require.Equal(12, CreateString("12px").IntValue())
	require.Equal(-3, CreateString("\t-3 apples").IntValue())
	require.Zero(CreateString("-").IntValue())
	require.Equal(uint64(8), CreateString("+8kb").UintValue())
	require.Equal(4, CreateString("4.9").IntValue())
	require.InDelta(float32(0.5), CreateString(".5em").FloatValue(), 0.0001)
	require.InDelta(1500.0, CreateString("1.5e3s").DoubleValue(), 0.0001)
	require.InDelta(2.0, CreateString("2e").DoubleValue(), 0.0001)
	require.Zero(CreateString(".").DoubleValue())
	require.True(CreateString("12px").BoolValue())
}

func TestString_EqualityAndCopy(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	s := CreateString("value")
	c := s.Copy()
	defer c.Release()

	require.NotSame(s, c)
	require.Equal(uint32(1), c.RetainCount())
	require.True(c.IsEqual(s))
	require.True(s.IsEqual(c))
	require.False(s.IsEqual(CreateString("other")))
	require.False(s.IsEqual(CreateNumber(1)))
	require.False(s.IsEqual(nil))
}

func TestString_ContentsOfFile(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	path := filepath.Join(t.TempDir(), "s.txt")
	require.NoError(os.WriteFile(path, []byte("line1\nline2"), 0o600))

	s, err := CreateStringWithContentsOfFile(path)
	require.NoError(err)
	require.Equal("line1\nline2", s.Value())

	s, err = CreateStringWithContentsOfFile(filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(err, os.ErrNotExist)
	require.Nil(s)
}

func TestNumber(t *testing.T) {
	require := require.New(t)
	defer foundation.PushScope().Close()

	i := CreateNumber(42)
	require.Equal(42, i.Value())
	i.SetValue(43)
	require.Equal(43, i.Value())

	require.True(i.IsEqual(CreateNumber(43)))
	require.False(i.IsEqual(CreateNumber(42)))

	// the same value of a different type is not equal
	require.False(i.IsEqual(CreateNumber(int64(43))))

	f := NewNumber(1.5)
	defer f.Release()
	c := f.Copy().(*Number[float64])
	defer c.Release()
	require.NotSame(f, c)
	require.True(c.IsEqual(f))

	b := CreateNumber(true)
	require.True(b.Value())
	require.True(b.Copy().Autorelease().IsEqual(b))
}
