package recap

import (
	"regexp"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_NumericKinds(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`(\S+)`)

	t.Run("signed", func(t *testing.T) {
		v, err := Get[int8](MatchString(re, "-128"))
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)

		v64, err := Get[int64](MatchString(re, "9223372036854775807"))
		require.NoError(t, err)
		assert.Equal(t, int64(9223372036854775807), v64)
	})

	t.Run("unsigned", func(t *testing.T) {
		v, err := Get[uint16](MatchString(re, "65535"))
		require.NoError(t, err)
		assert.Equal(t, uint16(65535), v)

		_, err = Get[uint](MatchString(re, "-1"))
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("float", func(t *testing.T) {
		v, err := Get[float64](MatchString(re, "3.14159"))
		require.NoError(t, err)
		assert.InDelta(t, 3.14159, v, 1e-9)
	})

	t.Run("decimal", func(t *testing.T) {
		v, err := Get[decimal.Decimal](MatchString(re, "12.3456789012345678901234567890"))
		require.NoError(t, err)
		want := decimal.RequireFromString("12.3456789012345678901234567890")
		assert.True(t, want.Equal(v))
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Get[int8](MatchString(re, "300"))
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Get[float32](MatchString(re, "1e300"))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Get[int](MatchString(re, "tewnty"))
		assert.ErrorIs(t, err, ErrFormat)
	})
}

func TestGet_EmptyCapture(t *testing.T) {
	t.Parallel()

	// The group participates but captures empty text. For a nullable
	// target that is a legitimate missing value; for a non-nullable
	// numeric target it is malformed.
	m := MatchString(regexp.MustCompile(`(\d*)`), "")

	ptr, err := Get[*int](m)
	require.NoError(t, err)
	assert.Nil(t, ptr)

	_, err = Get[int](m)
	assert.ErrorIs(t, err, ErrFormat)

	// Strings take empty text verbatim, on both paths.
	s, err := Get[string](m)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	sp, err := Get[*string](m)
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "", *sp)
}

func TestGet_WhitespaceCapture(t *testing.T) {
	t.Parallel()

	m := MatchString(regexp.MustCompile(`(\s*)`), "   ")

	ptr, err := Get[*float64](m)
	require.NoError(t, err)
	assert.Nil(t, ptr)

	_, err = Get[float64](m)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestGet_NumericWhitespaceTolerated(t *testing.T) {
	t.Parallel()

	m := MatchString(regexp.MustCompile(`=(.+)`), "= 42 ")
	v, err := Get[int](m)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGet_Bool(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`(?:(x))?y`)

	// Presence of a successful capture is itself the boolean signal,
	// whatever its text.
	v, err := Get[bool](MatchString(re, "xy"))
	require.NoError(t, err)
	assert.True(t, v)

	// Successful match, absent group: non-nullable bool defaults false,
	// nullable bool is nil.
	v, err = Get[bool](MatchString(re, "y"))
	require.NoError(t, err)
	assert.False(t, v)

	ptr, err := Get[*bool](MatchString(re, "y"))
	require.NoError(t, err)
	assert.Nil(t, ptr)

	ptr, err = Get[*bool](MatchString(re, "xy"))
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.True(t, *ptr)
}

func TestGet_NullableNumber(t *testing.T) {
	t.Parallel()

	m := MatchString(regexp.MustCompile(`(\d+)`), "22")
	ptr, err := Get[*int](m)
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, 22, *ptr)

	_, err = Get[*int](MatchString(regexp.MustCompile(`(\w+)`), "nope"))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestGet_UUID(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	m := MatchString(regexp.MustCompile(`id=(\S+)`), "id=6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	v, err := Get[uuid.UUID](m)
	require.NoError(t, err)
	assert.Equal(t, id, v)

	ptr, err := Get[*uuid.UUID](m)
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, id, *ptr)

	_, err = Get[uuid.UUID](MatchString(regexp.MustCompile(`(\S+)`), "not-a-uuid"))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestGet_Slice(t *testing.T) {
	t.Parallel()

	// regexp2 keeps the capture history of a quantified group; the slice
	// target sees every capture, the scalar target only the last.
	re := regexp2.MustCompile(`(\w)+`, regexp2.None)
	m, err := MatchStringRegexp2(re, "abc")
	require.NoError(t, err)

	all, err := Get[[]string](m)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, all)

	last, err := Get[string](m)
	require.NoError(t, err)
	assert.Equal(t, "c", last)
}

func TestGet_SliceOfNumbers(t *testing.T) {
	t.Parallel()

	re := regexp2.MustCompile(`(?:(\d+),?)+`, regexp2.None)
	m, err := MatchStringRegexp2(re, "10,20,30")
	require.NoError(t, err)

	vs, err := Get[[]int](m)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, vs)

	_, err = Get[[]int8](m)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestGet_SliceAbsentGroup(t *testing.T) {
	t.Parallel()

	m := MatchString(regexp.MustCompile(`(?:(x))?y`), "y")
	vs, err := Get[[]string](m)
	require.NoError(t, err)
	assert.Nil(t, vs)
}

func TestGet_CaptureSlice(t *testing.T) {
	t.Parallel()

	re := regexp2.MustCompile(`(\w)+`, regexp2.None)
	m, err := MatchStringRegexp2(re, "ab")
	require.NoError(t, err)

	caps, err := Get[[]Capture](m)
	require.NoError(t, err)
	require.Len(t, caps, 2)
	assert.Equal(t, "a", caps[0].Text)
	assert.Equal(t, 0, caps[0].Index)
	assert.Equal(t, "b", caps[1].Text)
	assert.Equal(t, 1, caps[1].Index)
}

func TestGet_GroupHandle(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`(?:(x))?y`)

	g, err := Get[*Group](MatchString(re, "xy"))
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.True(t, g.Success)
	assert.Equal(t, "x", g.Value())

	// The group handle is immune to the absence rule: an absent group
	// still comes back as the group itself.
	g, err = Get[*Group](MatchString(re, "y"))
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.False(t, g.Success)
}

func TestGet_CaptureHandle(t *testing.T) {
	t.Parallel()

	m := MatchString(regexp.MustCompile(`(\d+)-(\d+)`), "10-20")
	c, err := Get[*Capture](m)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "10", c.Text)
	assert.Equal(t, 0, c.Index)
	assert.Equal(t, 2, c.Length())
}

func TestGet_UnsupportedType(t *testing.T) {
	t.Parallel()

	m := MatchString(regexp.MustCompile(`(\d+)`), "22")
	_, err := Get[struct{ X int }](m)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestGet_TextUnmarshaler(t *testing.T) {
	t.Parallel()

	m := MatchString(regexp.MustCompile(`level=(\w+)`), "level=ERROR")
	v, err := Get[severity](m)
	require.NoError(t, err)
	assert.Equal(t, severityError, v)
}
