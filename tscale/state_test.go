package tscale_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/recursiver/tscale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverErr runs fn and returns the error it panicked with (nil if none).
func recoverErr(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			err = errors.New("non-error panic")

			return
		}
		err = e
	}()
	fn()

	return nil
}

// TestDefault_AllOnes verifies Default fills terms and weights with 1.
func TestDefault_AllOnes(t *testing.T) {
	s := tscale.Default[float64](3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{1, 1, 1}, s.Terms())
	assert.Equal(t, []float64{1, 1, 1}, s.Weights())

	si := tscale.New[int](2)
	assert.Equal(t, []int{1, 1}, si.Terms())
}

// TestDefault_ZeroWindowPanics ensures a zero-length window is never built.
func TestDefault_ZeroWindowPanics(t *testing.T) {
	err := recoverErr(func() { _ = tscale.Default[float64](0) })
	require.Error(t, err, "Default(0) must panic")
	assert.ErrorIs(t, err, tscale.ErrEmptyWindow)

	err = recoverErr(func() { _ = tscale.Default[int](-3) })
	assert.ErrorIs(t, err, tscale.ErrEmptyWindow)
}

// TestNewWithConfig_Validation checks length validation of caller slices.
func TestNewWithConfig_Validation(t *testing.T) {
	cases := []struct {
		name    string
		terms   []float64
		weights []float64
		want    error
	}{
		{"empty", nil, nil, tscale.ErrEmptyWindow},
		{"empty terms", []float64{}, []float64{1}, tscale.ErrEmptyWindow},
		{"mismatch", []float64{0, 1}, []float64{1}, tscale.ErrWindowMismatch},
		{"ok", []float64{0, 1}, []float64{1, 1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tscale.NewWithConfig(tc.terms, tc.weights)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
				assert.Nil(t, s)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.terms), s.Len())
		})
	}
}

// TestNewWithConfig_Verbatim verifies no reordering and no aliasing of input.
func TestNewWithConfig_Verbatim(t *testing.T) {
	terms := []int{3, 5, 7}
	weights := []int{1, 2, 4}
	s, err := tscale.NewWithConfig(terms, weights)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 7}, s.Terms(), "terms must not be reversed")
	assert.Equal(t, []int{1, 2, 4}, s.Weights())

	terms[0] = 100
	assert.Equal(t, 3, s.Terms()[0], "state must own a copy of terms")
}

// TestMustNewWithConfig_Panics checks the panicking constructor.
func TestMustNewWithConfig_Panics(t *testing.T) {
	err := recoverErr(func() { _ = tscale.MustNewWithConfig([]int{1}, []int{1, 2}) })
	assert.ErrorIs(t, err, tscale.ErrWindowMismatch)
}

// TestIter_BorrowAdvancesState verifies the borrowed generator writes
// through to the state and hands it back once exhausted.
func TestIter_BorrowAdvancesState(t *testing.T) {
	s := tscale.MustNewWithConfig([]int{0, 1}, []int{1, 1})
	g := s.Iter(tscale.WithSteps(3))
	assert.True(t, s.Borrowed())

	got := g.Collect()
	assert.Equal(t, []int{0, 1, 1}, got)
	assert.False(t, s.Borrowed(), "exhaustion ends the borrow")
	assert.False(t, s.Consumed())
	assert.Equal(t, []int{2, 3}, s.Terms(), "window advanced three steps in place")

	// The state keeps going from where it stopped.
	g = s.Iter(tscale.WithSteps(2))
	assert.Equal(t, []int{2, 3}, g.Collect())
}

// TestIter_NewBorrowRetiresOld ensures a second Iter supersedes the first
// view instead of panicking, and the stale generator stops stepping.
func TestIter_NewBorrowRetiresOld(t *testing.T) {
	s := tscale.MustNewWithConfig([]int{0, 1}, []int{1, 1})
	old := s.Iter()

	v, ok := old.Next()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	fresh := s.Iter(tscale.WithSteps(2))
	assert.True(t, s.Borrowed())
	_, ok = old.Next()
	assert.False(t, ok, "superseded view is exhausted")
	assert.Equal(t, 0, old.Remaining())
	assert.True(t, s.Borrowed(), "releasing a stale view leaves the current one alone")

	assert.Equal(t, []int{1, 1}, fresh.Collect())
	assert.Equal(t, []int{2, 3}, s.Terms())
	assert.False(t, s.Borrowed())
}

// TestIter_DroppedPartwayStaysUsable ensures a borrowed generator abandoned
// mid-sequence does not lock the state.
func TestIter_DroppedPartwayStaysUsable(t *testing.T) {
	s := tscale.MustNewWithConfig([]int{0, 1}, []int{1, 1})
	got := slices.Collect(s.Iter().Take(3))
	assert.Equal(t, []int{0, 1, 1}, got)

	assert.NotPanics(t, func() {
		assert.Equal(t, []int{2, 3}, slices.Collect(s.Iter().Take(2)))
	})

	g := s.IntoIter(tscale.WithSteps(3))
	assert.True(t, s.Consumed())
	assert.Equal(t, []int{5, 8, 13}, g.Collect())
}

// TestIntoIter_RetiresBorrow ensures consuming a state stops its live
// borrowed generator rather than letting it read moved buffers.
func TestIntoIter_RetiresBorrow(t *testing.T) {
	s := tscale.MustNewWithConfig([]float64{0, 1}, []float64{1, 1})
	b := s.Iter()
	_, _ = b.Next()

	o := s.IntoIter(tscale.WithSteps(2))
	assert.False(t, s.Borrowed())
	_, ok := b.Next()
	assert.False(t, ok)
	assert.Equal(t, []float64{1, 1}, o.Collect())
}

// TestZeroValueState_Panics ensures a zero-value State reports an empty
// window instead of an index panic.
func TestZeroValueState_Panics(t *testing.T) {
	var s tscale.State[int]
	assert.ErrorIs(t, recoverErr(func() { _ = s.Iter() }), tscale.ErrEmptyWindow)
	assert.ErrorIs(t, recoverErr(func() { _ = s.IntoIter() }), tscale.ErrEmptyWindow)
	assert.False(t, s.Consumed())
	assert.False(t, s.Borrowed())
}

// TestIntoIter_ConsumesState verifies the consuming path transfers buffers.
func TestIntoIter_ConsumesState(t *testing.T) {
	s := tscale.MustNewWithConfig([]float64{0, 1}, []float64{1, 1})
	g := s.IntoIter(tscale.WithSteps(4))

	assert.True(t, s.Consumed())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Terms())
	assert.Equal(t, []float64{0, 1, 1, 2}, g.Collect())

	for _, fn := range []func(){
		func() { _ = s.Iter() },
		func() { _ = s.IntoIter() },
		func() { _ = s.Clone() },
	} {
		assert.ErrorIs(t, recoverErr(fn), tscale.ErrConsumed)
	}
}

// TestClone_Independent verifies a clone regenerates from the same point.
func TestClone_Independent(t *testing.T) {
	s := tscale.MustNewWithConfig([]int{2, 1}, []int{1, 1})
	c := s.Clone()

	first := s.IntoIter(tscale.WithSteps(6)).Collect()
	second := c.IntoIter(tscale.WithSteps(6)).Collect()
	assert.Equal(t, first, second)
	assert.Equal(t, []int{2, 1, 3, 4, 7, 11}, first, "Lucas numbers")
}
