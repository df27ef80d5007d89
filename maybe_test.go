package quiver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaybeNilOnSuccess(t *testing.T) {
	err := Maybe(func() {})
	require.NoError(t, err)
}

func TestMaybeRecoversContractViolation(t *testing.T) {
	err := Maybe(func() {
		panic(fmt.Errorf("%w: add: len 3 != len 4", ErrDimensionMismatch))
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	require.Contains(t, err.Error(), "len 3 != len 4")
}

func TestMaybeRecoversEachSentinel(t *testing.T) {
	for _, sentinel := range []error{ErrDimensionMismatch, ErrDivisionByZero, ErrZeroVector, ErrEmptyInput} {
		err := Maybe(func() { panic(fmt.Errorf("%w: detail", sentinel)) })
		require.ErrorIs(t, err, sentinel)
	}
}

func TestMaybeRepanicsForeignPanics(t *testing.T) {
	require.Panics(t, func() {
		_ = Maybe(func() { panic("not a contract violation") })
	})
	require.Panics(t, func() {
		_ = Maybe(func() { panic(errors.New("unrelated error")) })
	})
}

func TestMaybeValue(t *testing.T) {
	v, err := MaybeValue(func() []int { return []int{1, 2, 3} })
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, v)

	v, err = MaybeValue(func() []int {
		panic(fmt.Errorf("%w: empty", ErrEmptyInput))
	})
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Nil(t, v)
}

func TestMaybeFloat(t *testing.T) {
	f, err := MaybeFloat(func() float64 { return 2.5 })
	require.NoError(t, err)
	require.Equal(t, 2.5, f)

	f, err = MaybeFloat(func() float64 {
		panic(fmt.Errorf("%w: normalize", ErrZeroVector))
	})
	require.ErrorIs(t, err, ErrZeroVector)
	require.Zero(t, f)
}
