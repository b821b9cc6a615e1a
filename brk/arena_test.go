package brk_test

import (
	"testing"
	"unsafe"

	"github.com/Pipe930/memheap/brk"
	"github.com/Pipe930/memheap/memutils"
	"github.com/stretchr/testify/require"
)

func TestArenaBreakGrantsAreContiguous(t *testing.T) {
	b := brk.NewArenaBreak(1 << 10)

	first, err := b.RequestSpace(64)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Zero(t, uintptr(first)%uintptr(memutils.WordSize))

	second, err := b.RequestSpace(32)
	require.NoError(t, err)
	require.Equal(t, uintptr(first)+64, uintptr(second))

	require.GreaterOrEqual(t, b.BreakOffset(), 96)
}

func TestArenaBreakGrantsAreWritable(t *testing.T) {
	b := brk.NewArenaBreak(256)

	region, err := b.RequestSpace(128)
	require.NoError(t, err)

	span := unsafe.Slice((*byte)(region), 128)
	for i := range span {
		span[i] = byte(i)
	}
	for i := range span {
		require.Equal(t, byte(i), span[i])
	}
}

func TestArenaBreakExhaustion(t *testing.T) {
	b := brk.NewArenaBreak(128)

	_, err := b.RequestSpace(128)
	require.NoError(t, err)

	_, err = b.RequestSpace(1 << 10)
	require.ErrorIs(t, err, memutils.OutOfMemoryError)

	// A failed request must not move the break.
	offset := b.BreakOffset()
	_, err = b.RequestSpace(1 << 10)
	require.ErrorIs(t, err, memutils.OutOfMemoryError)
	require.Equal(t, offset, b.BreakOffset())
}

func TestArenaBreakRejectsNonPositiveSpans(t *testing.T) {
	b := brk.NewArenaBreak(128)

	_, err := b.RequestSpace(0)
	require.ErrorIs(t, err, memutils.InvalidSizeError)

	_, err = b.RequestSpace(-8)
	require.ErrorIs(t, err, memutils.InvalidSizeError)
}
