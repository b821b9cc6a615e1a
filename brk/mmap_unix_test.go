//go:build unix

package brk_test

import (
	"testing"
	"unsafe"

	"github.com/Pipe930/memheap/brk"
	"github.com/Pipe930/memheap/memutils"
	"github.com/stretchr/testify/require"
)

func TestMmapBreakGrantsAreWritable(t *testing.T) {
	b, err := brk.NewMmapBreak(1 << 16)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, b.Close())
	}()

	region, err := b.RequestSpace(256)
	require.NoError(t, err)
	require.Zero(t, uintptr(region)%uintptr(memutils.WordSize))

	span := unsafe.Slice((*byte)(region), 256)
	for i := range span {
		span[i] = 0xA5
	}
	require.Equal(t, byte(0xA5), span[255])
}

func TestMmapBreakExhaustion(t *testing.T) {
	b, err := brk.NewMmapBreak(1 << 12)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, b.Close())
	}()

	_, err = b.RequestSpace(1 << 12)
	require.NoError(t, err)

	_, err = b.RequestSpace(1)
	require.ErrorIs(t, err, memutils.OutOfMemoryError)
}
