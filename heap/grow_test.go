package heap_test

import (
	"testing"
	"unsafe"

	"github.com/Pipe930/memheap/brk"
	mock_brk "github.com/Pipe930/memheap/brk/mocks"
	"github.com/Pipe930/memheap/heap"
	"github.com/Pipe930/memheap/memutils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMallocFailsWhenInitialGrowthFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBreak := mock_brk.NewMockBreak(ctrl)
	mockBreak.EXPECT().RequestSpace(gomock.Any()).Return(unsafe.Pointer(nil), memutils.OutOfMemoryError)

	h := heap.New(mockBreak, nil)
	require.Nil(t, h.Malloc(32))

	stats := h.Stats()
	require.Zero(t, stats.BlockCount)
}

func TestMallocFailsWhenMissPathGrowthFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	arena := brk.NewArenaBreak(1 << 10)

	mockBreak := mock_brk.NewMockBreak(ctrl)
	mockBreak.EXPECT().RequestSpace(gomock.Any()).DoAndReturn(arena.RequestSpace)
	mockBreak.EXPECT().RequestSpace(gomock.Any()).Return(unsafe.Pointer(nil), memutils.OutOfMemoryError)

	h := heap.New(mockBreak, nil)

	ptr := h.Malloc(16)
	require.NotNil(t, ptr)

	require.Nil(t, h.Malloc(16))

	// The refused growth must leave the existing chain untouched.
	require.NoError(t, h.Validate())
	stats := h.Stats()
	require.Equal(t, 1, stats.BlockCount)
	require.Equal(t, 0, stats.FreeBlockCount)
}

func TestGrowthSpanIncludesHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	arena := brk.NewArenaBreak(1 << 10)

	mockBreak := mock_brk.NewMockBreak(ctrl)
	mockBreak.EXPECT().
		RequestSpace(heap.HeaderSize() + memutils.AlignWord(20)).
		DoAndReturn(arena.RequestSpace)

	h := heap.New(mockBreak, nil)
	require.NotNil(t, h.Malloc(20))
}

func TestReallocFailureLeavesOriginalIntact(t *testing.T) {
	// Room for exactly one small block.
	h := heap.New(brk.NewArenaBreak(heap.HeaderSize()+memutils.AlignWord(8)), nil)

	ptr := h.Malloc(8)
	require.NotNil(t, ptr)

	span := unsafe.Slice((*byte)(ptr), 8)
	for i := range span {
		span[i] = byte(0x40 | i)
	}

	require.Nil(t, h.Realloc(ptr, 1<<12))

	// The caller's pointer is still live and unmodified.
	for i := range span {
		require.Equal(t, byte(0x40|i), span[i])
	}

	stats := h.Stats()
	require.Equal(t, 1, stats.BlockCount)
	require.Equal(t, 0, stats.FreeBlockCount)
	require.NoError(t, h.Validate())
}
