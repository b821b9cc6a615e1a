package memutils_test

import (
	"testing"

	"github.com/Pipe930/memheap/memutils"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, memutils.AlignUp(0, 8))
	require.Equal(t, 8, memutils.AlignUp(1, 8))
	require.Equal(t, 8, memutils.AlignUp(8, 8))
	require.Equal(t, 16, memutils.AlignUp(9, 8))
	require.Equal(t, 104, memutils.AlignUp(100, 8))
}

func TestAlignWord(t *testing.T) {
	require.Equal(t, 0, memutils.AlignWord(0))

	aligned := memutils.AlignWord(memutils.WordSize - 1)
	require.Equal(t, memutils.WordSize, aligned)

	aligned = memutils.AlignWord(memutils.WordSize + 1)
	require.Equal(t, 2*memutils.WordSize, aligned)
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(64, "value"))
	require.ErrorIs(t, memutils.CheckPow2(63, "value"), memutils.PowerOfTwoError)
}

func TestStatisticsAccumulation(t *testing.T) {
	var stats memutils.Statistics
	stats.Clear()

	stats.AddUsedBlock(32)
	stats.AddFreeBlock(64)
	stats.AddUsedBlock(8)

	require.Equal(t, memutils.Statistics{
		BlockCount:     3,
		FreeBlockCount: 1,
		TotalBytes:     104,
		UsedBytes:      40,
		FreeBytes:      64,
	}, stats)

	var sum memutils.Statistics
	sum.Clear()
	sum.AddStatistics(&stats)
	sum.AddStatistics(&stats)

	require.Equal(t, 208, sum.TotalBytes)
	require.Equal(t, 6, sum.BlockCount)
}
