package memutils

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// Statistics describes the current shape of a block chain: how many blocks it
// holds, how many of them are free, and how the managed payload bytes are
// divided between live and reclaimable space. Header bytes are bookkeeping and
// are not counted.
type Statistics struct {
	BlockCount     int
	FreeBlockCount int
	TotalBytes     int
	UsedBytes      int
	FreeBytes      int
}

func (s *Statistics) Clear() {
	s.BlockCount = 0
	s.FreeBlockCount = 0
	s.TotalBytes = 0
	s.UsedBytes = 0
	s.FreeBytes = 0
}

// AddUsedBlock sums a single live block of the given payload capacity into the statistics
func (s *Statistics) AddUsedBlock(capacity int) {
	s.BlockCount++
	s.TotalBytes += capacity
	s.UsedBytes += capacity
}

// AddFreeBlock sums a single free block of the given payload capacity into the statistics
func (s *Statistics) AddFreeBlock(capacity int) {
	s.BlockCount++
	s.FreeBlockCount++
	s.TotalBytes += capacity
	s.FreeBytes += capacity
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BlockCount += other.BlockCount
	s.FreeBlockCount += other.FreeBlockCount
	s.TotalBytes += other.TotalBytes
	s.UsedBytes += other.UsedBytes
	s.FreeBytes += other.FreeBytes
}

// StatsJsonData populates a json object with the contents of this Statistics object
func (s *Statistics) StatsJsonData(json jwriter.ObjectState) {
	json.Name("TotalBytes").Int(s.TotalBytes)
	json.Name("UsedBytes").Int(s.UsedBytes)
	json.Name("FreeBytes").Int(s.FreeBytes)
	json.Name("Blocks").Int(s.BlockCount)
	json.Name("FreeBlocks").Int(s.FreeBlockCount)
}
