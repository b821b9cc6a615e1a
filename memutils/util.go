package memutils

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
)

// WordSize is the native machine word size in bytes. Every block the heap
// hands out begins on a WordSize boundary.
const WordSize = int(unsafe.Sizeof(uintptr(0)))

type Number interface {
	~int | ~uint
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

func AlignDown(value int, alignment uint) int {
	return value & int(^(alignment - 1))
}

// AlignWord rounds value up to the next multiple of the native word size.
func AlignWord(value int) int {
	return AlignUp(value, uint(WordSize))
}
