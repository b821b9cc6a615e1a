package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// OutOfMemoryError is the error returned when the break provider cannot extend the managed
// address space any further. Callers propagate it rather than retrying.
var OutOfMemoryError error = errors.New("cannot extend the program break")

// InvalidSizeError is the error returned when a non-positive byte count is requested
var InvalidSizeError error = errors.New("requested size must be a positive number of bytes")

// SizeOverflowError is the error returned when a count*size computation overflows the
// native integer size
var SizeOverflowError error = errors.New("allocation size computation overflowed")
