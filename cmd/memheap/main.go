// Command memheap walks a small allocation scenario against the user-space
// heap: it stores a few values, resizes one of them, zeroes an array, and
// prints the block-chain statistics between steps.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"unsafe"

	"github.com/Pipe930/memheap/brk"
	"github.com/Pipe930/memheap/heap"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

var (
	reservation = flag.Int("reservation", brk.DefaultReservation, "bytes of address space to reserve for the arena")
	interactive = flag.Bool("interactive", false, "pause for enter between steps")
	verbose     = flag.Bool("verbose", false, "log allocator activity")
)

var stdin = bufio.NewReader(os.Stdin)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	h := heap.New(brk.NewArenaBreak(*reservation), logger)

	fmt.Printf("process id: %d\n", os.Getpid())
	pause()

	intSize := int(unsafe.Sizeof(int64(0)))

	counter := h.Malloc(intSize)
	if counter == nil {
		fail("could not allocate an integer")
	}
	*(*int64)(counter) = 201
	fmt.Printf("stored value: %d (%d bytes)\n", *(*int64)(counter), intSize)
	pause()

	enabled := h.Malloc(1)
	if enabled == nil {
		fail("could not allocate a flag")
	}
	*(*bool)(enabled) = true
	fmt.Printf("stored value: %t (1 byte)\n", *(*bool)(enabled))

	scratch := h.Malloc(8)
	if scratch == nil {
		fail("could not allocate a scratch block")
	}
	pause()

	counter = h.Realloc(counter, 2*intSize)
	if counter == nil {
		fail("could not resize the integer block")
	}
	pair := unsafe.Slice((*int64)(counter), 2)
	pair[1] = 84
	fmt.Printf("resized values: %d, %d\n", pair[0], pair[1])

	printStats(h)
	pause()

	h.Free(counter)
	printStats(h)
	pause()

	zeroed := h.Calloc(10, intSize)
	if zeroed == nil {
		fail("could not allocate a zeroed array")
	}
	elements := unsafe.Slice((*int64)(zeroed), 10)
	for i := 0; i < 5; i++ {
		fmt.Printf("arr[%d] = %d\n", i, elements[i])
	}

	printStats(h)
	pause()

	h.Free(zeroed)
	h.Free(scratch)
	h.Free(enabled)
	printStats(h)
}

func printStats(h *heap.Heap) {
	writer := jwriter.NewWriter()
	obj := writer.Object()
	h.BlockJsonData(obj)
	obj.End()

	fmt.Printf("heap: %s\n", string(writer.Bytes()))
}

func pause() {
	if !*interactive {
		return
	}
	_, _ = stdin.ReadString('\n')
}

func fail(message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(1)
}
