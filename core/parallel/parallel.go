// Package parallel fans independent work items out over a bounded number of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items into contiguous ranges and calls fn(start, end)
// for each range on its own goroutine. workers <= 0 uses one worker per CPU.
// It returns once every range has been processed.
func Parallelize(items, workers int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > items {
		numWorkers = items
	}
	if numWorkers == 1 {
		fn(0, items)
		return
	}

	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForEach calls fn(i) for every i in [0, items) using Parallelize and
// returns the first error by index, so the reported error does not depend
// on scheduling.
func ForEach(items, workers int, fn func(i int) error) error {
	errs := make([]error, items)
	Parallelize(items, workers, func(start, end int) {
		for i := start; i < end; i++ {
			errs[i] = fn(i)
		}
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
