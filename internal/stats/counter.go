// Package stats implements the diagnostics-only collaborators spec §9
// calls out as external to the core: a concurrent byte-occurrence
// counter and the Shannon-entropy / compression-ratio reporting built on
// top of it. Nothing here touches the bitstream or the adaptive model —
// it exists purely so cmd/arcoder can print useful numbers alongside an
// encode.
package stats

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// chunkSize is the unit of work handed to each counting goroutine.
const chunkSize = 64 * 1024

// Counts is a histogram of byte occurrences over an alphabet of up to
// 256 symbols.
type Counts [256]uint64

// Total returns the sum of all counts.
func (c Counts) Total() uint64 {
	var total uint64
	for _, n := range c {
		total += n
	}
	return total
}

// CountBytes tallies occurrences of each byte value in data directly,
// single-threaded, for callers that already hold the whole input in
// memory.
func CountBytes(data []byte) Counts {
	var c Counts
	for _, b := range data {
		c[b]++
	}
	return c
}

// CountSymbols tallies byte occurrences read from r across workers
// concurrent goroutines (runtime.NumCPU() if workers <= 0). It is the Go
// counterpart of the original source's multi-threaded counting helper
// (a separate crate built on crossbeam channels): a reader goroutine
// fans fixed-size chunks out over a channel, a fixed pool of worker
// goroutines counts each chunk into a local histogram, and each worker
// merges its histogram into the total under a mutex when it finishes.
//
// This path never touches the adaptive model or the compressed
// bitstream — it is purely diagnostic (spec §9).
func CountSymbols(ctx context.Context, r io.Reader, workers int) (Counts, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	chunks := make(chan []byte, workers*2)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chunks)
		for {
			buf := make([]byte, chunkSize)
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case chunks <- buf[:n]:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("stats: reading input: %w", err)
			}
		}
	})

	var mu sync.Mutex
	var total Counts
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			var local Counts
			for chunk := range chunks {
				for _, b := range chunk {
					local[b]++
				}
			}
			mu.Lock()
			for i, n := range local {
				total[i] += n
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return total, nil
}
