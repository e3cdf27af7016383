package main

import (
	"context"
	"crypto/rand"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// generateKeys creates n random keys of keySize bytes, split across workers
// goroutines. All keys share one backing buffer.
func generateKeys(ctx context.Context, n, keySize, workers int) ([][]byte, error) {
	if n <= 0 || keySize <= 0 {
		return nil, fmt.Errorf("invalid key shape: %d keys of %d bytes", n, keySize)
	}
	workers = max(1, min(workers, n))

	buf := make([]byte, n*keySize)
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = buf[i*keySize : (i+1)*keySize : (i+1)*keySize]
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := rand.Read(buf[start*keySize : end*keySize]); err != nil {
				return fmt.Errorf("generate keys [%d, %d): %w", start, end, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}
