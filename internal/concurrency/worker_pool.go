package concurrency

import (
	"context"
	"sync"
)

// ForEach fans n indexed tasks out over at most concurrency goroutines and
// waits for all of them. Tasks observe ctx for early exit; error collection
// is the caller's business (write into an indexed slice).
func ForEach(ctx context.Context, concurrency, n int, fn func(ctx context.Context, index int)) {
	if concurrency > n {
		concurrency = n
	}
	if concurrency < 1 {
		concurrency = 1
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range idx {
				fn(ctx, j)
			}
		}()
	}

	for i := 0; i < n; i++ {
		select {
		case idx <- i:
		case <-ctx.Done():
			close(idx)
			wg.Wait()
			return
		}
	}
	close(idx)
	wg.Wait()
}
