package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runFiles прогоняет fn по индексам 0..n-1 на пуле воркеров. Каждый
// индекс достаётся ровно одной горутине, поэтому записи в общий срез
// результатов по своему индексу не требуют мьютекса. Первый отказ
// отменяет остальных через контекст группы.
func runFiles(ctx context.Context, n, jobs int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return ctx.Err()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))

	for i := range n {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i)
		})
	}

	return g.Wait()
}
