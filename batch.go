package boundseq

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// SearchAll looks up every pattern in s and returns, per pattern, the
// index of its first occurrence or -1.
//
// Lookups run concurrently, bounded by WithConcurrency. Cancelling ctx
// stops outstanding lookups and returns ctx.Err().
func SearchAll(ctx context.Context, s *Sequence, patterns []*Sequence, optFns ...Option) ([]int, error) {
	o := applyOptions(optFns)
	start := time.Now()

	out := make([]int, len(patterns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, p := range patterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.indexSeqFrom(p, 0)
			return nil
		})
	}
	err := g.Wait()

	found := 0
	for _, idx := range out {
		if idx >= 0 {
			found++
		}
	}
	o.metricsCollector.RecordSearch(len(patterns), time.Since(start), err)
	o.logger.LogSearchAll(ctx, len(patterns), found, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
