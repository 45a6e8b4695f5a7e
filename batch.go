package cooklang

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseAll parses each document concurrently and returns the recipes in
// input order. Every invocation owns its own parse state, so fan-out
// needs no synchronization beyond the group itself; concurrency is
// bounded by GOMAXPROCS. The first failure cancels the remaining work
// and is returned wrapped with the document index.
func (p *Parser) ParseAll(ctx context.Context, docs []string) ([]*Recipe, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	out := make([]*Recipe, len(docs))
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r, err := p.Parse(doc)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
