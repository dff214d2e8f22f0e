package mock

import (
	"context"

	"github.com/fwojciec/deptscrape"
)

var _ deptscrape.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of deptscrape.URLSource.
type URLSource struct {
	URLsFn func(ctx context.Context) ([]string, error)
}

func (s *URLSource) URLs(ctx context.Context) ([]string, error) {
	return s.URLsFn(ctx)
}
