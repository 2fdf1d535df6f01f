package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var _ digest.Acquirer = (*Acquirer)(nil)

// Acquirer is a mock implementation of digest.Acquirer.
type Acquirer struct {
	AcquireFn func(ctx context.Context, url string) ([]*digest.Document, error)
}

func (a *Acquirer) Acquire(ctx context.Context, url string) ([]*digest.Document, error) {
	return a.AcquireFn(ctx, url)
}
