package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var (
	_ digest.Service      = (*Service)(nil)
	_ digest.URLValidator = (*URLValidator)(nil)
)

// Service is a mock implementation of digest.Service.
type Service struct {
	DigestFn func(ctx context.Context, req *digest.Request) (string, error)
}

func (s *Service) Digest(ctx context.Context, req *digest.Request) (string, error) {
	return s.DigestFn(ctx, req)
}

// URLValidator is a mock implementation of digest.URLValidator.
type URLValidator struct {
	ValidFn func(url string) bool
}

func (v *URLValidator) Valid(url string) bool {
	return v.ValidFn(url)
}
