package domain

import "context"

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
	Breakdown(ctx context.Context) (*Breakdown, error)
}
