package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Create merges archive and ledger events for the requested vehicle and
	// range, aggregates them into day rows plus a TOTAL row, persists the
	// result and returns it. "No events in range" is a valid report, not an
	// error.
	Create(ctx context.Context, req CreateRequest) (*Report, error)
	Get(ctx context.Context, id string) (*Report, error)
}

var (
	ErrInvalidVehicleNo = errors.New("invalid_vehicle_no")
	ErrInvalidRange     = errors.New("invalid_date_range")
	ErrNotFound         = errors.New("report_not_found")
)
