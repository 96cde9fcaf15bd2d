package domain

import (
	"context"
	"errors"
)

// Repository is the read-only vehicle master source.
type Repository interface {
	List(ctx context.Context) ([]Vehicle, error)
	Get(ctx context.Context, vehicleNo string) (*Vehicle, error)
	// ReferenceMileage returns the expected efficiency for the vehicle, or 0
	// when the master has no value for it.
	ReferenceMileage(ctx context.Context, vehicleNo string) (float64, error)
}

var ErrNotFound = errors.New("vehicle_not_found")
