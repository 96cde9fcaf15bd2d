package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns the merged directory: vehicle-master contacts first, then
	// stored rows, each tagged with its source.
	List(ctx context.Context) ([]Driver, error)
	Create(ctx context.Context, req CreateRequest) (*Driver, error)
	// Update and Delete address the mutable tier only. Targeting a vehicle
	// that exists solely in the read-only tier fails with ErrReadOnly.
	Update(ctx context.Context, id int64, req UpdateRequest) (*Driver, error)
	Delete(ctx context.Context, id int64) error
	// FindByVehicle returns the entry decorating reports for the vehicle;
	// the mutable tier wins when both tiers carry the vehicle.
	FindByVehicle(ctx context.Context, vehicleNo string) (*Driver, error)
}

var (
	ErrInvalidVehicleNo  = errors.New("invalid_vehicle_no")
	ErrInvalidDriverName = errors.New("invalid_driver_name")
	ErrInvalidMobile     = errors.New("invalid_mobile")
	ErrNotFound          = errors.New("driver_not_found")
	ErrReadOnly          = errors.New("driver_read_only")
)
