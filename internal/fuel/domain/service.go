package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Record validates and appends one fuel event, recomputing the derived
	// distance and efficiency fields server side.
	Record(ctx context.Context, req RecordRequest) (*FuelEvent, error)
	// List returns every ledger event, newest first.
	List(ctx context.Context) ([]FuelEvent, error)
	// LastEntryBefore returns the vehicle's most recent event strictly before
	// date, or nil when the vehicle has no earlier event.
	LastEntryBefore(ctx context.Context, vehicleNo, date string) (*FuelEvent, error)
}

var (
	ErrInvalidVehicleNo  = errors.New("invalid_vehicle_no")
	ErrInvalidFuelAmount = errors.New("invalid_fuel_amount")
	ErrInvalidOdometer   = errors.New("invalid_odometer")
	ErrOdometerOrder     = errors.New("odometer_order")
	ErrInvalidLocation   = errors.New("invalid_location")
)
