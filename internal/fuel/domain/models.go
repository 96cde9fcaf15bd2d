// Package domain contains the persistence model for the fuel ledger.
package domain

// FuelEvent is one fill-up record with odometer readings bounding a trip segment.
// Events are append-only: never mutated or deleted once recorded.
//
// Date is kept as its ISO-8601 string in a TEXT column. Range lookups compare
// it lexically, which only works because the stored values share the ISO
// prefix layout; non-ISO inputs would sort wrong here.
type FuelEvent struct {
	ID               int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleNo        string  `json:"vehicleNo" gorm:"type:text;not null"`
	FuelAmount       float64 `json:"fuelAmount" gorm:"not null"`
	Cost             float64 `json:"cost" gorm:"not null;default:0"`
	OdometerStart    int64   `json:"odometerStart" gorm:"not null"`
	OdometerEnd      int64   `json:"odometerEnd" gorm:"not null"`
	DistanceTraveled float64 `json:"distanceTraveled" gorm:"not null"`
	FuelEfficiency   float64 `json:"fuelEfficiency" gorm:"not null"`
	Location         string  `json:"location" gorm:"type:text;not null"`
	Date             string  `json:"date" gorm:"type:text;not null"`
}

// TableName sets the database table name.
func (FuelEvent) TableName() string { return "fuel_events" }

// RecordRequest carries a new fill-up submission. Numeric fields are pointers
// so a missing value can be told apart from a legitimate zero.
type RecordRequest struct {
	VehicleNo     string   `json:"vehicleNo"`
	FuelAmount    *float64 `json:"fuelAmount"`
	OdometerStart *int64   `json:"odometerStart"`
	OdometerEnd   *int64   `json:"odometerEnd"`
	Location      string   `json:"location"`
	Date          string   `json:"date"`
}
