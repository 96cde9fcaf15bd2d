// Package domain contains the report row and snapshot types.
package domain

import (
	"time"

	driverdomain "github.com/aivanlabs/fleetdash/internal/driver/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// TotalKey is the date key of the single trailing grand-total row.
const TotalKey = "TOTAL"

// EfficiencyUnavailable marks rows whose fuel sum is zero, where km/l is
// undefined rather than zero.
const EfficiencyUnavailable = "—"

// Row is one aggregated calendar day (or the grand total) of a vehicle report.
type Row struct {
	Date       string  `json:"date"`
	Distance   float64 `json:"distance"`
	Mileage    float64 `json:"mileage"`
	FuelAmount float64 `json:"fuelAmount"`
	Efficiency string  `json:"efficiency"`
}

// Snapshot is a persisted generated report, addressable by id. It replaces the
// old browser-side handoff between the report and summary views.
type Snapshot struct {
	ID        snowflake.ID   `json:"id" gorm:"primaryKey"`
	VehicleNo string         `json:"vehicle_no" gorm:"type:text;not null"`
	FromDate  string         `json:"from_date" gorm:"type:text;not null"`
	ToDate    string         `json:"to_date" gorm:"type:text;not null"`
	Rows      datatypes.JSON `json:"rows" gorm:"not null"`
	Driver    datatypes.JSON `json:"driver"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Snapshot) TableName() string { return "report_snapshots" }

type CreateRequest struct {
	VehicleNo string `json:"vehicleNo"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
}

// Report is the API view of a snapshot with its rows decoded.
type Report struct {
	ID        string               `json:"id"`
	VehicleNo string               `json:"vehicleNo"`
	FromDate  string               `json:"fromDate"`
	ToDate    string               `json:"toDate"`
	Rows      []Row                `json:"rows"`
	Driver    *driverdomain.Driver `json:"driver,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}
