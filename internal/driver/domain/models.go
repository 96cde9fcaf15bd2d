// Package domain contains the driver directory models. The directory merges
// two tiers: contact columns from the static vehicle master (read-only) and
// rows from the drivers table (mutable), tagged by provenance.
package domain

// Record provenance tags.
const (
	SourceJSON = "json"
	SourceDB   = "db"
)

// Driver is one directory entry. ID is nil for the read-only tier, which has
// no row of its own to address.
type Driver struct {
	ID              *int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleNo       string `json:"vehicleNo" gorm:"type:text;not null"`
	DriverName      string `json:"driverName" gorm:"type:text;not null"`
	Mobile          string `json:"mobile" gorm:"type:text;not null"`
	Inspector       string `json:"inspector" gorm:"type:text"`
	InspectorMobile string `json:"inspectorMobile" gorm:"type:text"`
	Source          string `json:"source" gorm:"-"`
}

// TableName sets the database table name.
func (Driver) TableName() string { return "drivers" }

type CreateRequest struct {
	VehicleNo       string `json:"vehicleNo"`
	DriverName      string `json:"driverName"`
	Mobile          string `json:"mobile"`
	Inspector       string `json:"inspector"`
	InspectorMobile string `json:"inspectorMobile"`
}

type UpdateRequest struct {
	DriverName      string `json:"driverName"`
	Mobile          string `json:"mobile"`
	Inspector       string `json:"inspector"`
	InspectorMobile string `json:"inspectorMobile"`
}
