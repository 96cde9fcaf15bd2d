// Package domain contains the typed view over the vehicle master dataset.
package domain

// Vehicle is one row of the static vehicle master reference data.
type Vehicle struct {
	VehicleNo   string `json:"vehicleNo"`
	WardNo      int    `json:"wardNo"`
	City        string `json:"city"`
	Zone        string `json:"zone"`
	ParkingYard string `json:"parkingYard"`
	Households  int    `json:"households"`
	// Mileage is the vehicle's expected efficiency in km/l, used as the
	// reference value on report rows. Zero when the dataset has none.
	Mileage float64 `json:"mileage"`

	// Driver contact columns embedded in the master sheet. These form the
	// read-only tier of the driver directory.
	DriverName      string `json:"driverName"`
	DriverMobile    string `json:"driverMobile"`
	Inspector       string `json:"inspector"`
	InspectorMobile string `json:"inspectorMobile"`
}
