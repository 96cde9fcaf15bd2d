// Package domain contains the dashboard overview read models.
package domain

// Stats is the headline card data: fleet size from the vehicle master, totals
// from the fuel ledger.
type Stats struct {
	TotalVehicles     int     `json:"totalVehicles"`
	TotalDistance     float64 `json:"totalDistance"`
	OverallEfficiency float64 `json:"overallEfficiency"`
}

// Breakdown groups the fleet for the dashboard charts.
type Breakdown struct {
	ByZone       map[string]int `json:"byZone"`
	ByCity       map[string]int `json:"byCity"`
	ByHouseholds map[string]int `json:"byHouseholds"`
}

// Household bucket labels, in display order.
const (
	HouseholdsLow    = "0-500"
	HouseholdsMid    = "501-1000"
	HouseholdsHigh   = "1001-1500"
	HouseholdsHigher = "1500+"
)
