// Package aggregate turns a merged stream of fuel events into the day-grouped
// report rows the dashboard renders and exports. It is a pure transform: same
// inputs, same output, no I/O.
package aggregate

import (
	"sort"
	"strconv"
	"strings"

	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
)

type dayTotals struct {
	distance float64
	fuel     float64
}

// Generate filters events to the vehicle and date range, collapses them onto
// calendar days, and appends a grand-total row.
//
// Range bounds compare against the event's raw date string, not a parsed
// calendar date. The stored values are ISO-8601 so the lexical order matches
// chronological order; inputs outside that layout would filter wrong, which
// mirrors how the data has always been queried.
//
// When several events share a day their fuel and distance are summed; any
// other per-event detail follows the first event seen for that day.
func Generate(vehicleNo, fromDate, toDate string, events []fueldomain.FuelEvent, referenceMileage float64) []reportdomain.Row {
	days := make(map[string]*dayTotals)
	for _, event := range events {
		if event.VehicleNo != vehicleNo {
			continue
		}
		if event.Date < fromDate || event.Date > toDate {
			continue
		}

		key := dayKey(event.Date)
		totals, ok := days[key]
		if !ok {
			totals = &dayTotals{}
			days[key] = totals
		}
		totals.distance += event.DistanceTraveled
		totals.fuel += event.FuelAmount
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]reportdomain.Row, 0, len(keys)+1)
	var totalDistance, totalFuel float64
	for _, key := range keys {
		totals := days[key]
		rows = append(rows, reportdomain.Row{
			Date:       key,
			Distance:   totals.distance,
			Mileage:    referenceMileage,
			FuelAmount: totals.fuel,
			Efficiency: formatEfficiency(totals.distance, totals.fuel),
		})
		totalDistance += totals.distance
		totalFuel += totals.fuel
	}

	rows = append(rows, reportdomain.Row{
		Date:       reportdomain.TotalKey,
		Distance:   totalDistance,
		Mileage:    referenceMileage,
		FuelAmount: totalFuel,
		Efficiency: formatEfficiency(totalDistance, totalFuel),
	})

	return rows
}

// dayKey truncates an ISO timestamp to its calendar day.
func dayKey(date string) string {
	if i := strings.Index(date, "T"); i >= 0 {
		return date[:i]
	}
	return date
}

func formatEfficiency(distance, fuel float64) string {
	if fuel <= 0 {
		return reportdomain.EfficiencyUnavailable
	}
	return strconv.FormatFloat(distance/fuel, 'f', 2, 64)
}
