package aggregate

import (
	"testing"

	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(vehicleNo, date string, fuel, distance float64) fueldomain.FuelEvent {
	return fueldomain.FuelEvent{
		VehicleNo:        vehicleNo,
		Date:             date,
		FuelAmount:       fuel,
		DistanceTraveled: distance,
	}
}

func TestGenerateMergesSameDay(t *testing.T) {
	events := []fueldomain.FuelEvent{
		event("A", "2024-05-01T10:00:00Z", 10, 100),
		event("A", "2024-05-01T18:00:00Z", 5, 50),
	}

	rows := Generate("A", "2024-05-01", "2024-05-31", events, 8.5)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-05-01", rows[0].Date)
	assert.Equal(t, float64(150), rows[0].Distance)
	assert.Equal(t, float64(15), rows[0].FuelAmount)
	assert.Equal(t, "10.00", rows[0].Efficiency)
	assert.Equal(t, 8.5, rows[0].Mileage)

	total := rows[1]
	assert.Equal(t, reportdomain.TotalKey, total.Date)
	assert.Equal(t, float64(150), total.Distance)
	assert.Equal(t, float64(15), total.FuelAmount)
	assert.Equal(t, "10.00", total.Efficiency)
}

func TestGenerateEmptyRange(t *testing.T) {
	rows := Generate("A", "2024-05-01", "2024-05-31", nil, 8.5)
	require.Len(t, rows, 1)

	total := rows[0]
	assert.Equal(t, reportdomain.TotalKey, total.Date)
	assert.Zero(t, total.Distance)
	assert.Zero(t, total.FuelAmount)
	assert.Equal(t, reportdomain.EfficiencyUnavailable, total.Efficiency)
	assert.Equal(t, 8.5, total.Mileage)
}

func TestGenerateFiltersVehicleAndRange(t *testing.T) {
	events := []fueldomain.FuelEvent{
		event("A", "2024-04-30T23:59:59Z", 10, 100), // before range
		event("A", "2024-05-02T10:00:00Z", 10, 100),
		event("B", "2024-05-02T10:00:00Z", 99, 999), // other vehicle
		event("A", "2024-06-01T00:00:00Z", 10, 100), // after range
	}

	rows := Generate("A", "2024-05-01", "2024-05-31T23:59:59Z", events, 0)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05-02", rows[0].Date)
	assert.Equal(t, float64(100), rows[0].Distance)
	assert.Equal(t, float64(100), rows[1].Distance)
}

func TestGenerateDaysAscendingTotalLast(t *testing.T) {
	events := []fueldomain.FuelEvent{
		event("A", "2024-05-20T10:00:00Z", 4, 40),
		event("A", "2024-05-03T10:00:00Z", 2, 20),
		event("A", "2024-05-11T10:00:00Z", 3, 30),
	}

	rows := Generate("A", "2024-05-01", "2024-05-31T23:59:59Z", events, 0)
	require.Len(t, rows, 4)

	for i := 0; i < len(rows)-2; i++ {
		assert.Less(t, rows[i].Date, rows[i+1].Date)
	}
	assert.Equal(t, reportdomain.TotalKey, rows[len(rows)-1].Date)
}

func TestGenerateTotalEqualsRowSums(t *testing.T) {
	events := []fueldomain.FuelEvent{
		event("A", "2024-05-01T08:00:00Z", 7, 63),
		event("A", "2024-05-01T19:00:00Z", 3, 21),
		event("A", "2024-05-04T08:00:00Z", 11, 120),
		event("A", "2024-05-09T08:00:00Z", 0, 5),
	}

	rows := Generate("A", "2024-05-01", "2024-05-31T23:59:59Z", events, 0)
	require.NotEmpty(t, rows)

	var sumDistance, sumFuel float64
	for _, row := range rows[:len(rows)-1] {
		sumDistance += row.Distance
		sumFuel += row.FuelAmount
	}
	total := rows[len(rows)-1]
	assert.Equal(t, sumDistance, total.Distance)
	assert.Equal(t, sumFuel, total.FuelAmount)
}

func TestGenerateZeroFuelDay(t *testing.T) {
	events := []fueldomain.FuelEvent{
		event("A", "2024-05-01T08:00:00Z", 0, 40),
	}

	rows := Generate("A", "2024-05-01", "2024-05-31T23:59:59Z", events, 0)
	require.Len(t, rows, 2)
	assert.Equal(t, reportdomain.EfficiencyUnavailable, rows[0].Efficiency)
	assert.Equal(t, reportdomain.EfficiencyUnavailable, rows[1].Efficiency)
}

func TestGenerateIdempotent(t *testing.T) {
	events := []fueldomain.FuelEvent{
		event("A", "2024-05-01T08:00:00Z", 7, 63),
		event("A", "2024-05-04T08:00:00Z", 11, 120),
	}

	first := Generate("A", "2024-05-01", "2024-05-31T23:59:59Z", events, 9)
	second := Generate("A", "2024-05-01", "2024-05-31T23:59:59Z", events, 9)
	assert.Equal(t, first, second)
}

func TestGenerateDateWithoutTimePart(t *testing.T) {
	events := []fueldomain.FuelEvent{
		event("A", "2024-05-05", 5, 55),
	}

	rows := Generate("A", "2024-05-01", "2024-05-31", events, 0)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05-05", rows[0].Date)
}
