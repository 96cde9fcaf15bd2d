package vehicle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aivanlabs/fleetdash/internal/config"
	"github.com/aivanlabs/fleetdash/internal/vehicle/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const masterFixture = `[
  {"Vehicle Master": "Vehicle No", "Column3": null, "Column4": "City", "Column5": "Zone"},
  {
    "Vehicle Master": "KA25AB0542",
    "Column3": 12,
    "Column4": "Hubli",
    "Column5": "North",
    "Column7": "Yard 1",
    "Column10": "Ravi",
    "Column11": "9000000000",
    "Column12": "Suresh",
    "Column13": "9111111111",
    "Column14": 750,
    "Column15": 8.5
  },
  {
    "Vehicle Master": "KA25AB0543",
    "Column4": "Dharwad",
    "Column5": "South"
  },
  {"Vehicle Master": ""}
]`

func writeMaster(t *testing.T, content string) domain.Repository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Vehicle Master.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return NewRepository(config.Config{VehicleMasterPath: path})
}

func TestListDropsHeaderAndBlankRows(t *testing.T) {
	repo := writeMaster(t, masterFixture)

	vehicles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	v := vehicles[0]
	assert.Equal(t, "KA25AB0542", v.VehicleNo)
	assert.Equal(t, 12, v.WardNo)
	assert.Equal(t, "Hubli", v.City)
	assert.Equal(t, "North", v.Zone)
	assert.Equal(t, "Yard 1", v.ParkingYard)
	assert.Equal(t, "Ravi", v.DriverName)
	assert.Equal(t, "9000000000", v.DriverMobile)
	assert.Equal(t, "Suresh", v.Inspector)
	assert.Equal(t, "9111111111", v.InspectorMobile)
	assert.Equal(t, 750, v.Households)
	assert.Equal(t, 8.5, v.Mileage)

	// Missing numeric columns default to zero.
	assert.Equal(t, "KA25AB0543", vehicles[1].VehicleNo)
	assert.Zero(t, vehicles[1].Households)
	assert.Zero(t, vehicles[1].Mileage)
}

func TestGet(t *testing.T) {
	repo := writeMaster(t, masterFixture)

	v, err := repo.Get(context.Background(), "KA25AB0542")
	require.NoError(t, err)
	assert.Equal(t, "Hubli", v.City)

	_, err = repo.Get(context.Background(), "KA00XX0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReferenceMileage(t *testing.T) {
	repo := writeMaster(t, masterFixture)

	mileage, err := repo.ReferenceMileage(context.Background(), "KA25AB0542")
	require.NoError(t, err)
	assert.Equal(t, 8.5, mileage)

	mileage, err = repo.ReferenceMileage(context.Background(), "KA25AB0543")
	require.NoError(t, err)
	assert.Zero(t, mileage)

	_, err = repo.ReferenceMileage(context.Background(), "KA00XX0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMissingFile(t *testing.T) {
	repo := NewRepository(config.Config{VehicleMasterPath: filepath.Join(t.TempDir(), "missing.json")})

	_, err := repo.List(context.Background())
	require.Error(t, err)
}

func TestMalformedFile(t *testing.T) {
	repo := writeMaster(t, "{not json")

	_, err := repo.List(context.Background())
	require.Error(t, err)
}
