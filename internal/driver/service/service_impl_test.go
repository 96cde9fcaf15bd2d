package service

import (
	"context"
	"fmt"
	"testing"

	driverdomain "github.com/aivanlabs/fleetdash/internal/driver/domain"
	vehicledomain "github.com/aivanlabs/fleetdash/internal/vehicle/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type vehiclesStub struct {
	vehicles []vehicledomain.Vehicle
}

func (s *vehiclesStub) List(ctx context.Context) ([]vehicledomain.Vehicle, error) {
	return s.vehicles, nil
}

func (s *vehiclesStub) Get(ctx context.Context, vehicleNo string) (*vehicledomain.Vehicle, error) {
	for _, v := range s.vehicles {
		if v.VehicleNo == vehicleNo {
			return &v, nil
		}
	}
	return nil, vehicledomain.ErrNotFound
}

func (s *vehiclesStub) ReferenceMileage(ctx context.Context, vehicleNo string) (float64, error) {
	v, err := s.Get(ctx, vehicleNo)
	if err != nil {
		return 0, err
	}
	return v.Mileage, nil
}

func setupDriverService(t *testing.T, vehicles []vehicledomain.Vehicle) driverdomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&driverdomain.Driver{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewService(ServiceParam{
		DB:       db,
		Log:      zap.NewNop(),
		Vehicles: &vehiclesStub{vehicles: vehicles},
	})
}

func masterVehicle(vehicleNo, driverName string) vehicledomain.Vehicle {
	return vehicledomain.Vehicle{
		VehicleNo:       vehicleNo,
		DriverName:      driverName,
		DriverMobile:    "9000000000",
		Inspector:       "Suresh",
		InspectorMobile: "9111111111",
	}
}

func TestListMergesTiers(t *testing.T) {
	svc := setupDriverService(t, []vehicledomain.Vehicle{
		masterVehicle("KA25AB0542", "Ravi"),
		masterVehicle("KA25AB0543", "Kumar"),
	})

	created, err := svc.Create(context.Background(), driverdomain.CreateRequest{
		VehicleNo:  "KA25ZZ0001",
		DriverName: "Manju",
		Mobile:     "9222222222",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)

	drivers, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 3)

	// Master tier first with null ids, stored rows after.
	assert.Equal(t, driverdomain.SourceJSON, drivers[0].Source)
	assert.Nil(t, drivers[0].ID)
	assert.Equal(t, "Ravi", drivers[0].DriverName)
	assert.Equal(t, driverdomain.SourceJSON, drivers[1].Source)
	assert.Equal(t, driverdomain.SourceDB, drivers[2].Source)
	assert.NotNil(t, drivers[2].ID)
	assert.Equal(t, "Manju", drivers[2].DriverName)
}

func TestCreateValidation(t *testing.T) {
	svc := setupDriverService(t, nil)

	cases := []struct {
		name string
		req  driverdomain.CreateRequest
		want error
	}{
		{"missing vehicle", driverdomain.CreateRequest{DriverName: "Ravi", Mobile: "9"}, driverdomain.ErrInvalidVehicleNo},
		{"missing name", driverdomain.CreateRequest{VehicleNo: "KA25AB0542", Mobile: "9"}, driverdomain.ErrInvalidDriverName},
		{"missing mobile", driverdomain.CreateRequest{VehicleNo: "KA25AB0542", DriverName: "Ravi"}, driverdomain.ErrInvalidMobile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateStoredDriver(t *testing.T) {
	svc := setupDriverService(t, nil)

	created, err := svc.Create(context.Background(), driverdomain.CreateRequest{
		VehicleNo:  "KA25ZZ0001",
		DriverName: "Manju",
		Mobile:     "9222222222",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), *created.ID, driverdomain.UpdateRequest{
		DriverName: "Manjunath",
		Mobile:     "9333333333",
	})
	require.NoError(t, err)
	assert.Equal(t, "Manjunath", updated.DriverName)
	assert.Equal(t, "9333333333", updated.Mobile)
	assert.Equal(t, driverdomain.SourceDB, updated.Source)
}

func TestMutatingReadOnlyTier(t *testing.T) {
	svc := setupDriverService(t, []vehicledomain.Vehicle{masterVehicle("KA25AB0542", "Ravi")})

	_, err := svc.Update(context.Background(), 0, driverdomain.UpdateRequest{DriverName: "X"})
	assert.ErrorIs(t, err, driverdomain.ErrReadOnly)

	err = svc.Delete(context.Background(), 0)
	assert.ErrorIs(t, err, driverdomain.ErrReadOnly)
}

func TestUpdateDeleteUnknownID(t *testing.T) {
	svc := setupDriverService(t, nil)

	_, err := svc.Update(context.Background(), 42, driverdomain.UpdateRequest{DriverName: "X"})
	assert.ErrorIs(t, err, driverdomain.ErrNotFound)

	err = svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, driverdomain.ErrNotFound)
}

func TestDeleteRemovesRow(t *testing.T) {
	svc := setupDriverService(t, nil)

	created, err := svc.Create(context.Background(), driverdomain.CreateRequest{
		VehicleNo:  "KA25ZZ0001",
		DriverName: "Manju",
		Mobile:     "9222222222",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), *created.ID))

	drivers, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, drivers)
}

func TestFindByVehiclePrefersStoredRow(t *testing.T) {
	svc := setupDriverService(t, []vehicledomain.Vehicle{masterVehicle("KA25AB0542", "Ravi")})

	t.Run("falls back to master", func(t *testing.T) {
		d, err := svc.FindByVehicle(context.Background(), "KA25AB0542")
		require.NoError(t, err)
		assert.Equal(t, driverdomain.SourceJSON, d.Source)
		assert.Equal(t, "Ravi", d.DriverName)
	})

	_, err := svc.Create(context.Background(), driverdomain.CreateRequest{
		VehicleNo:  "KA25AB0542",
		DriverName: "Kumar",
		Mobile:     "9444444444",
	})
	require.NoError(t, err)

	t.Run("stored row wins", func(t *testing.T) {
		d, err := svc.FindByVehicle(context.Background(), "KA25AB0542")
		require.NoError(t, err)
		assert.Equal(t, driverdomain.SourceDB, d.Source)
		assert.Equal(t, "Kumar", d.DriverName)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := svc.FindByVehicle(context.Background(), "KA00XX0000")
		assert.ErrorIs(t, err, driverdomain.ErrNotFound)
	})
}
