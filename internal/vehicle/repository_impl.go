// Package vehicle loads the vehicle master JSON dataset into memory and serves
// it as a read-only repository. The sheet export uses positional column keys;
// the loader maps them to typed fields and drops the header row.
package vehicle

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/aivanlabs/fleetdash/internal/config"
	"github.com/aivanlabs/fleetdash/internal/vehicle/domain"
)

// headerVehicleNo marks the sheet's repeated header row inside the data.
const headerVehicleNo = "Vehicle No"

type rawRow struct {
	VehicleNo       string   `json:"Vehicle Master"`
	WardNo          *int     `json:"Column3"`
	City            string   `json:"Column4"`
	Zone            string   `json:"Column5"`
	ParkingYard     string   `json:"Column7"`
	DriverName      string   `json:"Column10"`
	DriverMobile    string   `json:"Column11"`
	Inspector       string   `json:"Column12"`
	InspectorMobile string   `json:"Column13"`
	Households      *int     `json:"Column14"`
	Mileage         *float64 `json:"Column15"`
}

type repository struct {
	path string

	once     sync.Once
	loadErr  error
	vehicles []domain.Vehicle
	byNo     map[string]domain.Vehicle
}

func NewRepository(cfg config.Config) domain.Repository {
	return &repository{path: cfg.VehicleMasterPath}
}

func (r *repository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.loadErr = fmt.Errorf("read vehicle master: %w", err)
		return
	}

	var rows []rawRow
	if err := json.Unmarshal(data, &rows); err != nil {
		r.loadErr = fmt.Errorf("parse vehicle master: %w", err)
		return
	}

	r.byNo = make(map[string]domain.Vehicle, len(rows))
	for _, row := range rows {
		if row.VehicleNo == "" || row.VehicleNo == headerVehicleNo {
			continue
		}
		v := domain.Vehicle{
			VehicleNo:       row.VehicleNo,
			City:            row.City,
			Zone:            row.Zone,
			ParkingYard:     row.ParkingYard,
			DriverName:      row.DriverName,
			DriverMobile:    row.DriverMobile,
			Inspector:       row.Inspector,
			InspectorMobile: row.InspectorMobile,
		}
		if row.WardNo != nil {
			v.WardNo = *row.WardNo
		}
		if row.Households != nil {
			v.Households = *row.Households
		}
		if row.Mileage != nil {
			v.Mileage = *row.Mileage
		}
		r.vehicles = append(r.vehicles, v)
		r.byNo[v.VehicleNo] = v
	}
}

func (r *repository) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.once.Do(r.load)
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]domain.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

func (r *repository) Get(ctx context.Context, vehicleNo string) (*domain.Vehicle, error) {
	r.once.Do(r.load)
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	v, ok := r.byNo[vehicleNo]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *repository) ReferenceMileage(ctx context.Context, vehicleNo string) (float64, error) {
	v, err := r.Get(ctx, vehicleNo)
	if err != nil {
		return 0, err
	}
	return v.Mileage, nil
}
