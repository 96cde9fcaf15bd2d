package service

import (
	"context"

	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	overviewdomain "github.com/aivanlabs/fleetdash/internal/overview/domain"
	vehicledomain "github.com/aivanlabs/fleetdash/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Vehicles vehicledomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	vehicles vehicledomain.Repository
}

func NewService(p ServiceParam) overviewdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("overview.service"),
		vehicles: p.Vehicles,
	}
}

func (s *Service) Stats(ctx context.Context) (*overviewdomain.Stats, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}

	var totals struct {
		TotalDistance float64 `gorm:"column:total_distance"`
		TotalFuel     float64 `gorm:"column:total_fuel"`
	}
	err = s.db.WithContext(ctx).
		Model(&fueldomain.FuelEvent{}).
		Select("COALESCE(SUM(distance_traveled), 0) AS total_distance, COALESCE(SUM(fuel_amount), 0) AS total_fuel").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	efficiency := 0.0
	if totals.TotalFuel > 0 {
		efficiency = totals.TotalDistance / totals.TotalFuel
	}

	return &overviewdomain.Stats{
		TotalVehicles:     len(vehicles),
		TotalDistance:     totals.TotalDistance,
		OverallEfficiency: efficiency,
	}, nil
}

func (s *Service) Breakdown(ctx context.Context) (*overviewdomain.Breakdown, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := &overviewdomain.Breakdown{
		ByZone: make(map[string]int),
		ByCity: make(map[string]int),
		ByHouseholds: map[string]int{
			overviewdomain.HouseholdsLow:    0,
			overviewdomain.HouseholdsMid:    0,
			overviewdomain.HouseholdsHigh:   0,
			overviewdomain.HouseholdsHigher: 0,
		},
	}

	for _, v := range vehicles {
		breakdown.ByZone[v.Zone]++
		breakdown.ByCity[v.City]++
		switch {
		case v.Households <= 500:
			breakdown.ByHouseholds[overviewdomain.HouseholdsLow]++
		case v.Households <= 1000:
			breakdown.ByHouseholds[overviewdomain.HouseholdsMid]++
		case v.Households <= 1500:
			breakdown.ByHouseholds[overviewdomain.HouseholdsHigh]++
		default:
			breakdown.ByHouseholds[overviewdomain.HouseholdsHigher]++
		}
	}

	return breakdown, nil
}
