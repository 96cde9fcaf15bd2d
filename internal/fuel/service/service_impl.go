package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aivanlabs/fleetdash/internal/clock"
	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	"github.com/aivanlabs/fleetdash/internal/observability"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
}

func NewService(p ServiceParam) fueldomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("fuel.service"),
		clock: p.Clock,
	}
}

func (s *Service) Record(ctx context.Context, req fueldomain.RecordRequest) (*fueldomain.FuelEvent, error) {
	if err := validateRecordRequest(req); err != nil {
		return nil, err
	}

	start := *req.OdometerStart
	end := *req.OdometerEnd
	amount := *req.FuelAmount

	distance := float64(end - start)
	efficiency := 0.0
	if amount > 0 {
		efficiency = distance / amount
	}

	date := req.Date
	if date == "" {
		date = s.clock.Now().Format(time.RFC3339)
	}

	event := &fueldomain.FuelEvent{
		VehicleNo:        req.VehicleNo,
		FuelAmount:       amount,
		Cost:             0,
		OdometerStart:    start,
		OdometerEnd:      end,
		DistanceTraveled: distance,
		FuelEfficiency:   efficiency,
		Location:         req.Location,
		Date:             date,
	}

	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}

	observability.FuelEventRecorded()
	s.log.Info("fuel event recorded",
		zap.Int64("id", event.ID),
		zap.String("vehicle_no", event.VehicleNo),
		zap.Float64("distance", event.DistanceTraveled),
	)
	return event, nil
}

func (s *Service) List(ctx context.Context) ([]fueldomain.FuelEvent, error) {
	var events []fueldomain.FuelEvent
	err := s.db.WithContext(ctx).
		Order("datetime(date) DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Service) LastEntryBefore(ctx context.Context, vehicleNo, date string) (*fueldomain.FuelEvent, error) {
	var event fueldomain.FuelEvent
	err := s.db.WithContext(ctx).
		Where("vehicle_no = ? AND date < ?", vehicleNo, date).
		Order("datetime(date) DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func validateRecordRequest(req fueldomain.RecordRequest) error {
	if strings.TrimSpace(req.VehicleNo) == "" {
		return fueldomain.ErrInvalidVehicleNo
	}
	if req.FuelAmount == nil || *req.FuelAmount < 0 {
		return fueldomain.ErrInvalidFuelAmount
	}
	if req.OdometerStart == nil || req.OdometerEnd == nil || *req.OdometerStart < 0 || *req.OdometerEnd < 0 {
		return fueldomain.ErrInvalidOdometer
	}
	if *req.OdometerEnd <= *req.OdometerStart {
		return fueldomain.ErrOdometerOrder
	}
	if strings.TrimSpace(req.Location) == "" {
		return fueldomain.ErrInvalidLocation
	}
	return nil
}
