package service

import (
	"context"
	"errors"
	"strings"

	driverdomain "github.com/aivanlabs/fleetdash/internal/driver/domain"
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

func NewService(p ServiceParam) driverdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("driver.service"),
		vehicles: p.Vehicles,
	}
}

func (s *Service) List(ctx context.Context) ([]driverdomain.Driver, error) {
	masterTier, err := s.masterTier(ctx)
	if err != nil {
		return nil, err
	}

	var stored []driverdomain.Driver
	if err := s.db.WithContext(ctx).Find(&stored).Error; err != nil {
		return nil, err
	}
	for i := range stored {
		stored[i].Source = driverdomain.SourceDB
	}

	return append(masterTier, stored...), nil
}

func (s *Service) Create(ctx context.Context, req driverdomain.CreateRequest) (*driverdomain.Driver, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	record := &driverdomain.Driver{
		VehicleNo:       req.VehicleNo,
		DriverName:      req.DriverName,
		Mobile:          req.Mobile,
		Inspector:       req.Inspector,
		InspectorMobile: req.InspectorMobile,
		Source:          driverdomain.SourceDB,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	s.log.Info("driver created", zap.Int64p("id", record.ID), zap.String("vehicle_no", record.VehicleNo))
	return record, nil
}

func (s *Service) Update(ctx context.Context, id int64, req driverdomain.UpdateRequest) (*driverdomain.Driver, error) {
	// Master-sourced entries surface with a null id in the merged list;
	// addressing one here means the caller is editing the read-only tier.
	if id <= 0 {
		return nil, driverdomain.ErrReadOnly
	}

	var record driverdomain.Driver
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, driverdomain.ErrNotFound
		}
		return nil, err
	}

	record.DriverName = req.DriverName
	record.Mobile = req.Mobile
	record.Inspector = req.Inspector
	record.InspectorMobile = req.InspectorMobile
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}

	record.Source = driverdomain.SourceDB
	return &record, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return driverdomain.ErrReadOnly
	}

	result := s.db.WithContext(ctx).Delete(&driverdomain.Driver{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return driverdomain.ErrNotFound
	}
	return nil
}

func (s *Service) FindByVehicle(ctx context.Context, vehicleNo string) (*driverdomain.Driver, error) {
	var record driverdomain.Driver
	err := s.db.WithContext(ctx).
		Where("vehicle_no = ?", vehicleNo).
		Order("id DESC").
		First(&record).Error
	if err == nil {
		record.Source = driverdomain.SourceDB
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v, err := s.vehicles.Get(ctx, vehicleNo)
	if err != nil {
		if errors.Is(err, vehicledomain.ErrNotFound) {
			return nil, driverdomain.ErrNotFound
		}
		return nil, err
	}
	return masterDriver(*v), nil
}

func (s *Service) masterTier(ctx context.Context) ([]driverdomain.Driver, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}

	tier := make([]driverdomain.Driver, 0, len(vehicles))
	for _, v := range vehicles {
		tier = append(tier, *masterDriver(v))
	}
	return tier, nil
}

func masterDriver(v vehicledomain.Vehicle) *driverdomain.Driver {
	return &driverdomain.Driver{
		VehicleNo:       v.VehicleNo,
		DriverName:      v.DriverName,
		Mobile:          v.DriverMobile,
		Inspector:       v.Inspector,
		InspectorMobile: v.InspectorMobile,
		Source:          driverdomain.SourceJSON,
	}
}

func validateCreateRequest(req driverdomain.CreateRequest) error {
	if strings.TrimSpace(req.VehicleNo) == "" {
		return driverdomain.ErrInvalidVehicleNo
	}
	if strings.TrimSpace(req.DriverName) == "" {
		return driverdomain.ErrInvalidDriverName
	}
	if strings.TrimSpace(req.Mobile) == "" {
		return driverdomain.ErrInvalidMobile
	}
	return nil
}
