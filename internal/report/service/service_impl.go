package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aivanlabs/fleetdash/internal/clock"
	driverdomain "github.com/aivanlabs/fleetdash/internal/driver/domain"
	"github.com/aivanlabs/fleetdash/internal/fuel/archive"
	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	"github.com/aivanlabs/fleetdash/internal/observability"
	"github.com/aivanlabs/fleetdash/internal/report/aggregate"
	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	vehicledomain "github.com/aivanlabs/fleetdash/internal/vehicle/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Ledger   fueldomain.Service
	Archive  archive.Source
	Vehicles vehicledomain.Repository
	Drivers  driverdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	ledger   fueldomain.Service
	archive  archive.Source
	vehicles vehicledomain.Repository
	drivers  driverdomain.Service
}

func NewService(p ServiceParam) reportdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("report.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		ledger:   p.Ledger,
		archive:  p.Archive,
		vehicles: p.Vehicles,
		drivers:  p.Drivers,
	}
}

func (s *Service) Create(ctx context.Context, req reportdomain.CreateRequest) (*reportdomain.Report, error) {
	if strings.TrimSpace(req.VehicleNo) == "" {
		return nil, reportdomain.ErrInvalidVehicleNo
	}
	if req.FromDate == "" || req.ToDate == "" || req.ToDate < req.FromDate {
		return nil, reportdomain.ErrInvalidRange
	}

	mileage, err := s.vehicles.ReferenceMileage(ctx, req.VehicleNo)
	if err != nil {
		return nil, err
	}

	// Archive entries first, ledger after, matching how the dashboard has
	// always concatenated its two sources before grouping.
	merged, err := s.archive.Entries(ctx)
	if err != nil {
		return nil, err
	}
	ledgerEvents, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	merged = append(merged, ledgerEvents...)

	rows := aggregate.Generate(req.VehicleNo, req.FromDate, req.ToDate, merged, mileage)

	var decoration *driverdomain.Driver
	d, err := s.drivers.FindByVehicle(ctx, req.VehicleNo)
	if err == nil {
		decoration = d
	} else if !errors.Is(err, driverdomain.ErrNotFound) {
		return nil, err
	}

	snapshot, err := s.persist(ctx, req, rows, decoration)
	if err != nil {
		return nil, err
	}

	observability.ReportGenerated()
	s.log.Info("report generated",
		zap.String("id", snapshot.ID.String()),
		zap.String("vehicle_no", req.VehicleNo),
		zap.Int("rows", len(rows)),
	)
	return buildReport(snapshot)
}

func (s *Service) Get(ctx context.Context, id string) (*reportdomain.Report, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return nil, reportdomain.ErrNotFound
	}

	var snapshot reportdomain.Snapshot
	if err := s.db.WithContext(ctx).First(&snapshot, "id = ?", parsed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportdomain.ErrNotFound
		}
		return nil, err
	}
	return buildReport(&snapshot)
}

func (s *Service) persist(ctx context.Context, req reportdomain.CreateRequest, rows []reportdomain.Row, decoration *driverdomain.Driver) (*reportdomain.Snapshot, error) {
	encodedRows, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}

	snapshot := &reportdomain.Snapshot{
		ID:        s.genID.Generate(),
		VehicleNo: req.VehicleNo,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Rows:      datatypes.JSON(encodedRows),
		CreatedAt: s.clock.Now(),
	}
	if decoration != nil {
		encodedDriver, err := json.Marshal(decoration)
		if err != nil {
			return nil, err
		}
		snapshot.Driver = datatypes.JSON(encodedDriver)
	}

	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, err
	}
	return snapshot, nil
}

func buildReport(snapshot *reportdomain.Snapshot) (*reportdomain.Report, error) {
	var rows []reportdomain.Row
	if err := json.Unmarshal(snapshot.Rows, &rows); err != nil {
		return nil, err
	}

	report := &reportdomain.Report{
		ID:        snapshot.ID.String(),
		VehicleNo: snapshot.VehicleNo,
		FromDate:  snapshot.FromDate,
		ToDate:    snapshot.ToDate,
		Rows:      rows,
		CreatedAt: snapshot.CreatedAt,
	}
	if len(snapshot.Driver) > 0 {
		var decoration driverdomain.Driver
		if err := json.Unmarshal(snapshot.Driver, &decoration); err != nil {
			return nil, err
		}
		report.Driver = &decoration
	}
	return report, nil
}
