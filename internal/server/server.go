package server

import (
	"context"
	"net/http"
	"time"

	"github.com/aivanlabs/fleetdash/internal/config"
	driverdomain "github.com/aivanlabs/fleetdash/internal/driver/domain"
	"github.com/aivanlabs/fleetdash/internal/export"
	"github.com/aivanlabs/fleetdash/internal/fuel/archive"
	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	"github.com/aivanlabs/fleetdash/internal/observability"
	overviewdomain "github.com/aivanlabs/fleetdash/internal/overview/domain"
	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	vehicledomain "github.com/aivanlabs/fleetdash/internal/vehicle/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(observability.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// The dashboard is served from a different origin in development.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	fuelSvc     fueldomain.Service
	fuelArchive archive.Source
	reportSvc   reportdomain.Service
	driverSvc   driverdomain.Service
	overviewSvc overviewdomain.Service
	vehicles    vehicledomain.Repository
	exporter    export.Exporter
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	FuelSvc     fueldomain.Service
	FuelArchive archive.Source
	ReportSvc   reportdomain.Service
	DriverSvc   driverdomain.Service
	OverviewSvc overviewdomain.Service
	Vehicles    vehicledomain.Repository
	Exporter    export.Exporter
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("http.server"),
		fuelSvc:     p.FuelSvc,
		fuelArchive: p.FuelArchive,
		reportSvc:   p.ReportSvc,
		driverSvc:   p.DriverSvc,
		overviewSvc: p.OverviewSvc,
		vehicles:    p.Vehicles,
		exporter:    p.Exporter,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/vehicles", s.ListVehicles)

	// -------- Drivers --------
	api.GET("/drivers", s.ListDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)

	// -------- Fuel ledger --------
	api.GET("/fuel", s.ListFuelEvents)
	api.POST("/fuel", s.RecordFuelEvent)
	api.GET("/fuel/last-entry-before/:vehicleNo/:date", s.LastFuelEntryBefore)
	api.GET("/fuel/archive", s.ListFuelArchive)

	// -------- Reports --------
	api.POST("/reports", s.CreateReport)
	api.GET("/reports/:id", s.GetReport)
	api.GET("/reports/:id/export", s.ExportReport)

	// -------- Dashboard --------
	api.GET("/dashboard/stats", s.DashboardStats)
	api.GET("/dashboard/breakdown", s.DashboardBreakdown)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
