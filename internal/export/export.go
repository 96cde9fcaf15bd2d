// Package export renders a generated report through the document sinks the
// dashboard offers: a spreadsheet and a PDF summary.
package export

import (
	"context"

	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("export",
	fx.Provide(NewExporter),
)

type Exporter interface {
	Excel(ctx context.Context, report *reportdomain.Report) ([]byte, error)
	PDF(ctx context.Context, report *reportdomain.Report) ([]byte, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

const valueUnavailable = "N/A"

func driverOrFallback(report *reportdomain.Report) (name, mobile, inspector, inspectorMobile string) {
	name, mobile, inspector, inspectorMobile = valueUnavailable, valueUnavailable, valueUnavailable, valueUnavailable
	if report.Driver == nil {
		return
	}
	if report.Driver.DriverName != "" {
		name = report.Driver.DriverName
	}
	if report.Driver.Mobile != "" {
		mobile = report.Driver.Mobile
	}
	if report.Driver.Inspector != "" {
		inspector = report.Driver.Inspector
	}
	if report.Driver.InspectorMobile != "" {
		inspectorMobile = report.Driver.InspectorMobile
	}
	return
}
