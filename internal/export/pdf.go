package export

import (
	"context"
	"fmt"

	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDF renders the report summary document: header block with the vehicle,
// period and driver contacts, then the day rows with the TOTAL row emphasized.
func (e *exporter) PDF(ctx context.Context, report *reportdomain.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Vehicle Report", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	name, mobile, inspector, inspectorMobile := driverOrFallback(report)
	m.AddRow(30,
		col.New(6).Add(
			text.New("Vehicle: "+report.VehicleNo, props.Text{Top: 0}),
			text.New("Period: "+report.FromDate+" to "+report.ToDate, props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Driver: "+name+" ("+mobile+")", props.Text{Top: 0}),
			text.New("Inspector: "+inspector+" ("+inspectorMobile+")", props.Text{Top: 5}),
		),
	)

	m.AddRow(8,
		text.NewCol(3, "Date", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Distance (km)", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Mileage (km/l)", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Fuel (L)", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Efficiency", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, row := range report.Rows {
		style := fontstyle.Normal
		if row.Date == reportdomain.TotalKey {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			text.NewCol(3, row.Date, props.Text{Size: 9, Style: style}),
			text.NewCol(2, fmt.Sprintf("%.2f", row.Distance), props.Text{Size: 9, Style: style, Align: align.Right}),
			text.NewCol(3, fmt.Sprintf("%.2f", row.Mileage), props.Text{Size: 9, Style: style, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%.2f", row.FuelAmount), props.Text{Size: 9, Style: style, Align: align.Right}),
			text.NewCol(2, row.Efficiency, props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
