package export

import (
	"context"
	"fmt"

	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Vehicle Report"

// Excel renders the report as a single-sheet workbook. The vehicle and driver
// columns are filled on the first data row only, the way the dashboard's
// original export laid them out.
func (e *exporter) Excel(ctx context.Context, report *reportdomain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"Date", "Distance (km)", "Mileage (km/l)", "Fuel Filled (L)", "Efficiency (km/l)",
		"Vehicle No", "Driver Name", "Driver Mobile", "Inspector", "Inspector Mobile",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 15)
	_ = f.SetColWidth(sheetName, "B", "E", 18)
	_ = f.SetColWidth(sheetName, "F", "J", 20)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 12,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#DCE6F1"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "J1", headerStyle); err != nil {
		return nil, err
	}

	name, mobile, inspector, inspectorMobile := driverOrFallback(report)
	for i, row := range report.Rows {
		rowNum := i + 2
		values := []any{
			row.Date, row.Distance, row.Mileage, row.FuelAmount, row.Efficiency,
		}
		if i == 0 {
			values = append(values, report.VehicleNo, name, mobile, inspector, inspectorMobile)
		}
		for j, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+j, rowNum)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
