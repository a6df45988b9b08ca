package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wellywell/washboard/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	OrdersSheet = "Orders"
	timeLayout  = "2006-01-02 15:04"
)

var orderHeaders = []string{"Order ID", "Bag No", "Student", "Clothes", "Status", "Created", "Updated"}

var orderColumnWidths = []float64{10, 12, 24, 10, 14, 18, 18}

// Orders renders the orders as an XLSX workbook with a single sheet.
func Orders(orders []types.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OrdersSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(orderHeaders))
	for i, h := range orderHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(OrdersSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(orderHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(OrdersSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range orderColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(OrdersSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{o.ID, o.BagNo, o.StudentName, o.Clothes, string(o.Status), formatTime(o.CreatedAt), formatTime(o.UpdatedAt)}
		if err := f.SetSheetRow(OrdersSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write order %d: %w", o.ID, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}
