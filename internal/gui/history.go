package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

var historyColumns = []string{"Date", "Weight (kg)", "Height (m)", "BMI", "Category"}

var historyWidths = []float32{170, 100, 90, 70, 110}

// historyTable renders records with the column titles in row 0.
func historyTable(records []domain.BMIRecord) *widget.Table {
	table := widget.NewTable(
		func() (int, int) { return len(records) + 1, len(historyColumns) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(historyCell(records, id.Row, id.Col))
		},
	)
	for col, width := range historyWidths {
		table.SetColumnWidth(col, width)
	}
	return table
}

func historyCell(records []domain.BMIRecord, row, col int) string {
	if row == 0 {
		return historyColumns[col]
	}
	rec := records[row-1]
	switch col {
	case 0:
		return rec.RecordedAt.Format(domain.TimestampLayout)
	case 1:
		return strconv.FormatFloat(rec.WeightKg, 'f', -1, 64)
	case 2:
		return strconv.FormatFloat(rec.HeightM, 'f', -1, 64)
	case 3:
		return strconv.FormatFloat(rec.BMI, 'f', -1, 64)
	default:
		return string(rec.Category)
	}
}
