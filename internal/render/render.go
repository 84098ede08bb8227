// Package render turns BMI results into text, tables and charts.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"

	"github.com/yusufkecer/bmi-tracker/internal/domain"
)

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Result formats a record the way it is shown after a calculation,
// e.g. "BMI: 22.86 (Normal)".
func Result(rec *domain.BMIRecord) string {
	return fmt.Sprintf("BMI: %s (%s)", formatFloat(rec.BMI), rec.Category)
}

func HistoryTable(w io.Writer, records []domain.BMIRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tWeight (kg)\tHeight (m)\tBMI\tCategory")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			rec.RecordedAt.Format(domain.TimestampLayout),
			formatFloat(rec.WeightKg),
			formatFloat(rec.HeightM),
			formatFloat(rec.BMI),
			rec.Category,
		)
	}
	return tw.Flush()
}

// TrendChart writes a PNG line chart of points, x = date and y = BMI.
func TrendChart(w io.Writer, username string, points []domain.TrendPoint) error {
	if len(points) == 0 {
		return domain.ErrNoData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s's BMI Trend", username)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "BMI"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Timestamp.Unix())
		xys[i].Y = pt.BMI
	}

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("failed to build trend line: %w", err)
	}
	blue := color.RGBA{B: 255, A: 255}
	line.Color = blue
	scatter.Shape = draw.CircleGlyph{}
	scatter.Color = blue
	p.Add(line, scatter)

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return fmt.Errorf("failed to render trend chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write trend chart: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
