package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"amenities-dashboard/hours"
	"amenities-dashboard/models"
)

const (
	TypeChartTitle    = "Count of Amenities by Type"
	DayPartChartTitle = "Amenities Open by Time of Day"
)

// ChartRenderer draws the dataset summary charts as one HTML page.
type ChartRenderer struct {
	PageTitle string
	Width     string
	Height    string
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{PageTitle: "Amenities Dashboard", Width: "900px", Height: "420px"}
}

func (r *ChartRenderer) init() charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: r.PageTitle,
		Width:     r.Width,
		Height:    r.Height,
	})
}

func (r *ChartRenderer) barChart(title, series string, counts []models.LabeledCount) *charts.Bar {
	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		data[i] = opts.BarData{Name: c.Label, Value: c.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		r.init(),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries(series, data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

func (r *ChartRenderer) pieChart(title string, counts []models.LabeledCount) *charts.Pie {
	data := make([]opts.PieData, len(counts))
	for i, c := range counts {
		data[i] = opts.PieData{Name: c.Label, Value: c.Count}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		r.init(),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	pie.AddSeries(title, data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return pie
}

// Page assembles the two bar charts followed by one pie per day-part.
func (r *ChartRenderer) Page(stats models.Stats) *components.Page {
	page := components.NewPage()
	page.PageTitle = r.PageTitle
	page.AddCharts(
		r.barChart(TypeChartTitle, "Count", stats.ByType),
		r.barChart(DayPartChartTitle, "Count", stats.ByDayPart),
	)
	for _, w := range hours.Windows {
		page.AddCharts(r.pieChart(w.Label, stats.TypesPerDayPart[w.Part]))
	}
	return page
}

// Render writes the chart page to w.
func (r *ChartRenderer) Render(w io.Writer, stats models.Stats) error {
	if err := r.Page(stats).Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}
