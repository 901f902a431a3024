package render

import (
	"fmt"
	"io"
	"strconv"

	"spacex-dashboard/internal/model"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const noDataText = "No data"

// Format is an output image format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat maps a file extension or query value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg", ".svg":
		return SVG, nil
	case "png", ".png":
		return PNG, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", s)
	}
}

// ContentType is the HTTP content type of the format.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}
	return chart.SVG
}

// Renderer draws chart descriptions at a fixed size.
type Renderer struct {
	Width  int
	Height int
}

func New(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Pie draws the success pie. Zero-valued slices have no area and are left
// out; a chart without any area is drawn as a placeholder.
func (rd *Renderer) Pie(c model.PieChart, f Format, w io.Writer) error {
	var values []chart.Value
	for i, s := range c.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", s.Label, strconv.FormatFloat(s.Value, 'f', -1, 64)),
			Value: s.Value,
			Style: chart.Style{FillColor: chart.GetDefaultColor(i), StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 {
		return rd.placeholder(c.Title, f, w)
	}

	pie := chart.PieChart{
		Title:  c.Title,
		Width:  rd.Width,
		Height: rd.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Values: values,
	}
	if err := pie.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// Scatter draws payload mass against outcome, one colored series per booster
// version category. The x axis spans the selected payload range.
func (rd *Renderer) Scatter(c model.ScatterChart, f Format, w io.Writer) error {
	if c.IsEmpty() {
		return rd.placeholder(c.Title, f, w)
	}

	var series []chart.Series
	for i, s := range c.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.PayloadMassKg
			ys[j] = float64(p.Outcome)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}

	xMin, xMax := c.Range.Low, c.Range.High
	if xMax <= xMin {
		xMin, xMax = xMin-1, xMin+1
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      rd.Width,
		Height:     rd.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  c.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', 0, 64)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: -0.5, Max: 1.5},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}

	if err := ch.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	return nil
}

// placeholder draws the chart title and a "No data" notice.
func (rd *Renderer) placeholder(title string, f Format, w io.Writer) error {
	r, err := f.provider()(rd.Width, rd.Height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(rd.Width, 0)
	r.LineTo(rd.Width, rd.Height)
	r.LineTo(0, rd.Height)
	r.LineTo(0, 0)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(16)
	tb := r.MeasureText(title)
	r.Text(title, (rd.Width-tb.Width())/2, 40)

	r.SetFontColor(drawing.ColorFromHex("777777"))
	r.SetFontSize(14)
	nb := r.MeasureText(noDataText)
	r.Text(noDataText, (rd.Width-nb.Width())/2, rd.Height/2)

	return r.Save(w)
}
