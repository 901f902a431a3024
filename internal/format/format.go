package format

import (
	"strconv"

	"spacex-dashboard/internal/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps a flag value to a Mode, ASCII for anything but "markdown"/"md".
func ParseMode(s string) Mode {
	switch s {
	case "markdown", "md":
		return Markdown
	default:
		return ASCII
	}
}

func newWriter(m Mode) table.Writer {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return w
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// PieTable lists the slices of a pie chart with their share of the total.
func PieTable(c model.PieChart, m Mode) string {
	w := newWriter(m)
	w.SetTitle(c.Title)
	w.AppendHeader(table.Row{c.GroupBy, "Value", "Share", "Launches"})

	total := c.Total()
	for _, s := range c.Slices {
		share := "-"
		if total > 0 {
			share = strconv.FormatFloat(100*s.Value/total, 'f', 1, 64) + "%"
		}
		w.AppendRow(table.Row{s.Label, fmtNum(s.Value), share, s.RecordCount})
	}
	w.AppendFooter(table.Row{"Total", fmtNum(total), "", c.RecordCount()})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return render(w, m)
}

// ScatterTable lists the plotted points grouped by series.
func ScatterTable(c model.ScatterChart, m Mode) string {
	w := newWriter(m)
	w.SetTitle(c.Title)
	w.AppendHeader(table.Row{c.ColorBy, c.XLabel, c.YLabel, "Launch Site"})
	for _, s := range c.Series {
		for _, p := range s.Points {
			w.AppendRow(table.Row{s.Name, fmtNum(p.PayloadMassKg), p.Outcome, p.LaunchSite})
		}
	}
	w.AppendFooter(table.Row{"Points", c.PointCount(), "", ""})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return render(w, m)
}
