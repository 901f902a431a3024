package main

import (
	"fmt"

	"spacex-dashboard/internal/aggregate"
	"spacex-dashboard/internal/config"
	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/format"
	"spacex-dashboard/internal/logging"
	"spacex-dashboard/internal/model"

	"github.com/spf13/cobra"
)

var selFlags struct {
	site string
	low  float64
	high float64
}

var summaryFlags struct {
	chart  string
	format string
	sortBy string
	asc    bool
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the chart data as tables",
	RunE:  runSummary,
}

// addSelectionFlags registers the control state flags shared by summary and render.
func addSelectionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&selFlags.site, "site", model.SiteAll, "launch site or ALL")
	f.Float64Var(&selFlags.low, "low", 0, "lower payload bound in kg (default dataset minimum)")
	f.Float64Var(&selFlags.high, "high", 0, "upper payload bound in kg (default dataset maximum)")
}

func init() {
	addSelectionFlags(summaryCmd)
	f := summaryCmd.Flags()
	f.StringVar(&summaryFlags.chart, "chart", "all", "pie, scatter or all")
	f.StringVar(&summaryFlags.format, "format", "ascii", "ascii or md")
	f.StringVar(&summaryFlags.sortBy, "sort", "", "order pie slices by label, value or records")
	f.BoolVar(&summaryFlags.asc, "asc", false, "ascending slice order")
}

type selected struct {
	conf  *config.Conf
	dash  *dashboard.Dashboard
	state model.ControlState
}

// selection loads the dataset and resolves the control state from flags,
// falling back to the dashboard's initial state.
func selection(cmd *cobra.Command) (*selected, error) {
	conf, err := loadConf()
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(cmd.Context(), conf)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	dash := dashboard.New(ds)

	st := dash.InitialState()
	st.Site = selFlags.site
	if !dash.KnownSite(st.Site) {
		logger := logging.New("summary")
		ev := logger.Warn().Str("site", st.Site)
		if s, ok := dash.SuggestSite(st.Site); ok {
			ev = ev.Str("did_you_mean", s)
		}
		ev.Msg("unknown launch site, charts will be empty")
	}
	if cmd.Flags().Changed("low") {
		st.Payload.Low = selFlags.low
	}
	if cmd.Flags().Changed("high") {
		st.Payload.High = selFlags.high
	}
	return &selected{conf: conf, dash: dash, state: st}, nil
}

func runSummary(cmd *cobra.Command, _ []string) error {
	switch summaryFlags.chart {
	case "pie", "scatter", "all":
	default:
		return fmt.Errorf("unknown chart %q (want pie, scatter or all)", summaryFlags.chart)
	}

	sel, err := selection(cmd)
	if err != nil {
		return err
	}
	dash, st := sel.dash, sel.state
	mode := format.ParseMode(summaryFlags.format)
	out := cmd.OutOrStdout()

	if summaryFlags.chart != "scatter" {
		pie := dash.PieFigure(st.Site)
		pie.Slices = aggregate.SortSlices(pie.Slices, summaryFlags.sortBy, summaryFlags.asc)
		fmt.Fprintln(out, format.PieTable(pie, mode))
	}
	if summaryFlags.chart != "pie" {
		fmt.Fprintln(out, format.ScatterTable(dash.ScatterFigure(st.Site, st.Payload), mode))
	}
	return nil
}
