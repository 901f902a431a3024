package main

import (
	"bytes"
	"fmt"
	"os"

	"spacex-dashboard/internal/aggregate"
	"spacex-dashboard/internal/export"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/render"
	"spacex-dashboard/pkg/utils"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var renderFlags struct {
	outDir string
	image  string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write both charts and the selected launches to an output directory",
	RunE:  runRender,
}

func init() {
	addSelectionFlags(renderCmd)
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.outDir, "out", "output", "base output directory")
	f.StringVar(&renderFlags.image, "image", "svg", "image format: svg or png")
}

func runRender(cmd *cobra.Command, _ []string) error {
	imgFormat, err := render.ParseFormat(renderFlags.image)
	if err != nil {
		return err
	}
	sel, err := selection(cmd)
	if err != nil {
		return err
	}
	dash, st := sel.dash, sel.state
	rd := render.New(sel.conf.Chart.Width, sel.conf.Chart.Height)

	om := utils.NewOutputManager(renderFlags.outDir)
	runName := utils.RunName(st.Site, fmt.Sprintf("%g-%g", st.Payload.Low, st.Payload.High))
	pieFile, err := om.GetOutputFilePath(runName, model.PieChartID+"."+string(imgFormat))
	if err != nil {
		return err
	}
	scatterFile, err := om.GetOutputFilePath(runName, model.ScatterChartID+"."+string(imgFormat))
	if err != nil {
		return err
	}
	recordsFile, err := om.GetOutputFilePath(runName, "launches.csv")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		var buf bytes.Buffer
		if err := rd.Pie(dash.PieFigure(st.Site), imgFormat, &buf); err != nil {
			return err
		}
		return os.WriteFile(pieFile, buf.Bytes(), 0644)
	})
	g.Go(func() error {
		var buf bytes.Buffer
		if err := rd.Scatter(dash.ScatterFigure(st.Site, st.Payload), imgFormat, &buf); err != nil {
			return err
		}
		return os.WriteFile(scatterFile, buf.Bytes(), 0644)
	})
	g.Go(func() error {
		res := export.ToFile(recordsFile, aggregate.Filter(dash.Dataset(), st.Site, st.Payload))
		if !res.Success {
			return fmt.Errorf("export records: %s", res.Error)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range []string{pieFile, scatterFile, recordsFile} {
		size, err := om.GetFileSize(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-4s %8d  %s\n", om.GetFileType(p), size, p)
	}
	return nil
}
