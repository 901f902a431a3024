package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spacex-dashboard/internal/api"
	"spacex-dashboard/internal/api/handler"
	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/logging"
	"spacex-dashboard/internal/render"
	"spacex-dashboard/pkg/router"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the launch table and serve the dashboard over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	conf, err := loadConf()
	if err != nil {
		return err
	}
	logger := logging.New("serve")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := dataset.Load(ctx, conf)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.Info().
		Str("source", ds.Source()).
		Int("records", ds.Len()).
		Strs("sites", ds.Sites()).
		Msg("✅ Dataset loaded")

	r := router.New()
	api.RegisterRoutes(r, handler.New(dashboard.New(ds), render.New(conf.Chart.Width, conf.Chart.Height)))

	return r.Start(ctx, router.ServerConfig{
		Addr:         conf.Addr(),
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
	})
}
