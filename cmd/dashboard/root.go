package main

import (
	"fmt"

	"spacex-dashboard/internal/config"
	"spacex-dashboard/internal/logging"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	dataPath   string
	source     string
	dbPath     string
	importID   string
	listen     string
	logLevel   string
}

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "SpaceX launch records dashboard",
	Long: `Serves an interactive dashboard over the SpaceX launch table: a success
pie chart per launch site and a payload vs. outcome scatter chart filtered
by payload mass. Without a subcommand the dashboard server is started.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.configPath, "config", "", "YAML config file")
	f.StringVar(&rootFlags.dataPath, "data", "", "launch table CSV path or http(s) URL")
	f.StringVar(&rootFlags.source, "source", "", "dataset source: csv or sqlite")
	f.StringVar(&rootFlags.dbPath, "db", "", "sqlite snapshot database")
	f.StringVar(&rootFlags.importID, "import-id", "", "snapshot to load with --source=sqlite (default latest)")
	f.StringVar(&rootFlags.listen, "listen", "", "listen address host:port")
	f.StringVar(&rootFlags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.Version = version
}

// loadConf reads the config file, applies flag overrides and sets up logging.
func loadConf() (*config.Conf, error) {
	conf, err := config.Load(rootFlags.configPath)
	if err != nil {
		return nil, err
	}
	if rootFlags.dataPath != "" {
		conf.DataPath = rootFlags.dataPath
	}
	if rootFlags.source != "" {
		conf.DataSource = rootFlags.source
	}
	if rootFlags.dbPath != "" {
		conf.DBPath = rootFlags.dbPath
	}
	if rootFlags.importID != "" {
		conf.ImportID = rootFlags.importID
	}
	if rootFlags.logLevel != "" {
		conf.Logging.Level = rootFlags.logLevel
	}
	logging.Init(conf.Logging.Level, conf.Logging.Format)

	if err := config.ValidateAndDefaults(conf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if rootFlags.listen != "" {
		if err := conf.SetAddr(rootFlags.listen); err != nil {
			return nil, err
		}
	}
	return conf, nil
}
