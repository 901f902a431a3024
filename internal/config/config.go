package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	dfltListenAddress          = "127.0.0.1"
	dfltListenPort             = 8050
	dfltDataPath               = "spacex_launch_dash.csv"
	dfltDBPath                 = "launches.db"
	dfltServerReadTimeoutSecs  = 10
	dfltServerWriteTimeoutSecs = 30
	dfltChartWidth             = 900
	dfltChartHeight            = 450
	dfltLogLevel               = "info"
	dfltLogFormat              = "console"

	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

type LoggingConf struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console, json
}

type ChartConf struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Conf struct {
	srcPath                string
	ListenAddress          string      `yaml:"listenAddress"`
	ListenPort             int         `yaml:"listenPort"`
	DataPath               string      `yaml:"dataPath"`
	DataSource             string      `yaml:"dataSource"` // csv, sqlite
	DBPath                 string      `yaml:"dbPath"`
	ImportID               string      `yaml:"importId"` // sqlite snapshot; empty = latest
	ServerReadTimeoutSecs  int         `yaml:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int         `yaml:"serverWriteTimeoutSecs"`
	Chart                  ChartConf   `yaml:"chart"`
	Logging                LoggingConf `yaml:"logging"`
}

// Default returns the configuration used when no config file is given.
func Default() *Conf {
	conf := &Conf{}
	applyDefaults(conf)
	return conf
}

// Load reads a YAML config file. An empty path yields Default().
func Load(path string) (*Conf, error) {
	if path == "" {
		return Default(), nil
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var conf Conf
	if err := yaml.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	conf.srcPath = path
	return &conf, nil
}

// SrcPath is the file the configuration was read from, empty for defaults.
func (conf *Conf) SrcPath() string {
	return conf.srcPath
}

// Addr is the host:port the HTTP server listens on.
func (conf *Conf) Addr() string {
	return net.JoinHostPort(conf.ListenAddress, strconv.Itoa(conf.ListenPort))
}

// SetAddr overrides address and port from a host:port string.
func (conf *Conf) SetAddr(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 0 || p > 65535 {
		return fmt.Errorf("invalid listen port %q", port)
	}
	conf.ListenAddress = host
	conf.ListenPort = p
	return nil
}

// ValidateAndDefaults fills missing values and rejects unusable ones.
func ValidateAndDefaults(conf *Conf) error {
	if conf.ListenPort == 0 {
		log.Warn().Int("listenPort", dfltListenPort).Msg("listenPort not specified, using default")
	}
	if conf.DataPath == "" {
		log.Warn().Str("dataPath", dfltDataPath).Msg("dataPath not specified, using default")
	}
	applyDefaults(conf)

	conf.DataSource = strings.ToLower(conf.DataSource)
	switch conf.DataSource {
	case SourceCSV, SourceSQLite:
	default:
		return fmt.Errorf("unknown dataSource %q (want %s or %s)", conf.DataSource, SourceCSV, SourceSQLite)
	}
	if conf.ListenPort < 0 || conf.ListenPort > 65535 {
		return fmt.Errorf("listenPort out of range: %d", conf.ListenPort)
	}
	if conf.Chart.Width < 0 || conf.Chart.Height < 0 {
		return fmt.Errorf("chart size must not be negative: %dx%d", conf.Chart.Width, conf.Chart.Height)
	}
	return nil
}

func applyDefaults(conf *Conf) {
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
	}
	if conf.DataPath == "" {
		conf.DataPath = dfltDataPath
	}
	if conf.DataSource == "" {
		conf.DataSource = SourceCSV
	}
	if conf.DBPath == "" {
		conf.DBPath = dfltDBPath
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
	}
	if conf.Chart.Width == 0 {
		conf.Chart.Width = dfltChartWidth
	}
	if conf.Chart.Height == 0 {
		conf.Chart.Height = dfltChartHeight
	}
	if conf.Logging.Level == "" {
		conf.Logging.Level = dfltLogLevel
	}
	if conf.Logging.Format == "" {
		conf.Logging.Format = dfltLogFormat
	}
}
