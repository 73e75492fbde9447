// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/viper"

	"github.com/ava-labs/tokenledger/consts"
	"github.com/ava-labs/tokenledger/pebble"
	"github.com/ava-labs/tokenledger/server"
	"github.com/ava-labs/tokenledger/trace"
)

const EnvPrefix = "LEDGERD"

var (
	ErrMissingDataDir        = errors.New("data directory is empty")
	ErrInvalidValidityWindow = errors.New("validity window must be positive")
	ErrInvalidShutdown       = errors.New("shutdown timeout must be positive")
)

type LogConfig struct {
	Level        string `json:"level"        mapstructure:"level"`
	DisplayLevel string `json:"displayLevel" mapstructure:"display-level"`
	Format       string `json:"format"       mapstructure:"format"`
	// Directory defaults to <data-dir>/logs when empty
	Directory string `json:"directory" mapstructure:"directory"`
	MaxSize   int    `json:"maxSize"   mapstructure:"max-size"`
	MaxFiles  int    `json:"maxFiles"  mapstructure:"max-files"`
	MaxAge    int    `json:"maxAge"    mapstructure:"max-age"`
	Compress  bool   `json:"compress"  mapstructure:"compress"`
}

type Config struct {
	DataDir string `json:"dataDir" mapstructure:"data-dir"`
	// GenesisFile is only read when the data directory holds no ledger.
	// When empty, the default token is issued to Issuer.
	GenesisFile string `json:"genesisFile" mapstructure:"genesis-file"`
	Issuer      string `json:"issuer"      mapstructure:"issuer"`

	HTTPHost        string            `json:"httpHost"        mapstructure:"http-host"`
	HTTPPort        uint16            `json:"httpPort"        mapstructure:"http-port"`
	HTTP            server.HTTPConfig `json:"http"            mapstructure:"http"`
	AllowedOrigins  []string          `json:"allowedOrigins"  mapstructure:"allowed-origins"`
	AllowedHosts    []string          `json:"allowedHosts"    mapstructure:"allowed-hosts"`
	ShutdownTimeout time.Duration     `json:"shutdownTimeout" mapstructure:"shutdown-timeout"`

	// ValidityWindow bounds how far in the future a transaction may expire
	ValidityWindow time.Duration `json:"validityWindow" mapstructure:"validity-window"`

	Log    LogConfig     `json:"log"    mapstructure:"log"`
	Pebble pebble.Config `json:"pebble" mapstructure:"pebble"`
	Trace  trace.Config  `json:"trace"  mapstructure:"trace"`
}

func NewDefaultConfig() Config {
	dataDir := "." + consts.Name
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, dataDir)
	}
	return Config{
		DataDir:         dataDir,
		HTTPHost:        "127.0.0.1",
		HTTPPort:        9650,
		HTTP:            server.NewDefaultHTTPConfig(),
		AllowedOrigins:  []string{"*"},
		AllowedHosts:    []string{"localhost"},
		ShutdownTimeout: 10 * time.Second,
		ValidityWindow:  time.Minute,
		Log: LogConfig{
			Level:        logging.Info.String(),
			DisplayLevel: logging.Info.String(),
			Format:       "auto",
			MaxSize:      8,
			MaxFiles:     7,
			MaxAge:       0,
		},
		Pebble: pebble.NewDefaultConfig(),
		Trace: trace.Config{
			Enabled:         false,
			TraceSampleRate: 0.1,
			Endpoint:        trace.DefaultEndpoint,
			AppName:         consts.Name,
			Agent:           consts.Name,
			Version:         consts.Version,
		},
	}
}

// SetDefaults registers every key on [v] so values can be overridden
// through the environment, e.g. LEDGERD_LOG_LEVEL=debug.
func SetDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data-dir", d.DataDir)
	v.SetDefault("genesis-file", d.GenesisFile)
	v.SetDefault("issuer", d.Issuer)
	v.SetDefault("http-host", d.HTTPHost)
	v.SetDefault("http-port", d.HTTPPort)
	v.SetDefault("http.read-timeout", d.HTTP.ReadTimeout)
	v.SetDefault("http.read-header-timeout", d.HTTP.ReadHeaderTimeout)
	v.SetDefault("http.write-timeout", d.HTTP.WriteTimeout)
	v.SetDefault("http.idle-timeout", d.HTTP.IdleTimeout)
	v.SetDefault("allowed-origins", d.AllowedOrigins)
	v.SetDefault("allowed-hosts", d.AllowedHosts)
	v.SetDefault("shutdown-timeout", d.ShutdownTimeout)
	v.SetDefault("validity-window", d.ValidityWindow)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.display-level", d.Log.DisplayLevel)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.directory", d.Log.Directory)
	v.SetDefault("log.max-size", d.Log.MaxSize)
	v.SetDefault("log.max-files", d.Log.MaxFiles)
	v.SetDefault("log.max-age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("pebble.cache-size", d.Pebble.CacheSize)
	v.SetDefault("pebble.bytes-per-sync", d.Pebble.BytesPerSync)
	v.SetDefault("pebble.wal-bytes-per-sync", d.Pebble.WALBytesPerSync)
	v.SetDefault("pebble.mem-table-stop-writes-threshold", d.Pebble.MemTableStopWritesThreshold)
	v.SetDefault("pebble.mem-table-size", d.Pebble.MemTableSize)
	v.SetDefault("pebble.max-open-files", d.Pebble.MaxOpenFiles)
	v.SetDefault("pebble.concurrent-compactions", d.Pebble.ConcurrentCompactions)
	v.SetDefault("pebble.sync", d.Pebble.Sync)

	v.SetDefault("trace.enabled", d.Trace.Enabled)
	v.SetDefault("trace.sample-rate", d.Trace.TraceSampleRate)
	v.SetDefault("trace.endpoint", d.Trace.Endpoint)
	v.SetDefault("trace.app-name", d.Trace.AppName)
	v.SetDefault("trace.agent", d.Trace.Agent)
	v.SetDefault("trace.version", d.Trace.Version)
}

// Load decodes the merged view of [v] (defaults, config file, environment
// and bound flags) and verifies it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, c.Verify()
}

func (c Config) Verify() error {
	switch {
	case c.DataDir == "":
		return ErrMissingDataDir
	case c.ValidityWindow <= 0:
		return ErrInvalidValidityWindow
	case c.ShutdownTimeout <= 0:
		return ErrInvalidShutdown
	}
	if _, err := logging.ToLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ToLevel(c.Log.DisplayLevel); err != nil {
		return err
	}
	_, err := logging.ToFormat(c.Log.Format, os.Stdout.Fd())
	return err
}

func (c Config) ListenAddress() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(int(c.HTTPPort)))
}

// LoggingConfig converts the log section into the factory's format.
// Assumes [c] has been verified.
func (c Config) LoggingConfig() logging.Config {
	level, _ := logging.ToLevel(c.Log.Level)
	displayLevel, _ := logging.ToLevel(c.Log.DisplayLevel)
	format, _ := logging.ToFormat(c.Log.Format, os.Stdout.Fd())

	dir := c.Log.Directory
	if dir == "" {
		dir = filepath.Join(c.DataDir, "logs")
	}
	return logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   c.Log.MaxSize,
			MaxFiles:  c.Log.MaxFiles,
			MaxAge:    c.Log.MaxAge,
			Directory: dir,
			Compress:  c.Log.Compress,
		},
		LogLevel:     level,
		DisplayLevel: displayLevel,
		LogFormat:    format,
	}
}
