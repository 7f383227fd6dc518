package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OCAP2/milsymbol/internal/catalog"
	"github.com/OCAP2/milsymbol/internal/config"
	"github.com/OCAP2/milsymbol/internal/logging"
	intOtel "github.com/OCAP2/milsymbol/internal/otel"
	"github.com/OCAP2/milsymbol/pkg/milsymbol"
)

// AppName names the log files and the OTel instrumentation scope.
const AppName = "milsymbol"

// app holds the process state set up before every command runs.
type app struct {
	configDir string
	start     time.Time

	logManager *logging.SlogManager
	logger     *slog.Logger
	logFile    *os.File
	otel       *intOtel.Provider
}

func newApp() *app {
	return &app{
		start:      time.Now(),
		logManager: logging.NewSlogManager(AppName),
		logger:     slog.Default(),
	}
}

func main() {
	a := newApp()
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          AppName,
		Short:        "Render MIL-STD-2525D / APP-6 military symbols as SVG",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding "+config.FileName)

	root.AddCommand(a.renderCmd())
	root.AddCommand(a.batchCmd())
	root.AddCommand(a.decodeCmd())
	root.AddCommand(a.catalogCmd())
	return root
}

// setup loads the config, then brings up logging with the optional log
// file and OTel export.
func (a *app) setup() error {
	if err := config.Load(a.configDir); err != nil {
		return err
	}

	if dir := config.GetString("logsDir"); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating logs dir: %w", err)
		}
		path := logging.LogFilePath(dir, AppName, a.start)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
	}

	var logWriter io.Writer
	if a.logFile != nil {
		logWriter = a.logFile
	}

	otelCfg := config.GetOTelConfig()
	provider, err := intOtel.New(intOtel.Config{
		Enabled:      otelCfg.Enabled,
		ServiceName:  otelCfg.ServiceName,
		BatchTimeout: otelCfg.BatchTimeout,
		LogWriter:    logWriter,
		Endpoint:     otelCfg.Endpoint,
		Insecure:     otelCfg.Insecure,
	})
	if err != nil {
		slog.Error("Failed to initialize OTel provider", "error", err)
		provider, _ = intOtel.New(intOtel.Config{})
	}
	a.otel = provider

	a.logManager.Setup(logWriter, config.GetString("logLevel"), a.otel.LoggerProvider())
	a.logger = a.logManager.Logger()
	slog.SetDefault(a.logger)

	if a.otel.Enabled() {
		a.logger.Info("OTel provider initialized", "service", a.otel.ServiceName(), "endpoint", otelCfg.Endpoint)
	}
	return nil
}

// renderer creates a renderer over the configured catalog.
func (a *app) renderer(ctx context.Context) (*milsymbol.Renderer, func(), error) {
	cat, closeCat, err := a.configuredCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	r, err := milsymbol.New(
		milsymbol.WithLogger(a.logger),
		milsymbol.WithCatalog(cat),
		milsymbol.WithMeter(a.otel.Meter(AppName)),
	)
	if err != nil {
		closeCat()
		return nil, nil, err
	}
	return r, closeCat, nil
}

// decoder creates a renderer for decoding only. It never opens the
// catalog.
func (a *app) decoder() (*milsymbol.Renderer, error) {
	return milsymbol.New(
		milsymbol.WithLogger(a.logger),
		milsymbol.WithCatalog(catalog.Builtin()),
		milsymbol.WithMeter(a.otel.Meter(AppName)),
	)
}

// close flushes OTel and closes the log file.
func (a *app) close() {
	if a.otel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.logManager.Flush(ctx); err != nil {
			a.logger.Warn("Failed to flush logs", "error", err)
		}
		if err := a.otel.Shutdown(ctx); err != nil {
			a.logger.Warn("Failed to shut down OTel provider", "error", err)
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
