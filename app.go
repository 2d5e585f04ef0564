package aioconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/aio-config/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for a tool built on the layered config store.
type App struct {
	app    *fx.App
	logger *slog.Logger
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app, logger := configure(&options)

	return &App{
		app:    app,
		logger: logger,
	}
}

func configure(options *Options) (*fx.App, *slog.Logger) {
	config := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := createLogger(config, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(config),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	), logger
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// Start runs the OnStart hooks of every module, in particular the config store construction.
func (app *App) Start(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

// Stop runs the OnStop hooks of every module.
func (app *App) Stop(ctx context.Context) error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}

// Run is the entry point of a command: it starts the application, waits
// until a module calls fx.Shutdowner or an OS signal arrives, stops the
// application and returns the process exit code.
//
//	func main() {
//	    os.Exit(aioconfig.NewApp(opts...).Run())
//	}
func (app *App) Run() int {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return 1
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.app.StartTimeout())
	defer cancelStart()

	err := app.Start(startCtx)
	if err != nil {
		app.logger.Error("app did not start", slog.String("error", err.Error()))

		return 1
	}

	signal := <-app.app.Wait()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.app.StopTimeout())
	defer cancelStop()

	err = app.Stop(stopCtx)
	if err != nil {
		app.logger.Error("app did not stop cleanly", slog.String("error", err.Error()))

		return 1
	}

	return signal.ExitCode
}
