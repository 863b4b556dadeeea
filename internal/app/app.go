// Package app holds the application context shared by a control-panel
// window for the lifetime of the process.
//
// A Context is created once at startup, passed to window construction, and
// closed at exit:
//
//	ctx, err := app.New(app.Options{})
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	return ctx.Run(dashboard.New(dashboard.Options{Sheet: ctx.Sheet}))
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rsx-robotics/arm-control/internal/config"
	"github.com/rsx-robotics/arm-control/internal/logging"
	"github.com/rsx-robotics/arm-control/internal/stylesheet"
)

// Options select the files a Context loads. Empty values use the defaults.
type Options struct {
	Name       string // Program name used in log lines
	ConfigPath string // Defaults to config.Path()
	Stylesheet string // Overrides the config; defaults to ./styles.yaml
	LogLevel   string // Overrides the config; RSX_LOG_LEVEL wins over both

	// Program options, mainly for tests.
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Context is the explicit application state: settings, the stylesheet, and
// how to run a window.
type Context struct {
	Name   string
	Config *config.Config
	Sheet  *stylesheet.Sheet

	opts   Options
	closed bool
}

// New initializes logging, loads the config, and loads the stylesheet.
// A broken config file or stylesheet is logged and replaced by the defaults,
// so a window always opens.
func New(opts Options) (*Context, error) {
	cfg, cfgErr := config.Load(opts.ConfigPath)
	if cfgErr != nil {
		cfg = config.Default()
	}

	level := opts.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if env := os.Getenv(logging.LogLevelEnvVar); env != "" {
		level = env
	}
	logFile, err := logFilePath(opts, level)
	if err != nil {
		return nil, err
	}
	if err := logging.Initialize(level, logFile); err != nil {
		return nil, fmt.Errorf("failed to start logging: %w", err)
	}
	if cfgErr != nil {
		logging.Warn("Config ignored, using defaults",
			zap.String("path", opts.ConfigPath),
			zap.Error(cfgErr),
		)
	}

	sheetPath := opts.Stylesheet
	if sheetPath == "" {
		sheetPath = cfg.Stylesheet
	}
	if sheetPath == "" {
		sheetPath = stylesheet.DefaultPath
	}

	ctx := &Context{
		Name:   opts.Name,
		Config: cfg,
		Sheet:  stylesheet.LoadOptional(sheetPath),
		opts:   opts,
	}
	logging.Info("Application started",
		zap.String("program", opts.Name),
		zap.String("stylesheet", sheetPath),
		zap.Int("style_rules", ctx.Sheet.Len()),
	)
	return ctx, nil
}

// logFilePath picks the log destination. RSX_LOG_FILE wins; a window in the
// alt screen logs to <config dir>/<name>.log since stderr shares its terminal.
func logFilePath(opts Options, level string) (string, error) {
	if file := os.Getenv(logging.LogFileEnvVar); file != "" {
		return file, nil
	}
	if level == "" || !opts.AltScreen {
		return "", nil
	}

	dir, err := config.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	name := opts.Name
	if name == "" {
		name = "rsx-arm"
	}
	return filepath.Join(dir, name+".log"), nil
}

// ProgramOptions returns the Bubble Tea options for a window.
func (c *Context) ProgramOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if c.opts.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if c.opts.Input != nil {
		opts = append(opts, tea.WithInput(c.opts.Input))
	}
	if c.opts.Output != nil {
		opts = append(opts, tea.WithOutput(c.opts.Output))
	}
	return opts
}

// Run shows the window and blocks until it is closed.
func (c *Context) Run(window tea.Model) error {
	if c.closed {
		return fmt.Errorf("application context already closed")
	}
	if _, err := tea.NewProgram(window, c.ProgramOptions()...).Run(); err != nil {
		logging.Error("Window failed", zap.String("program", c.Name), zap.Error(err))
		return fmt.Errorf("window failed: %w", err)
	}
	logging.Info("Window closed", zap.String("program", c.Name))
	return nil
}

// Close releases process-wide resources. It is safe to call more than once.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	logging.Sync()
}
