package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tui-template/app"
	"github.com/lixenwraith/tui-template/config"
	"github.com/lixenwraith/tui-template/core"
	"github.com/lixenwraith/tui-template/logging"
	"github.com/lixenwraith/tui-template/render"
	"github.com/lixenwraith/tui-template/terminal"
)

// Set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

var (
	configPath string
	tickRate   time.Duration
	mouse      bool
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "tui-template",
	Short: "A terminal application loop template",
	Long: `tui-template is a starting point for terminal applications: a raw mode
session with guaranteed restore, an event loop with a steady tick, and
a state driven renderer. Run it, press ? for the key bindings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"tui-template {{.Version}} (%s)\n\nconfig dir: %s\ndata dir:   %s\n",
		commit, config.ConfigDir(), config.DataDir()))

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultConfigPath()+")")
	rootCmd.Flags().DurationVar(&tickRate, "tick-rate", config.DefaultTickRate, "idle redraw cadence")
	rootCmd.Flags().BoolVar(&mouse, "mouse", true, "capture mouse events")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file (default "+config.DefaultLogPath()+")")
}

func main() {
	// Restore the terminal even if something slips past the loop's own
	// teardown, then make the failure visible on the normal screen
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Command line flags win over the config file
	if cmd.Flags().Changed("tick-rate") {
		cfg.TickRate = config.Duration(tickRate)
	}
	if cmd.Flags().Changed("mouse") {
		cfg.Mouse = mouse
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = logFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	ring, closeLogs, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLogs()

	session, err := terminal.New()
	if err != nil {
		return err
	}
	core.SetCrashSession(session)
	session.SetMouse(cfg.Mouse)
	session.SetPaste(cfg.Paste)

	source := terminal.NewSource(session.Screen())
	renderer := render.NewAppRenderer(render.DefaultTheme(), ring)
	loop := app.NewLoop(session, source, renderer)
	loop.SetTickRate(time.Duration(cfg.TickRate))

	// SIGINT and SIGTERM become a quit key press so shutdown always
	// takes the loop's restore path
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	core.Go(func() {
		for range sigCh {
			source.Post(terminal.KeyEvent(tcell.KeyCtrlC, 0, tcell.ModCtrl))
		}
	})

	logging.Info("starting", "version", version, "tick", time.Duration(cfg.TickRate))
	return loop.Run()
}

// setupLogging routes the default logger to the log file and the ring
// the log overlay reads. Nothing may write to stdout or stderr while
// the session holds the terminal.
func setupLogging(cfg *config.Config) (*logging.Ring, func(), error) {
	path := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	ring := logging.NewRing(cfg.Log.BufferLines)
	logging.SetOutput(log.New(io.MultiWriter(file, ring), "", log.LstdFlags))
	logging.SetLevel(logging.ParseLevel(cfg.Log.Level))

	return ring, func() { _ = file.Close() }, nil
}
