// Package main implements a system tray application for switching the
// resolution of the default display. It lists the 60Hz modes the display
// reports, favorites first, and applies the one the user clicks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/codeGROOVE-dev/resswitch/cmd/resswitch/x11tray"
	"github.com/codeGROOVE-dev/resswitch/pkg/command"
	"github.com/codeGROOVE-dev/resswitch/pkg/display"
	"github.com/codeGROOVE-dev/resswitch/pkg/logging"
	"github.com/codeGROOVE-dev/resswitch/pkg/modes"
	"github.com/codeGROOVE-dev/resswitch/pkg/notify"
	"github.com/codeGROOVE-dev/retry"
	"github.com/energye/systray"
)

// Version information - set during build with -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	appName          = "resswitch"
	appTitle         = "Resolution Switcher"
	minPollInterval  = 1 * time.Millisecond
	maxPollInterval  = 1 * time.Second
	trayWaitAttempts = 8
	trayWaitMaxDelay = 5 * time.Second
)

// Process exit codes.
const (
	exitOK          = 0
	exitStartup     = 1
	exitMenuFailure = 2
)

// displaySystem is the OS side: mode table, mode changes and the active mode.
type displaySystem interface {
	display.Source
	display.Applier
	Current() (display.Mode, bool)
}

// failureNotifier surfaces apply failures to the user.
type failureNotifier interface {
	ApplyFailed(m display.Mode, err error)
}

// App holds the application state. After startup only the command channel
// is shared between tray callbacks and the control loop.
type App struct {
	system       displaySystem
	tray         SystrayInterface
	notifier     failureNotifier
	commands     *command.Channel
	favorites    []modes.Triple
	pollInterval time.Duration
	exitCode     int
}

func main() {
	var debugMode bool
	var showVersion bool
	var pollInterval time.Duration
	flag.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Show version information and exit")
	flag.DurationVar(&pollInterval, "poll", command.DefaultPollInterval, "Control loop wake interval (e.g. 10ms)")
	flag.Parse()

	if showVersion {
		fmt.Printf("resswitch version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		os.Exit(exitOK)
	}

	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	closeLog := setupLogging(logLevel)
	defer closeLog()

	slog.Info("Starting resswitch", "version", version, "commit", commit, "date", date)
	pollInterval = clampPoll(pollInterval)

	settings := loadSettings(settingsManager())
	slog.Info("Configuration",
		"poll_interval", pollInterval,
		"favorites", len(settings.Favorites),
		"notify_on_failure", settings.NotifyOnFailure)

	ctx := context.Background()

	slog.Info("Checking system tray availability...")
	trayProxy, err := waitForTray(ctx)
	if err != nil {
		slog.Error("FATAL: System tray unavailable",
			"error", err,
			"help", "Ensure your desktop environment has a system tray, or install snixembed")
		closeLog()
		os.Exit(exitStartup) //nolint:gocritic // log file closed above
	}

	app := &App{
		system:       display.System{},
		tray:         &RealSystray{},
		commands:     command.NewChannel(),
		favorites:    settings.Favorites,
		pollInterval: pollInterval,
	}
	var notifier *notify.Notifier
	if settings.NotifyOnFailure {
		notifier = notify.New(notify.DefaultWindow)
		app.notifier = notifier
	}

	slog.Info("Starting systray...")
	appCtx, cancel := context.WithCancel(ctx)

	systray.Run(func() { app.onReady(appCtx) }, func() {
		slog.Info("Shutting down application", "exit_code", app.exitCode)
		cancel()
		if notifier != nil {
			notifier.Wait()
		}
		if trayProxy != nil {
			slog.Info("Stopping system tray proxy")
			if err := trayProxy.Stop(); err != nil {
				slog.Warn("Failed to stop tray proxy cleanly", "error", err)
			}
		}
	})

	cancel()
	closeLog()
	os.Exit(app.exitCode)
}

// setupLogging sends logs to stderr and a daily file under the cache dir.
// It returns a func that closes the log file; calling it twice is fine.
func setupLogging(level slog.Level) func() {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})))
		slog.Warn("Failed to get cache directory, logging to stderr only", "error", err)
		return func() {}
	}

	logDir := filepath.Join(cacheDir, appName, "logs")
	logger, closer, err := logging.Setup(os.Stderr, logDir, appName, level, time.Now())
	slog.SetDefault(logger)
	if err != nil {
		slog.Warn("File logging disabled", "error", err)
	} else {
		slog.Info("Logs are being written to", "dir", logDir)
	}

	closed := false
	return func() {
		if closed {
			return
		}
		closed = true
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
		}
	}
}

// clampPoll keeps the loop interval within sane bounds.
func clampPoll(d time.Duration) time.Duration {
	switch {
	case d < minPollInterval:
		slog.Warn("Poll interval too short, using minimum", "requested", d, "minimum", minPollInterval)
		return minPollInterval
	case d > maxPollInterval:
		slog.Warn("Poll interval too long, using maximum", "requested", d, "maximum", maxPollInterval)
		return maxPollInterval
	default:
		return d
	}
}

// waitForTray gives the desktop a few seconds to bring up its tray, which
// matters when the app is launched at login.
func waitForTray(ctx context.Context) (*x11tray.ProxyProcess, error) {
	var proxy *x11tray.ProxyProcess
	err := retry.Do(func() error {
		p, err := x11tray.EnsureTray(ctx)
		if err != nil {
			return err
		}
		proxy = p
		return nil
	},
		retry.Attempts(trayWaitAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(trayWaitMaxDelay),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("[TRAY] System tray not ready", "attempt", n+1, "maxAttempts", trayWaitAttempts, "error", err)
		}),
		retry.Context(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("wait for system tray: %w", err)
	}
	return proxy, nil
}
