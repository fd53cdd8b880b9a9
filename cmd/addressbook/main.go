package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/logging"
	"github.com/tartampluch/go-addressbook/internal/shell"
)

// CLI is the process-level flag set. Commands themselves are typed into the shell.
type CLI struct {
	Version bool   `help:"Show application version and exit." short:"V"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	Config  string `help:"Path to a YAML settings file." type:"path" placeholder:"FILE"`
	Lang    string `help:"Shell language (en, uk). Overrides settings." placeholder:"LANG"`
	Horizon int    `help:"Days ahead considered upcoming. Overrides settings." placeholder:"DAYS"`
	Color   string `help:"Colour output: auto, always or never. Overrides settings." placeholder:"MODE"`
}

// main is the application entry point.
// It delegates execution to runMain so that deferred calls (closing the log
// file) run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(config.BinaryName),
		kong.Description(config.AppDescription),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return config.ExitCodeError
	}
	if _, err := parser.Parse(args); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return config.ExitCodeError
	}

	if cli.Version {
		printVersion(stdout)
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Settings
	// -------------------------------------------------------------------------
	settings, err := loadSettings(cli)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", config.ErrSettings, err)
		return config.ExitCodeError
	}

	// -------------------------------------------------------------------------
	// 3. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(settings, cli.Debug, stderr)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 4. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo(settings)
	logSettingsSource(cli.Config, settings)

	// -------------------------------------------------------------------------
	// 5. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, settings, stdin, stdout); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		_, _ = fmt.Fprintln(stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the directory into the shell and serves commands until exit.
func run(ctx context.Context, settings config.Settings, stdin io.Reader, stdout io.Writer) error {
	sh, err := shell.New(book.NewDirectory(), settings, stdout, shell.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	return sh.Run(ctx, stdin)
}

// loadSettings layers the flags over the file and environment settings.
func loadSettings(cli CLI) (config.Settings, error) {
	settings, err := config.LoadSettings(cli.Config)
	if err != nil {
		return config.Settings{}, err
	}
	if cli.Lang != "" {
		settings.Language = cli.Lang
	}
	if cli.Horizon != 0 {
		settings.HorizonDays = cli.Horizon
	}
	if cli.Color != "" {
		settings.Color = cli.Color
	}
	if cli.Debug {
		settings.Log.Level = "debug"
	}
	return settings, settings.Validate()
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(settings config.Settings) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
		slog.String(config.LogKeyLang, settings.Language),
		slog.Int(config.LogKeyHorizon, settings.HorizonDays),
	)
}

// logSettingsSource records where the effective settings came from.
func logSettingsSource(path string, settings config.Settings) {
	log := slog.With(config.LogKeyComponent, config.CompSettings)
	if path == "" {
		log.Info(config.MsgSettingsNoFile)
	} else if _, err := os.Stat(path); err != nil {
		log.Info(config.MsgSettingsNoFile, config.LogKeyFile, path)
	} else {
		log.Info(config.MsgSettingsLoaded, config.LogKeyFile, path)
	}
	log.Debug(config.MsgSettingsLoaded,
		config.LogKeyColor, settings.Color,
		config.LogKeyHorizon, settings.HorizonDays,
	)
}

// setupLogging configures the default slog logger.
// Stdout belongs to the shell, so logs go to a file in the user cache
// directory, and to stderr as well in debug mode.
func setupLogging(settings config.Settings, debugMode bool, stderr io.Writer) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			_, _ = fmt.Fprintf(stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	logger := logging.New(settings.Log.Level, settings.Log.Format, io.MultiWriter(writers...))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
