package logger

import (
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/spf13/viper"
)

const (
	envLogDir      = "log_dir"
	envLogLevel    = "log_level"
	envServiceName = "service_name"

	diodeSize         = 1024
	diodePollInterval = 15 * time.Millisecond
)

var (
	global     atomic.Pointer[zerolog.Logger] // global, shared logger.
	once       sync.Once                      // guards global.
	logFile    *os.File
	logfileErr error

	openMu  sync.Mutex
	closers []io.Closer // files and diodes opened by New and NewThreadSafeLogger, in open order.
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

// env reads the BEU_* variables the global logger is configured with.
func env() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("BEU")
	v.AutomaticEnv()
	v.SetDefault(envLogDir, ".")
	v.SetDefault(envLogLevel, zerolog.InfoLevel.String())
	v.SetDefault(envServiceName, "beu-unknown")
	return v
}

func newDiode(w io.Writer) diode.Writer {
	return diode.NewWriter(w, diodeSize, diodePollInterval, func(missed int) { log.Printf("diode: dropped %d log messages", missed) })
}

// Logfile returns the log file for this instance of the program, if any.
// It is safe to call this function from multiple goroutines, but accesses to the file are not synchronized.
func Logfile() (*os.File, error) {
	initLogger()
	return logFile, logfileErr
}

func initLogger() {
	once.Do(func() {
		cfg := env()
		servicename := cfg.GetString(envServiceName)

		// log to $BEU_LOG_DIR/<service_name>_<timestamp>.log and stdout. if the file can't be created, stdout only.
		var w io.Writer
		dir := cfg.GetString(envLogDir)
		if logfileErr = os.MkdirAll(dir, 0o755); logfileErr == nil {
			logFile, logfileErr = os.Create(filepath.Join(dir, fmt.Sprintf("%s_%s.log", servicename, time.Now().Format(time.RFC3339))))
		}
		if logfileErr != nil {
			w = newDiode(os.Stdout)
		} else {
			w = newDiode(io.MultiWriter(logFile, os.Stdout))
		}

		level, err := zerolog.ParseLevel(cfg.GetString(envLogLevel))
		if err != nil || level == zerolog.NoLevel {
			level = zerolog.InfoLevel
		}

		logger := zerolog.New(w).
			Level(level).
			With().
			Timestamp().
			Str("instance_id", must(uuid.NewV7()).String()).Str("service", servicename).
			Logger()
		if logfileErr != nil {
			logger.Warn().Err(logfileErr).Msg("logfile is not being used, check BEU_LOG_DIR and BEU_LOG_LEVEL env vars")
		}

		dbglogger := logger.With().
			Int("gomaxprocs", runtime.GOMAXPROCS(0)).
			Str("goarch", runtime.GOARCH).
			Str("goos", runtime.GOOS).
			Logger()

		if info, ok := debug.ReadBuildInfo(); ok {
			dbglogger.Debug().Str("go", info.GoVersion).Str("module", info.Main.Path).Str("version", info.Main.Version).Msg("buildinfo")
		}
		dbglogger.Debug().Msg("logger init")
		global.Store(&logger)
	})
}

// Global returns the global logger. This function initializes the logger exactly once.
// It is safe to call this function from multiple goroutines.
// The Global logger relies on the following environment variables:
//
//   - BEU_LOG_DIR: directory to write the log file to, defaults to the current directory. logs will be written to a file named "<service_name>_<timestamp>.log".
//   - BEU_LOG_LEVEL: the log level, defaults to "info". Possible values are "debug", "info", "warn", "error", "fatal", "panic".
//   - BEU_SERVICE_NAME: the name of the service, defaults to "beu-unknown"
func Global() *zerolog.Logger {
	initLogger()
	return global.Load()
}

// Add fields to the global logger, thread-safe. Avoid this where possible, but sometimes it's handy.
func AddFieldsToGlobal(fields map[string]any) {
	for {
		old := Global()
		newentry := old.With()
		for k, v := range fields {
			newentry = newentry.Any(k, v)
		}
		new := newentry.Logger()

		if global.CompareAndSwap(old, &new) {
			return
		}
	}
}

// New returns a logger at level appending to file, and to stdout as well when console is set.
// An empty file logs to stdout only. Files stay open until Close.
func New(level, file string, console bool) (zerolog.Logger, error) {
	w, err := open(file, console)
	if err != nil {
		return zerolog.Nop(), err
	}
	return build(level, w)
}

// NewThreadSafeLogger is New behind a non blocking diode writer. Messages are dropped, never
// blocked on, when the writer falls behind. Close flushes what is buffered.
func NewThreadSafeLogger(level, file string, console bool) (zerolog.Logger, error) {
	w, err := open(file, console)
	if err != nil {
		return zerolog.Nop(), err
	}
	// the diode must not close what it wraps; open tracks the file itself.
	d := newDiode(struct{ io.Writer }{w})
	openMu.Lock()
	closers = append(closers, d)
	openMu.Unlock()
	return build(level, d)
}

// Close flushes and closes every writer opened by New and NewThreadSafeLogger.
func Close() error {
	openMu.Lock()
	defer openMu.Unlock()

	var errs []error
	// diodes wrap files, so they are flushed before the files under them are closed.
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	closers = nil
	return stderrors.Join(errs...)
}

func open(file string, console bool) (io.Writer, error) {
	if file == "" {
		return os.Stdout, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", file, err)
	}
	openMu.Lock()
	closers = append(closers, f)
	openMu.Unlock()
	if console {
		return io.MultiWriter(f, os.Stdout), nil
	}
	return f, nil
}

func build(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
