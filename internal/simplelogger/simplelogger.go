package simplelogger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable FromEnv reads the log path from.
const EnvVar = "HUNKALIGN_LOG_FILE"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// lockedFile serializes writes so that loggers sharing a file don't interleave within a single process.
type lockedFile struct {
	mu sync.Mutex
	f  *os.File
}

func (l *lockedFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Write(p)
}

func (l *lockedFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// New returns a logger that appends JSON lines to the file at path, creating it if needed, and a Closer for that file.
//
// If path is empty, New returns a no-op logger. If a non-empty path can't be opened, New returns a no-op logger along with the error, so callers that don't
// care about logging failures can ignore it.
func New(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	w := &lockedFile{f: f}

	logger := zerolog.New(w).With().Timestamp().Str("app", "hunkalign").Logger()
	return logger, w, nil
}

// Open is like New, except that it never fails: if path can't be opened, the logger is a no-op.
func Open(path string) (zerolog.Logger, io.Closer) {
	logger, closer, err := New(path)
	if err != nil {
		return zerolog.Nop(), nopCloser{}
	}
	return logger, closer
}

// FromEnv is Open with the path taken from HUNKALIGN_LOG_FILE. If the variable is unset or the path can't be opened, the logger is a no-op.
func FromEnv() (zerolog.Logger, io.Closer) {
	return Open(os.Getenv(EnvVar))
}

// Since is a small helper for duration fields: logger.Info().Dur("elapsed", simplelogger.Since(start)).
func Since(start time.Time) time.Duration {
	return time.Since(start).Round(time.Microsecond)
}
