package gouri

import (
	"log/slog"
	"sync/atomic"

	"github.com/ghettovoice/gouri/internal/log"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(log.Noop)
}

// SetLogger installs a logger for parser diagnostics, such as hosts falling
// through to IDN mapping. Passing nil restores the no-op default. Logging
// never affects parse results.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Noop
	}
	pkgLogger.Store(l)
}

func logger() *slog.Logger { return pkgLogger.Load() }
