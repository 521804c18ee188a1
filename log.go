package pathkit

import (
	"sync/atomic"

	"github.com/go-kit/log"
)

type loggerHolder struct{ log.Logger }

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(loggerHolder{log.NewNopLogger()})
}

// SetLogger replaces the logger used by components which have no
// logger of their own. By default nothing is logged.
func SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	defaultLogger.Store(loggerHolder{logger})
}

// Logger returns the package logger.
func Logger() log.Logger {
	return defaultLogger.Load().(loggerHolder).Logger
}

func loggerOr(l log.Logger) log.Logger {
	if l != nil {
		return l
	}
	return Logger()
}
