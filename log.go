package kriging

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	loggerMu sync.RWMutex
	logger   = log.New(os.Stderr, "kriging: ", log.LstdFlags)
)

// SetLogger replaces the package logger. A nil logger discards all output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func logf(format string, args ...interface{}) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	l.Printf(format, args...)
}
