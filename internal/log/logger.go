package log

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger builds the process-wide logger. Development mode gives
// human-readable console output with debug level enabled.
func InitLogger(dev bool) {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Logger = l
}

// UseNop swaps in a no-op logger. Tests call it before touching code that logs.
func UseNop() {
	Logger = zap.NewNop()
}

func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
