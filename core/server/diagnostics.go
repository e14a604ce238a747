package server

import (
	"net"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LogEnvironment writes the resolved environment settings at startup.
func LogEnvironment(l *zap.Logger, cfg Config) {
	l.Info("[*] Environment->NODE_ENV", zap.String("env", string(cfg.Env)))
	l.Info("[*] Environment->DEBUG", zap.Bool("debug", cfg.Debug))
}

// LogListening writes the runtime identifiers and the bound address.
// It must only be called once the listener exists.
func LogListening(l *zap.Logger, addr net.Addr) {
	l.Info("[*] Runtime",
		zap.String("go", runtime.Version()),
		zap.String("os", runtime.GOOS),
		zap.String("arch", runtime.GOARCH),
		zap.String("fiber", fiber.Version),
		zap.Int("cpus", runtime.NumCPU()),
	)
	l.Info("[*] Running... Listening on "+Describe(addr),
		zap.String("address", addr.String()))
}
