package status

import (
	"context"
	"time"

	"webboot/core/logger"
	"webboot/core/server"
	"webboot/core/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	StoreUp       = "up"
	StoreDown     = "down"
	StoreDisabled = "disabled"
)

// Report is the body of GET /status.
type Report struct {
	Env       string      `json:"env"`
	UptimeSec int64       `json:"uptime_sec"`
	Store     StoreReport `json:"store"`
}

// StoreReport describes the datastore reachability.
type StoreReport struct {
	Status string `json:"status"`
	Addr   string `json:"addr,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Feature reports server and datastore status.
type Feature struct {
	store   store.Client
	env     server.Environment
	started time.Time
	timeout time.Duration
	logger  *zap.Logger
}

// NewFeature creates the status feature. client may be nil when the store
// is not connected.
func NewFeature(client store.Client, env server.Environment, timeout time.Duration, logger *zap.Logger) *Feature {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Feature{
		store:   client,
		env:     env,
		started: time.Now(),
		timeout: timeout,
		logger:  logger,
	}
}

func (f *Feature) Name() string {
	return "status"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(r fiber.Router) error {
	r.Get("/status", f.HandleStatus)
	return nil
}

// HandleStatus reports uptime and store reachability.
// A down store yields 503 so load balancers can react to it.
func (f *Feature) HandleStatus(c *fiber.Ctx) error {
	report := Report{
		Env:       string(f.env),
		UptimeSec: int64(time.Since(f.started).Seconds()),
		Store:     StoreReport{Status: StoreDisabled},
	}

	if f.store == nil {
		return c.JSON(report)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), f.timeout)
	defer cancel()

	report.Store.Addr = f.store.Addr()
	if err := f.store.Ping(ctx); err != nil {
		logger.WithRayID(f.logger, c).Warn("Store ping failed", zap.Error(err))
		report.Store.Status = StoreDown
		if !f.env.IsProduction() {
			report.Store.Error = err.Error()
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}

	report.Store.Status = StoreUp
	return c.JSON(report)
}
