package app

import (
	"webboot/core/loader"
	"webboot/core/logger"
	"webboot/core/middleware/accesslog"
	"webboot/core/middleware/rayid"
	"webboot/core/middleware/realip"
	"webboot/core/middleware/security"
	"webboot/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

const (
	// ViewExt is the template file extension.
	ViewExt = ".html"
	// DefaultLayout wraps every rendered view.
	DefaultLayout = "layouts/main"
	// ViewAlias is the second mount point of the public directory.
	ViewAlias = "/view"
)

// TrustedProxies are the peers allowed to supply X-Forwarded-For:
// loopback, link-local and unique-local ranges plus the two edge balancers.
var TrustedProxies = []string{
	"127.0.0.0/8", "::1/128",
	"169.254.0.0/16", "fe80::/10",
	"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16", "fc00::/7",
	"10.10.10.1", "10.10.10.2",
}

// Options carries what the application is assembled from.
type Options struct {
	Server   server.Config
	Logs     *logger.Set
	Features *loader.Manager
}

// New assembles the Fiber application. Every middleware and route is
// registered before it returns; nothing may be added once it is listening.
//
// Registration order is the request order: security headers, ray id, client
// address, access log, panic recovery, static files at "/" and "/view", the features, and
// finally the JSON not-found handler. Request bodies and cookies are parsed
// on demand by Fiber itself.
func New(opts Options) (*fiber.App, error) {
	proxies, err := realip.NewResolver(TrustedProxies)
	if err != nil {
		return nil, err
	}

	engine := html.New(opts.Server.ViewsDir, ViewExt)
	engine.Reload(opts.Server.Debug)

	a := fiber.New(fiber.Config{
		DisableStartupMessage:   true, // We log our own startup message
		ETag:                    false,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          TrustedProxies,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableIPValidation:      true,
		Views:                   engine,
		ViewsLayout:             DefaultLayout,
		ErrorHandler:            NewErrorHandler(opts.Server.Env, opts.Logs.App),
	})

	a.Use(security.New())
	a.Use(rayid.New())
	a.Use(realip.New(proxies))
	a.Use(accesslog.New(opts.Logs.Access))
	a.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: panicHandler(opts.Logs.Exceptions),
	}))

	a.Static("/", opts.Server.PublicDir)
	a.Static(ViewAlias, opts.Server.PublicDir)

	loaded, err := opts.Features.LoadAll(a)
	if err != nil {
		return nil, err
	}
	opts.Logs.App.Debug("Features loaded", zap.Strings("features", loaded))

	a.Use(NotFound)

	return a, nil
}

// NotFound answers every request no earlier handler matched.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"code": fiber.StatusNotFound})
}

func panicHandler(l *zap.Logger) func(*fiber.Ctx, interface{}) {
	return func(c *fiber.Ctx, e interface{}) {
		logger.WithRayID(l, c).Error("Uncaught exception",
			zap.Any("panic", e),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.StackSkip("stack", 2),
		)
	}
}
