package security

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

// PoweredBy is the server identification advertised instead of the real stack.
const PoweredBy = "Microsoft-IIS/8.0"

// New returns the security-header middleware: the helmet policy plus a
// spoofed X-Powered-By header.
func New() fiber.Handler {
	h := helmet.New(helmet.Config{
		XSSProtection:             "0",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "SAMEORIGIN",
		HSTSMaxAge:                15552000,
		ReferrerPolicy:            "no-referrer",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	})

	return func(c *fiber.Ctx) error {
		c.Set("X-Powered-By", PoweredBy)
		return h(c)
	}
}
