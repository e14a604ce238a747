package index

import (
	"webboot/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves the landing page.
type Feature struct {
	title  string
	logger *zap.Logger
}

// NewFeature creates the index feature rendering the "index" view.
func NewFeature(title string, logger *zap.Logger) *Feature {
	return &Feature{title: title, logger: logger}
}

func (f *Feature) Name() string {
	return "index"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(r fiber.Router) error {
	r.Get("/", f.HandleIndex)
	return nil
}

// HandleIndex renders the landing page.
func (f *Feature) HandleIndex(c *fiber.Ctx) error {
	logger.WithRayID(f.logger, c).Debug("Rendering index")
	return c.Render("index", fiber.Map{
		"Title": f.title,
	})
}
