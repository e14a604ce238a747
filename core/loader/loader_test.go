package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"webboot/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
}

func (f fakeFeature) Name() string    { return f.name }
func (f fakeFeature) IsEnabled() bool { return f.enabled }

func (f fakeFeature) Load(r fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	r.Get("/"+f.name, func(c *fiber.Ctx) error {
		return c.SendString(f.name)
	})
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(fakeFeature{name: "one", enabled: true})
	mgr.Register(fakeFeature{name: "off", enabled: false})
	mgr.Register(fakeFeature{name: "two", enabled: true})

	app := fiber.New()
	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/two", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/off", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAllError(t *testing.T) {
	boom := errors.New("boom")
	mgr := loader.NewManager()
	mgr.Register(fakeFeature{name: "one", enabled: true})
	mgr.Register(fakeFeature{name: "bad", enabled: true, err: boom})
	mgr.Register(fakeFeature{name: "never", enabled: true})

	loaded, err := mgr.LoadAll(fiber.New())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
	assert.Equal(t, []string{"one"}, loaded)
}
