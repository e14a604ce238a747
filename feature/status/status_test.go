package status

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"webboot/core/server"
	"webboot/core/store/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, feature *Feature) *fiber.App {
	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func decode(t *testing.T, app *fiber.App) (int, Report) {
	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	return resp.StatusCode, report
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, server.EnvDevelopment, 0, zap.NewNop())
	assert.Equal(t, "status", feature.Name())
	assert.True(t, feature.IsEnabled())
}

func TestHandleStatus_NoStore(t *testing.T) {
	app := setupTestApp(t, NewFeature(nil, server.EnvDevelopment, 0, zap.NewNop()))

	code, report := decode(t, app)
	assert.Equal(t, 200, code)
	assert.Equal(t, "development", report.Env)
	assert.Equal(t, StoreDisabled, report.Store.Status)
	assert.Empty(t, report.Store.Addr)
}

func TestHandleStatus_StoreUp(t *testing.T) {
	client := new(mocks.Client)
	client.On("Addr").Return("127.0.0.1:6379")
	client.On("Ping", mock.Anything).Return(nil)

	app := setupTestApp(t, NewFeature(client, server.EnvProduction, 0, zap.NewNop()))

	code, report := decode(t, app)
	assert.Equal(t, 200, code)
	assert.Equal(t, StoreUp, report.Store.Status)
	assert.Equal(t, "127.0.0.1:6379", report.Store.Addr)
	client.AssertExpectations(t)
}

func TestHandleStatus_StoreDown(t *testing.T) {
	tests := []struct {
		name      string
		env       server.Environment
		wantError string
	}{
		{"Development", server.EnvDevelopment, "connection refused"},
		{"Production", server.EnvProduction, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("Addr").Return("127.0.0.1:6379")
			client.On("Ping", mock.Anything).Return(errors.New("connection refused"))

			app := setupTestApp(t, NewFeature(client, tt.env, 0, zap.NewNop()))

			code, report := decode(t, app)
			assert.Equal(t, 503, code)
			assert.Equal(t, StoreDown, report.Store.Status)
			assert.Equal(t, tt.wantError, report.Store.Error)
		})
	}
}
