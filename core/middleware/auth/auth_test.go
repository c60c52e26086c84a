package auth_test

import (
	"net/http/httptest"
	"testing"

	"content-indexer/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		wantStatus int
	}{
		{
			name:       "Valid key",
			apiKey:     "secret",
			header:     "secret",
			wantStatus: 200,
		},
		{
			name:       "Wrong key",
			apiKey:     "secret",
			header:     "other",
			wantStatus: 401,
		},
		{
			name:       "Missing key",
			apiKey:     "secret",
			header:     "",
			wantStatus: 401,
		},
		{
			name:       "Empty config disables check",
			apiKey:     "",
			header:     "",
			wantStatus: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.apiKey)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}

			resp, err := app.Test(req, 2000)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
