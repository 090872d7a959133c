package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
	"github.com/mattcann1/ccx-marketplace-api/internal/core/security"
)

func authApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", Protected(), func(c *fiber.Ctx) error {
		tier := c.Locals("tier").(domain.Tier)
		return c.JSON(fiber.Map{"tier": tier.String(), "user_id": c.Locals("user_id")})
	})
	return app
}

func TestProtectedResolvesTier(t *testing.T) {
	app := authApp()

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"public token", "Bearer " + security.PublicToken, http.StatusOK},
		{"buyer token", "Bearer " + security.BuyerToken, http.StatusOK},
		{"admin token", "Bearer " + security.AdminToken, http.StatusOK},
		{"unknown token", "Bearer not_a_token", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"bare token", security.BuyerToken, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}
