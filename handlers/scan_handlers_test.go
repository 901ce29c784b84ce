package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// scanApp wires the scan handler behind a stub that injects the merchant id,
// standing in for the auth middleware.
func scanApp() *fiber.App {
	app := fiber.New()
	app.Post("/scan", func(c *fiber.Ctx) error {
		c.Locals("userID", "merchant-1")
		return c.Next()
	}, HandleScanShelf)
	return app
}

func TestScanShelfRejectsEmptyBody(t *testing.T) {
	app := scanApp()

	req := httptest.NewRequest("POST", "/scan", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScanShelfRejectsInvalidJSON(t *testing.T) {
	app := scanApp()

	req := httptest.NewRequest("POST", "/scan", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
