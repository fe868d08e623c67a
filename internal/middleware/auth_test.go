package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/goldtek/quotetrack/internal/middleware"
	"github.com/goldtek/quotetrack/internal/types"
)

// newApp mirrors the server's error handler mapping for CustomError.
func newApp(secret string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*types.CustomError); ok {
				return c.Status(e.Code).JSON(fiber.Map{"message": e.Message, "type": e.Type})
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Use(middleware.APIKey(secret))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func TestAPIKeyAccepted(t *testing.T) {
	app := newApp("sesame")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("x-api-key", "sesame")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("valid key should pass, got %d", resp.StatusCode)
	}
}

func TestAPIKeyRejected(t *testing.T) {
	app := newApp("sesame")

	for _, key := range []string{"", "wrong"} {
		req := httptest.NewRequest("GET", "/ping", nil)
		if key != "" {
			req.Header.Set("x-api-key", key)
		}

		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 401 {
			t.Errorf("key %q should be rejected with 401, got %d", key, resp.StatusCode)
		}
	}
}

func TestAPIKeyDisabledWhenUnset(t *testing.T) {
	app := newApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("empty secret disables the check, got %d", resp.StatusCode)
	}
}

func TestActorID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.ActorID())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		if v, ok := c.Locals("actorId").(string); ok {
			return c.SendString(v)
		}
		return c.SendString("anonymous")
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("x-actor-id", "estimator-kim")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 32)
	n, _ := resp.Body.Read(buf)
	if string(buf[:n]) != "estimator-kim" {
		t.Errorf("actor = %q", string(buf[:n]))
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatal(err)
	}
	n, _ = resp.Body.Read(buf)
	if string(buf[:n]) != "anonymous" {
		t.Errorf("missing header should leave locals unset, got %q", string(buf[:n]))
	}
}
