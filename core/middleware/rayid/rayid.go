// Package rayid assigns a unique RayID to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header the RayID is exposed in.
const HeaderName = "X-Ray-ID"

// New creates the RayID middleware. The generated id is stored in the
// request locals under "ray_id" and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := uuid.NewString()
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
