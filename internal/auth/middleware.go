package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const securityContextKey = "security_context"

// SecurityContextMiddleware builds the per-request SecurityContext from the
// optional Authorization header before any handler runs. It never rejects a
// request: an absent or unverifiable credential simply means an anonymous
// context, and only the guards decide whether that permits an operation.
func SecurityContextMiddleware(builder *ContextBuilder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := ""
		if header := c.Get("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				bearer = parts[1]
			}
		}
		c.Locals(securityContextKey, builder.Build(bearer))
		return c.Next()
	}
}

// SecurityContextFrom retrieves the request's SecurityContext. A request that
// somehow bypassed the middleware gets an empty anonymous context.
func SecurityContextFrom(c *fiber.Ctx) *SecurityContext {
	if sc, ok := c.Locals(securityContextKey).(*SecurityContext); ok {
		return sc
	}
	return &SecurityContext{}
}
