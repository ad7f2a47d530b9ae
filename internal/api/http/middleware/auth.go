package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Tushar123097/hospital-backend/pkg/authguard"
)

// CtxKeyIdentity is the fiber locals key holding the verified authguard.Identity.
const CtxKeyIdentity = "auth.identity"

// AuthRequired validates a Bearer PASETO access token through the guard and
// stores the resolved Identity in c.Locals(CtxKeyIdentity).
func AuthRequired(guard *authguard.Guard) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		id, err := guard.Resolve(c.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(CtxKeyIdentity, id)
		return c.Next()
	}
}

// RequireRole runs after AuthRequired and rejects callers whose role is not
// in the allowed set.
func RequireRole(allowed ...authguard.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := IdentityFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		for _, r := range allowed {
			if id.Is(r) {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}

// IdentityFromFiber retrieves the Identity stored by AuthRequired.
func IdentityFromFiber(c fiber.Ctx) (authguard.Identity, bool) {
	v := c.Locals(CtxKeyIdentity)
	id, ok := v.(authguard.Identity)
	return id, ok
}
