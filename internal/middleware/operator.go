package middleware

import (
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/gofiber/fiber/v2"
)

// OperatorMiddleware selects the acting operator from the X-Operator header.
// The store keeps the selection as session state, so every request naming an
// operator re-selects them before the handler runs; audit entries then carry
// the right name. Requests without the header keep the current selection.
func OperatorMiddleware(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if name := c.Get("X-Operator"); name != "" {
			s.Dispatch(store.SetUser{Name: name})
		}
		return c.Next()
	}
}
