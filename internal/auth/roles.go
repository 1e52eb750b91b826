package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-booking/internal/domain"
	apperrors "github.com/spec-kit/hotel-booking/pkg/util"
)

// RequireRole ensures the attached identity carries one of the allowed
// roles. Strictly a set-membership check over what the auth middleware
// attached; it knows nothing about tokens or signatures. A missing identity
// and a wrong role produce the same response on purpose; clients depend on
// the single 403 message.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewForbidden(msgForbiddenRole)
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden(msgForbiddenRole)
		}
		return c.Next()
	}
}
