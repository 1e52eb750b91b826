package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-booking/internal/domain"
	apperrors "github.com/spec-kit/hotel-booking/pkg/util"
)

const identityKey = "auth_identity"

// Messages forming the external auth contract.
const (
	msgMalformedHeader = "Authorization token is missing or malformed"
	msgInvalidToken    = "Invalid or expired token"
	msgForbiddenRole   = "Forbidden: You do not have the required role"
)

// AuthMiddleware validates bearer tokens and attaches the decoded identity.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. The expected roles
// are optional sugar for a single inline role check; full allow-list
// enforcement belongs to RequireRole, composed after this stage.
func (m *AuthMiddleware) Handle(expected ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return apperrors.NewUnauthorized(msgMalformedHeader)
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			return apperrors.NewUnauthorized(msgInvalidToken)
		}

		identity := claims.Identity()
		c.Locals(identityKey, &identity)

		if len(expected) > 0 && !roleIn(identity.Role, expected) {
			return apperrors.NewForbidden(msgForbiddenRole)
		}
		return c.Next()
	}
}

// bearerToken extracts the token from a "Bearer <token>" header. The scheme
// is case-sensitive, separated by exactly one space, and the token part must
// be non-empty.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func roleIn(role domain.Role, allowed []domain.Role) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
