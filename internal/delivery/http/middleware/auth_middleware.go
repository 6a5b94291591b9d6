package middleware

import (
	"strings"

	deliverycontext "pawsconnect/internal/delivery/context"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication and
// role checks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and rejects the request when it is
// missing, malformed, or expired. The response body is identical for every
// failure mode.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateOptional is the same gate with the anonymous path allowed: no
// Authorization header passes through unauthenticated, but a header that is
// present and invalid is still rejected.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, optional bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			if optional {
				return next(c)
			}

			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Signature, structure, or expiry failure. The reason is not
			// disclosed to the caller.
			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetAuthenticatedUser(c, claims.UserID, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated subject's
// role by string equality. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetUserRole(c)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("role information missing")
			}

			if role.String() != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
