package middleware

import (
	"log/slog"
	"strings"

	"petplace/internal/delivery/api/response"
	deliverycontext "petplace/internal/delivery/context"
	"petplace/internal/domain/constants"
	"petplace/internal/domain/entity"
	"petplace/internal/domain/service"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		if !m.identify(c, tokenString) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
			m.identify(c, tokenString)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that admits users holding any of the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			for _, role := range allowed {
				if roles.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
		}
	}
}

func (m *AuthMiddleware) identify(c echo.Context, tokenString string) bool {
	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil || claims.UserID == uuid.Nil {
		return false
	}

	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyRoles, entity.RolesFromStrings(claims.Roles))

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithLogAttrs(req.Context(), slog.String("user_id", claims.UserID.String()))))

	return true
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(constants.ContextKeyRoles).(entity.Roles)

	return roles, ok
}

// GetViewer describes the caller for ownership-dependent reads. Anonymous callers get a zero Viewer.
func GetViewer(c echo.Context) usecase.Viewer {
	userID, _ := GetUserID(c)
	roles, _ := GetRoles(c)

	return usecase.Viewer{UserID: userID, Roles: roles}
}
