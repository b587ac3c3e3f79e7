package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"foodgram/internal/auth"
	"foodgram/internal/authz"
	"foodgram/internal/logging"
	"foodgram/internal/models"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	userKey   = "user"
	claimsKey = "claims"
)

// UserLookup loads the account a token was issued for.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type Authenticator struct {
	tokens  *auth.TokenManager
	revoked *auth.RevocationList
	users   UserLookup
}

func NewAuthenticator(tokens *auth.TokenManager, revoked *auth.RevocationList, users UserLookup) *Authenticator {
	return &Authenticator{tokens: tokens, revoked: revoked, users: users}
}

func unauthorized(c *gin.Context, message, detail string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
	c.Abort()
}

// AuthMiddleware rejects requests without a valid token.
func (a *Authenticator) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			unauthorized(c, "Authorization header is required", "Authentication credentials were not provided.")
			return
		}
		if a.authenticate(c) {
			c.Next()
		}
	}
}

// OptionalAuth lets anonymous requests through but still rejects a bad
// token.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		if a.authenticate(c) {
			c.Next()
		}
	}
}

func (a *Authenticator) authenticate(c *gin.Context) bool {
	// Both "Token <jwt>" and "Bearer <jwt>" are accepted
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 {
		unauthorized(c, "Invalid authorization header format", "Use format: Token {token}")
		return false
	}
	switch strings.ToLower(parts[0]) {
	case "token", "bearer":
	default:
		unauthorized(c, "Invalid authorization header format", "Use format: Token {token}")
		return false
	}

	claims, err := a.tokens.Parse(parts[1])
	if err != nil {
		unauthorized(c, "Invalid or expired token", err.Error())
		return false
	}

	ctx := c.Request.Context()
	revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Token revocation check failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to authenticate",
			"error":   "Internal server error",
		})
		c.Abort()
		return false
	}
	if revoked {
		unauthorized(c, "Invalid or expired token", auth.ErrRevokedToken.Error())
		return false
	}

	user, err := a.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			unauthorized(c, "Invalid token claims", "User not found")
			return false
		}
		logging.Ctx(ctx).Error().Err(err).Uint("user_id", claims.UserID).Msg("Failed to load token user")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to authenticate",
			"error":   "Internal server error",
		})
		c.Abort()
		return false
	}

	c.Set("user_id", user.ID)
	c.Set(userKey, user)
	c.Set(claimsKey, claims)
	return true
}

// CurrentUser returns the authenticated user or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func CurrentClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if cl, ok := v.(*auth.Claims); ok {
			return cl
		}
	}
	return nil
}

// RequirePermission checks the caller's role against the policy. Anonymous
// callers that are denied get 401 so clients know to log in.
func RequirePermission(enforcer *authz.Enforcer, obj, act string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if enforcer.Allowed(user.Role(), obj, act) {
			c.Next()
			return
		}
		if user == nil {
			unauthorized(c, "Authentication required", "Authentication credentials were not provided.")
			return
		}
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Permission denied",
			"error":   "You do not have permission to perform this action.",
		})
		c.Abort()
	}
}
