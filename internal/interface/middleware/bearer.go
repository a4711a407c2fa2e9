package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dcnearshore/taskboard/internal/domain/entity"
	"github.com/dcnearshore/taskboard/pkg/response"
)

const ctxUserKey = "current_user"

// bearerToken extracts the token from the Authorization header, empty
// string when the header is missing or not a Bearer scheme.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireBearer gates a route on the presence of a bearer token. It does
// not check the token against issued tokens; identity resolution is the
// Identity middleware's job.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if bearerToken(c) == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "Unauthorized. Please provide a bearer token.")
			return
		}
		c.Next()
	}
}

// Authenticator resolves a bearer token plaintext to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, plaintext string) (*entity.User, error)
}

// Identity resolves the request's bearer token to a user and stores it in
// the gin context. It never aborts: handlers that need an identity check
// the context and decide for themselves.
func Identity(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearerToken(c); tok != "" {
			if u, err := auth.Authenticate(c.Request.Context(), tok); err == nil {
				c.Set(ctxUserKey, u)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Identity, if any.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}
