package middleware

import (
	"errors"
	"net/http"
	"strings"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

const userKey = "current_user"

type Authn struct {
	sessions *usecase.SessionResolver
}

func NewAuthn(sessions *usecase.SessionResolver) *Authn {
	return &Authn{sessions: sessions}
}

// RequireActiveUser resolves the bearer token to a user and rejects
// disabled accounts. The resolved user is stored in the gin context
// for handlers; read it back with CurrentUser.
func (a *Authn) RequireActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, usecase.ErrUnauthenticated.Error())
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		u, err := a.sessions.Resolve(c.Request.Context(), raw)
		if err != nil {
			unauth(c, err.Error())
			return
		}

		if _, err := a.sessions.RequireActive(u); err != nil {
			if errors.Is(err, usecase.ErrAccountDisabled) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			unauth(c, err.Error())
			return
		}

		c.Set(userKey, u)
		c.Next()
	}
}

// CurrentUser returns the user set by RequireActiveUser, or nil when
// the route is not guarded.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

func unauth(c *gin.Context, desc string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": desc})
}
