package http

import (
	"net/http"
	"time"

	"github.com/aq2208/gshop-api/internal/adapter/http/middleware"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  *usecase.Authenticator
	codec usecase.TokenCodec
	ttl   time.Duration
}

func NewAuthHandler(auth *usecase.Authenticator, codec usecase.TokenCodec, ttl time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, codec: codec, ttl: ttl}
}

// POST /token (form fields: username, password)
// Verifies credentials, then mints a bearer token for the subject.
// Token issuance is composed here, not inside the authenticator.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	signed, err := h.codec.Mint(user.Username, h.ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "bearer",
	})
}

// GET /users/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}
