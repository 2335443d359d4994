package http

import (
	"net/http"
	"time"

	"github.com/aq2208/gshop-api/internal/adapter/http/middleware"
	"github.com/aq2208/gshop-api/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(ah *AuthHandler, ph *ProductHandler, oh *OrderHandler, authn *middleware.Authn) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/token", ah.Login)
	r.GET("/users/me", authn.RequireActiveUser(), ah.Me)

	r.GET("/products", ph.List)
	r.GET("/products/:id", ph.GetByID)
	r.POST("/products", authn.RequireActiveUser(), ph.Create)

	r.POST("/orders", authn.RequireActiveUser(), oh.Create)
	r.GET("/orders/:id", authn.RequireActiveUser(), oh.GetByID)

	return r
}
