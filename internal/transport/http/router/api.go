package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"burgerhouse/internal/core/auth"
	"burgerhouse/internal/transport/http/handler"
	mdw "burgerhouse/internal/transport/http/middleware"
)

// Handlers collects everything the API engine mounts.
type Handlers struct {
	Burgers     *handler.BurgerHandler
	Complements *handler.ComplementHandler
	Menus       *handler.MenuHandler
	Auth        *handler.AuthHandler
}

func NewAPIEngine(l *zap.Logger, h Handlers, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/burgers", h.Burgers.List)
	api.POST("/burgers", h.Burgers.Create)
	api.PUT("/burgers/:id", h.Burgers.Update)
	api.PUT("/burgers/:id/archive", h.Burgers.Archive)

	api.GET("/complements", h.Complements.List)
	api.POST("/complements", h.Complements.Create)
	api.PUT("/complements/:id", h.Complements.Update)
	api.PUT("/complements/:id/archive", h.Complements.Archive)

	api.GET("/menus", h.Menus.List)
	api.POST("/menus", h.Menus.Create)
	api.PUT("/menus/:id", h.Menus.Update)
	api.PUT("/menus/:id/archive", h.Menus.Archive)
	api.GET("/menus/:id/price", h.Menus.Price)

	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	// Routes below carry a bearer token.
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	authed.GET("/profile", h.Auth.Profile)

	return r
}
