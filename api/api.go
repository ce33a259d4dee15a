// Package api exposes the JSON endpoints: session auth, wallet, the
// fleet listing, and the rental lifecycle.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Colby-williams/hackathon-2025/customer"
	"github.com/Colby-williams/hackathon-2025/internal/middleware"
	"github.com/Colby-williams/hackathon-2025/internal/o11y"
	"github.com/Colby-williams/hackathon-2025/rental"
	"github.com/Colby-williams/hackathon-2025/session"
	"github.com/Colby-williams/hackathon-2025/vehicle"
)

type API struct {
	r        *gin.Engine
	vr       *vehicle.Registry
	cr       *customer.Repository
	sessions *session.Store
	engine   *rental.Engine
	mapsKey  string
}

type Config struct {
	Vehicles  *vehicle.Registry
	Customers *customer.Repository
	Sessions  *session.Store
	Engine    *rental.Engine
	Obs       *o11y.Observability

	GoogleMapsKey   string
	MetricsUsername string
	MetricsPassword string
}

func New(cfg Config) *API {
	a := &API{
		r:        gin.New(),
		vr:       cfg.Vehicles,
		cr:       cfg.Customers,
		sessions: cfg.Sessions,
		engine:   cfg.Engine,
		mapsKey:  cfg.GoogleMapsKey,
	}

	a.r.Use(gin.Recovery())
	a.r.Use(middleware.Tracing())
	a.r.Use(middleware.Logging(cfg.Obs.Logger))
	a.r.Use(middleware.Metrics(cfg.Obs.Registry))

	a.r.GET("/health", a.healthHandler)
	a.r.GET("/config.js", a.configJSHandler)
	a.r.POST("/debug/reset", a.resetHandler)

	a.r.POST("/login", a.loginHandler)
	a.r.POST("/logout", a.logoutHandler)
	a.r.GET("/me", a.meHandler)

	a.r.GET("/bikes", a.bikesHandler)
	a.r.POST("/bikes/:id/recharge", a.rechargeHandler)
	a.r.GET("/rentals/:id", a.getRentalHandler)
	a.r.GET("/users/:id/active_rental", a.activeRentalHandler)

	authed := a.r.Group("/")
	authed.Use(middleware.SessionAuth(cfg.Sessions))
	{
		authed.GET("/wallet", a.walletHandler)
		authed.POST("/wallet/deposit", a.depositHandler)
		authed.POST("/rentals/start", a.startRentalHandler)
		authed.POST("/rentals/:id/end", a.endRentalHandler)
	}

	metricsHandler := promhttp.HandlerFor(cfg.Obs.Registry, promhttp.HandlerOpts{})
	if cfg.MetricsUsername != "" {
		accounts := gin.Accounts{cfg.MetricsUsername: cfg.MetricsPassword}
		a.r.GET("/metrics", gin.BasicAuth(accounts), gin.WrapH(metricsHandler))
	} else {
		a.r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	return a
}

func (a *API) Router() *gin.Engine {
	return a.r
}
