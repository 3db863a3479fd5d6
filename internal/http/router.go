package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Ignition-ceo/RaffleFox/docs"
	"github.com/Ignition-ceo/RaffleFox/internal/common/config"
	"github.com/Ignition-ceo/RaffleFox/internal/common/middleware"
	adminhttp "github.com/Ignition-ceo/RaffleFox/internal/features/admin/delivery/http"
	dashboardhttp "github.com/Ignition-ceo/RaffleFox/internal/features/dashboard/delivery/http"
	gamerhttp "github.com/Ignition-ceo/RaffleFox/internal/features/gamer/delivery/http"
	prizehttp "github.com/Ignition-ceo/RaffleFox/internal/features/prize/delivery/http"
	rafflehttp "github.com/Ignition-ceo/RaffleFox/internal/features/raffle/delivery/http"
	sponsorhttp "github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/delivery/http"
	"github.com/Ignition-ceo/RaffleFox/internal/gate"
	platformredis "github.com/Ignition-ceo/RaffleFox/internal/platform/redis"
	"github.com/Ignition-ceo/RaffleFox/internal/session"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Prizes    *prizehttp.PrizeHandler
	Raffles   *rafflehttp.RaffleHandler
	Sponsors  *sponsorhttp.SponsorHandler
	Gamers    *gamerhttp.GamerHandler
	Admins    *adminhttp.AdminHandler
	Dashboard *dashboardhttp.DashboardHandler
}

// NewRouter assembles the gin engine: ambient middleware, the probe and
// swagger endpoints outside the gate, sign-in/up/out ungated, /auth/me
// behind authentication only, and the whole admin console surface
// behind the admin gate.
func NewRouter(cfg *config.Config, sessions *session.Manager, redisClient *platformredis.Client, h Handlers) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	registerProbes(router, redisClient)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)

	authed := v1.Group("")
	authed.Use(gate.Protect(sessions, false))
	h.Auth.RegisterSessionRoutes(authed)

	console := v1.Group("")
	console.Use(gate.Protect(sessions, true))
	h.Prizes.RegisterRoutes(console)
	h.Raffles.RegisterRoutes(console)
	h.Sponsors.RegisterRoutes(console)
	h.Gamers.RegisterRoutes(console)
	h.Admins.RegisterRoutes(console)
	h.Dashboard.RegisterRoutes(console)

	return router
}

func registerProbes(router *gin.Engine, redisClient *platformredis.Client) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "rafflefox-admin",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
