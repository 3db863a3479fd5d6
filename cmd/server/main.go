package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ignition-ceo/RaffleFox/internal/common/config"
	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
	admindocstore "github.com/Ignition-ceo/RaffleFox/internal/features/admin/repository/docstore"
	adminservice "github.com/Ignition-ceo/RaffleFox/internal/features/admin/service"
	dashboardservice "github.com/Ignition-ceo/RaffleFox/internal/features/dashboard/service"
	gamerdocstore "github.com/Ignition-ceo/RaffleFox/internal/features/gamer/repository/docstore"
	gamerservice "github.com/Ignition-ceo/RaffleFox/internal/features/gamer/service"
	prizedocstore "github.com/Ignition-ceo/RaffleFox/internal/features/prize/repository/docstore"
	prizeservice "github.com/Ignition-ceo/RaffleFox/internal/features/prize/service"
	raffledocstore "github.com/Ignition-ceo/RaffleFox/internal/features/raffle/repository/docstore"
	raffleservice "github.com/Ignition-ceo/RaffleFox/internal/features/raffle/service"
	sponsordocstore "github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/repository/docstore"
	sponsorservice "github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/service"
	"github.com/Ignition-ceo/RaffleFox/internal/identity"
	"github.com/Ignition-ceo/RaffleFox/internal/session"
	"github.com/Ignition-ceo/RaffleFox/internal/store"

	adminhttp "github.com/Ignition-ceo/RaffleFox/internal/features/admin/delivery/http"
	dashboardhttp "github.com/Ignition-ceo/RaffleFox/internal/features/dashboard/delivery/http"
	gamerhttp "github.com/Ignition-ceo/RaffleFox/internal/features/gamer/delivery/http"
	prizehttp "github.com/Ignition-ceo/RaffleFox/internal/features/prize/delivery/http"
	rafflehttp "github.com/Ignition-ceo/RaffleFox/internal/features/raffle/delivery/http"
	sponsorhttp "github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/delivery/http"
	apphttp "github.com/Ignition-ceo/RaffleFox/internal/http"
	platformredis "github.com/Ignition-ceo/RaffleFox/internal/platform/redis"
)

// @title           RaffleFox Admin API
// @version         1.0
// @description     Administrative API for the RaffleFox raffle platform: prizes, raffles, sponsors, player and admin accounts, dashboard KPIs.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
// @description Session token issued by /auth/signin, sent as "Bearer <token>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	logger.Init("rafflefox-admin", cfg.Debug)

	redisClient, err := platformredis.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error().Err(err).Msg("redis open failed")
		return
	}
	defer redisClient.Close()

	docs := store.NewRedis(redisClient)

	prizeRepo := prizedocstore.NewPrizeRepository(docs)
	raffleRepo := raffledocstore.NewRaffleRepository(docs)
	sponsorRepo := sponsordocstore.NewSponsorRepository(docs)
	gamerRepo := gamerdocstore.NewGamerRepository(docs)
	adminRepo := admindocstore.NewAdminRepository(docs)

	provider := identity.NewEmailProvider(docs, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	sessions := session.NewManager(provider, adminRepo, cfg.AuthDisabled, cfg.Auth.ProfileCacheTTL)
	sessions.Start()
	defer sessions.Close()

	handlers := apphttp.Handlers{
		Auth:      apphttp.NewAuthHandler(sessions),
		Prizes:    prizehttp.NewPrizeHandler(prizeservice.NewPrizeService(prizeRepo)),
		Raffles:   rafflehttp.NewRaffleHandler(raffleservice.NewRaffleService(raffleRepo)),
		Sponsors:  sponsorhttp.NewSponsorHandler(sponsorservice.NewSponsorService(sponsorRepo)),
		Gamers:    gamerhttp.NewGamerHandler(gamerservice.NewGamerService(gamerRepo)),
		Admins:    adminhttp.NewAdminHandler(adminservice.NewAdminService(adminRepo)),
		Dashboard: dashboardhttp.NewDashboardHandler(dashboardservice.NewDashboardService(raffleRepo, prizeRepo, gamerRepo)),
	}

	router := apphttp.NewRouter(cfg, sessions, redisClient, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
