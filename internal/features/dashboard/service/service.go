package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Ignition-ceo/RaffleFox/internal/features/dashboard/models"
	gamerrepo "github.com/Ignition-ceo/RaffleFox/internal/features/gamer/repository"
	prizemodels "github.com/Ignition-ceo/RaffleFox/internal/features/prize/models"
	prizerepo "github.com/Ignition-ceo/RaffleFox/internal/features/prize/repository"
	rafflerepo "github.com/Ignition-ceo/RaffleFox/internal/features/raffle/repository"
)

type DashboardService interface {
	// Stats fetches the four KPIs concurrently. The batch is
	// all-or-nothing: one failed read fails the whole result, no
	// partial stats are returned.
	Stats(ctx context.Context) (*models.Stats, error)
	LowStockWatch(ctx context.Context) ([]prizemodels.Prize, error)
}

type dashboardService struct {
	raffles rafflerepo.RaffleRepository
	prizes  prizerepo.PrizeRepository
	gamers  gamerrepo.GamerRepository
}

func NewDashboardService(raffles rafflerepo.RaffleRepository, prizes prizerepo.PrizeRepository, gamers gamerrepo.GamerRepository) DashboardService {
	return &dashboardService{raffles: raffles, prizes: prizes, gamers: gamers}
}

func (s *dashboardService) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.raffles.CountLive(ctx)
		stats.LiveRaffles = n
		return err
	})
	g.Go(func() error {
		n, err := s.raffles.SumTicketsSold(ctx)
		stats.TotalTicketsSold = n
		return err
	})
	g.Go(func() error {
		n, err := s.prizes.CountLowStock(ctx)
		stats.LowStockPrizes = n
		return err
	})
	g.Go(func() error {
		n, err := s.gamers.Count(ctx)
		stats.TotalGamers = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *dashboardService) LowStockWatch(ctx context.Context) ([]prizemodels.Prize, error) {
	return s.prizes.ListLowStockWatch(ctx)
}
