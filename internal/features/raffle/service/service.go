package service

import (
	"context"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/repository"
)

type RaffleService interface {
	List(ctx context.Context) []models.Raffle
	Create(ctx context.Context, in models.RaffleCreate) (*models.Raffle, error)
}

type raffleService struct {
	repo repository.RaffleRepository
}

func NewRaffleService(repo repository.RaffleRepository) RaffleService {
	return &raffleService{repo: repo}
}

func (s *raffleService) List(ctx context.Context) []models.Raffle {
	raffles, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list raffles failed")
		return []models.Raffle{}
	}
	return raffles
}

func (s *raffleService) Create(ctx context.Context, in models.RaffleCreate) (*models.Raffle, error) {
	// The original console let a raffle end before it started and left
	// validation to callers; the server owns its writes now.
	if in.EndAt.Before(in.StartAt) {
		return nil, apperrors.NewValidationError("endAt", "must not be before startAt")
	}
	return s.repo.Create(ctx, in)
}
