package service

import (
	"context"

	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/repository"
)

var ErrPrizeNotFound = repository.ErrPrizeNotFound

type PrizeService interface {
	List(ctx context.Context) []models.Prize
	Create(ctx context.Context, in models.PrizeCreate) (*models.Prize, error)
	Update(ctx context.Context, id string, in models.PrizeUpdate) (*models.Prize, error)
	Delete(ctx context.Context, id string) error
	LowStockWatch(ctx context.Context) []models.Prize
}

type prizeService struct {
	repo repository.PrizeRepository
}

func NewPrizeService(repo repository.PrizeRepository) PrizeService {
	return &prizeService{repo: repo}
}

// List degrades a failed read to an empty slice; writes propagate
// unmodified so the caller sees the failure.
func (s *prizeService) List(ctx context.Context) []models.Prize {
	prizes, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list prizes failed")
		return []models.Prize{}
	}
	return prizes
}

func (s *prizeService) Create(ctx context.Context, in models.PrizeCreate) (*models.Prize, error) {
	return s.repo.Create(ctx, in)
}

func (s *prizeService) Update(ctx context.Context, id string, in models.PrizeUpdate) (*models.Prize, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *prizeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *prizeService) LowStockWatch(ctx context.Context) []models.Prize {
	prizes, err := s.repo.ListLowStockWatch(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("low-stock watch list failed")
		return []models.Prize{}
	}
	return prizes
}
