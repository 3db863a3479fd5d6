package service

import (
	"context"

	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/repository"
)

type SponsorService interface {
	List(ctx context.Context) []models.Sponsor
	Create(ctx context.Context, in models.SponsorCreate) (*models.Sponsor, error)
}

type sponsorService struct {
	repo repository.SponsorRepository
}

func NewSponsorService(repo repository.SponsorRepository) SponsorService {
	return &sponsorService{repo: repo}
}

func (s *sponsorService) List(ctx context.Context) []models.Sponsor {
	sponsors, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list sponsors failed")
		return []models.Sponsor{}
	}
	return sponsors
}

func (s *sponsorService) Create(ctx context.Context, in models.SponsorCreate) (*models.Sponsor, error) {
	return s.repo.Create(ctx, in)
}
