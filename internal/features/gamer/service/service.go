package service

import (
	"context"

	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
	"github.com/Ignition-ceo/RaffleFox/internal/features/gamer/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/gamer/repository"
)

type GamerService interface {
	List(ctx context.Context) []models.Gamer
}

type gamerService struct {
	repo repository.GamerRepository
}

func NewGamerService(repo repository.GamerRepository) GamerService {
	return &gamerService{repo: repo}
}

func (s *gamerService) List(ctx context.Context) []models.Gamer {
	gamers, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list gamers failed")
		return []models.Gamer{}
	}
	return gamers
}
