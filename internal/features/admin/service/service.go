package service

import (
	"context"
	"errors"

	"github.com/Ignition-ceo/RaffleFox/internal/common/logger"
	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/repository"
)

var ErrAdminNotFound = repository.ErrAdminNotFound

type AdminService interface {
	List(ctx context.Context) []models.Admin
	GetByUID(ctx context.Context, uid string) (*models.Admin, error)
	Create(ctx context.Context, in models.AdminCreate) (*models.Admin, error)
}

type adminService struct {
	repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

// List degrades a failed read to an empty slice; the listing screen
// shows an empty state rather than an error.
func (s *adminService) List(ctx context.Context) []models.Admin {
	admins, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list admins failed")
		return []models.Admin{}
	}
	return admins
}

func (s *adminService) GetByUID(ctx context.Context, uid string) (*models.Admin, error) {
	admin, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrAdminNotFound) {
			logger.Error().Err(err).Str("uid", uid).Msg("admin lookup failed")
		}
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Create(ctx context.Context, in models.AdminCreate) (*models.Admin, error) {
	return s.repo.Create(ctx, in)
}
