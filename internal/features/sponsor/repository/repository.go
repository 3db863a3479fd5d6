package repository

import (
	"context"

	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/models"
)

type SponsorRepository interface {
	// List returns all sponsors, newest first.
	List(ctx context.Context) ([]models.Sponsor, error)
	Create(ctx context.Context, in models.SponsorCreate) (*models.Sponsor, error)
}
