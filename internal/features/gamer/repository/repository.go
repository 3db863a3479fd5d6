package repository

import (
	"context"

	"github.com/Ignition-ceo/RaffleFox/internal/features/gamer/models"
)

type GamerRepository interface {
	// List returns all gamer accounts, most recently registered first.
	List(ctx context.Context) ([]models.Gamer, error)
	Count(ctx context.Context) (int, error)
}
