package repository

import (
	"context"
	"errors"

	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/models"
)

var ErrPrizeNotFound = errors.New("prize not found")

type PrizeRepository interface {
	// List returns all prizes, newest first.
	List(ctx context.Context) ([]models.Prize, error)
	Create(ctx context.Context, in models.PrizeCreate) (*models.Prize, error)
	// Update merges the supplied fields and restamps updatedAt.
	Update(ctx context.Context, id string, in models.PrizeUpdate) (*models.Prize, error)
	Delete(ctx context.Context, id string) error

	// CountLowStock counts prizes at or below the critical threshold.
	CountLowStock(ctx context.Context) (int, error)
	// ListLowStockWatch returns prizes at or below the watch threshold,
	// lowest stock first, capped at the watch-list limit.
	ListLowStockWatch(ctx context.Context) ([]models.Prize, error)
}
