package repository

import (
	"context"

	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/models"
)

type RaffleRepository interface {
	// List returns all raffles, newest first.
	List(ctx context.Context) ([]models.Raffle, error)
	Create(ctx context.Context, in models.RaffleCreate) (*models.Raffle, error)
	// CountLive counts raffles with status "live".
	CountLive(ctx context.Context) (int, error)
	// SumTicketsSold scans the whole collection; a document without a
	// ticketSold field contributes 0.
	SumTicketsSold(ctx context.Context) (int, error)
}
