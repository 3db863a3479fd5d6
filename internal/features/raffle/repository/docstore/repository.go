package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

type storedRaffle struct {
	Title       string       `json:"title"`
	PrizeID     string       `json:"prizeId"`
	PrizeName   string       `json:"prizeName"`
	SponsorID   string       `json:"sponsorId"`
	SponsorName string       `json:"sponsorName"`
	TicketSold  int          `json:"ticketSold,omitempty"`
	TicketPrice string       `json:"ticketPrice"`
	StartAt     store.Millis `json:"startAt,omitempty"`
	EndAt       store.Millis `json:"endAt,omitempty"`
	Status      string       `json:"status"`
	CreatedAt   store.Millis `json:"createdAt,omitempty"`
	UpdatedAt   store.Millis `json:"updatedAt,omitempty"`
}

func (sr storedRaffle) toModel(id string) models.Raffle {
	return models.Raffle{
		ID:          id,
		Title:       sr.Title,
		PrizeID:     sr.PrizeID,
		PrizeName:   sr.PrizeName,
		SponsorID:   sr.SponsorID,
		SponsorName: sr.SponsorName,
		TicketSold:  sr.TicketSold,
		TicketPrice: sr.TicketPrice,
		StartAt:     sr.StartAt.Time(),
		EndAt:       sr.EndAt.Time(),
		Status:      sr.Status,
		CreatedAt:   sr.CreatedAt.Time(),
		UpdatedAt:   sr.UpdatedAt.Time(),
	}
}

type raffleRepository struct {
	store store.Store
}

func NewRaffleRepository(s store.Store) repository.RaffleRepository {
	return &raffleRepository{store: s}
}

func (r *raffleRepository) scan(ctx context.Context) ([]store.Doc, error) {
	return r.store.List(ctx, store.CollectionRaffles)
}

func (r *raffleRepository) List(ctx context.Context) ([]models.Raffle, error) {
	docs, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}

	raffles := make([]models.Raffle, 0, len(docs))
	for _, doc := range docs {
		var sr storedRaffle
		if err := json.Unmarshal(doc.Data, &sr); err != nil {
			return nil, fmt.Errorf("decode raffle %s: %w", doc.ID, err)
		}
		raffles = append(raffles, sr.toModel(doc.ID))
	}

	sort.SliceStable(raffles, func(i, j int) bool {
		return raffles[i].CreatedAt.After(raffles[j].CreatedAt)
	})
	return raffles, nil
}

func (r *raffleRepository) Create(ctx context.Context, in models.RaffleCreate) (*models.Raffle, error) {
	now := store.Now()
	sr := storedRaffle{
		Title:       in.Title,
		PrizeID:     in.PrizeID,
		PrizeName:   in.PrizeName,
		SponsorID:   in.SponsorID,
		SponsorName: in.SponsorName,
		TicketSold:  in.TicketSold,
		TicketPrice: in.TicketPrice,
		StartAt:     store.ToMillis(in.StartAt),
		EndAt:       store.ToMillis(in.EndAt),
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	data, err := json.Marshal(sr)
	if err != nil {
		return nil, err
	}
	id, err := r.store.Add(ctx, store.CollectionRaffles, data)
	if err != nil {
		return nil, err
	}
	raffle := sr.toModel(id)
	return &raffle, nil
}

func (r *raffleRepository) CountLive(ctx context.Context) (int, error) {
	docs, err := r.scan(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, doc := range docs {
		var sr storedRaffle
		if err := json.Unmarshal(doc.Data, &sr); err != nil {
			return 0, fmt.Errorf("decode raffle %s: %w", doc.ID, err)
		}
		if sr.Status == models.StatusLive {
			count++
		}
	}
	return count, nil
}

func (r *raffleRepository) SumTicketsSold(ctx context.Context) (int, error) {
	docs, err := r.scan(ctx)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, doc := range docs {
		var sr storedRaffle
		if err := json.Unmarshal(doc.Data, &sr); err != nil {
			return 0, fmt.Errorf("decode raffle %s: %w", doc.ID, err)
		}
		// Absent ticketSold decodes to zero, so old documents without
		// the field count as no tickets, not an error.
		sum += sr.TicketSold
	}
	return sum, nil
}
