package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

type storedPrize struct {
	PrizeName   string       `json:"prizeName"`
	KeyDetails  string       `json:"keyDetails"`
	PrizeValue  float64      `json:"prizeValue"`
	SponsorID   string       `json:"sponsorId"`
	SponsorName string       `json:"sponsorName"`
	StockLevel  int          `json:"stockLevel"`
	Status      string       `json:"status"`
	Images      []string     `json:"images,omitempty"`
	CreatedAt   store.Millis `json:"createdAt,omitempty"`
	UpdatedAt   store.Millis `json:"updatedAt,omitempty"`
}

func (sp storedPrize) toModel(id string) models.Prize {
	return models.Prize{
		ID:          id,
		PrizeName:   sp.PrizeName,
		KeyDetails:  sp.KeyDetails,
		PrizeValue:  sp.PrizeValue,
		SponsorID:   sp.SponsorID,
		SponsorName: sp.SponsorName,
		StockLevel:  sp.StockLevel,
		Status:      sp.Status,
		Images:      sp.Images,
		CreatedAt:   sp.CreatedAt.Time(),
		UpdatedAt:   sp.UpdatedAt.Time(),
	}
}

type prizeRepository struct {
	store store.Store
}

func NewPrizeRepository(s store.Store) repository.PrizeRepository {
	return &prizeRepository{store: s}
}

func (r *prizeRepository) scan(ctx context.Context) ([]models.Prize, error) {
	docs, err := r.store.List(ctx, store.CollectionPrizes)
	if err != nil {
		return nil, err
	}
	prizes := make([]models.Prize, 0, len(docs))
	for _, doc := range docs {
		var sp storedPrize
		if err := json.Unmarshal(doc.Data, &sp); err != nil {
			return nil, fmt.Errorf("decode prize %s: %w", doc.ID, err)
		}
		prizes = append(prizes, sp.toModel(doc.ID))
	}
	return prizes, nil
}

func (r *prizeRepository) List(ctx context.Context) ([]models.Prize, error) {
	prizes, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(prizes, func(i, j int) bool {
		return prizes[i].CreatedAt.After(prizes[j].CreatedAt)
	})
	return prizes, nil
}

func (r *prizeRepository) Create(ctx context.Context, in models.PrizeCreate) (*models.Prize, error) {
	now := store.Now()
	sp := storedPrize{
		PrizeName:   in.PrizeName,
		KeyDetails:  in.KeyDetails,
		PrizeValue:  in.PrizeValue,
		SponsorID:   in.SponsorID,
		SponsorName: in.SponsorName,
		StockLevel:  in.StockLevel,
		Status:      in.Status,
		Images:      in.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	data, err := json.Marshal(sp)
	if err != nil {
		return nil, err
	}
	id, err := r.store.Add(ctx, store.CollectionPrizes, data)
	if err != nil {
		return nil, err
	}
	prize := sp.toModel(id)
	return &prize, nil
}

func (r *prizeRepository) Update(ctx context.Context, id string, in models.PrizeUpdate) (*models.Prize, error) {
	doc, err := r.store.Get(ctx, store.CollectionPrizes, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, repository.ErrPrizeNotFound
	}
	if err != nil {
		return nil, err
	}

	var sp storedPrize
	if err := json.Unmarshal(doc.Data, &sp); err != nil {
		return nil, fmt.Errorf("decode prize %s: %w", id, err)
	}

	if in.PrizeName != nil {
		sp.PrizeName = *in.PrizeName
	}
	if in.KeyDetails != nil {
		sp.KeyDetails = *in.KeyDetails
	}
	if in.PrizeValue != nil {
		sp.PrizeValue = *in.PrizeValue
	}
	if in.SponsorID != nil {
		sp.SponsorID = *in.SponsorID
	}
	if in.SponsorName != nil {
		sp.SponsorName = *in.SponsorName
	}
	if in.StockLevel != nil {
		sp.StockLevel = *in.StockLevel
	}
	if in.Status != nil {
		sp.Status = *in.Status
	}
	if in.Images != nil {
		sp.Images = *in.Images
	}
	sp.UpdatedAt = store.Now()

	data, err := json.Marshal(sp)
	if err != nil {
		return nil, err
	}
	if err := r.store.Set(ctx, store.CollectionPrizes, id, data); err != nil {
		return nil, err
	}
	prize := sp.toModel(id)
	return &prize, nil
}

func (r *prizeRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionPrizes, id)
}

func (r *prizeRepository) CountLowStock(ctx context.Context) (int, error) {
	prizes, err := r.scan(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range prizes {
		if p.StockLevel <= models.LowStockCritical {
			count++
		}
	}
	return count, nil
}

func (r *prizeRepository) ListLowStockWatch(ctx context.Context) ([]models.Prize, error) {
	prizes, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}

	watch := make([]models.Prize, 0, models.LowStockWatchLimit)
	for _, p := range prizes {
		if p.StockLevel <= models.LowStockWatch {
			watch = append(watch, p)
		}
	}
	sort.SliceStable(watch, func(i, j int) bool {
		return watch[i].StockLevel < watch[j].StockLevel
	})
	if len(watch) > models.LowStockWatchLimit {
		watch = watch[:models.LowStockWatchLimit]
	}
	return watch, nil
}
