package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

type storedSponsor struct {
	Name      string       `json:"name"`
	LogoURL   string       `json:"logoUrl"`
	Website   string       `json:"website"`
	Status    string       `json:"status"`
	CreatedAt store.Millis `json:"createdAt,omitempty"`
}

func (ss storedSponsor) toModel(id string) models.Sponsor {
	return models.Sponsor{
		ID:        id,
		Name:      ss.Name,
		LogoURL:   ss.LogoURL,
		Website:   ss.Website,
		Status:    ss.Status,
		CreatedAt: ss.CreatedAt.Time(),
	}
}

type sponsorRepository struct {
	store store.Store
}

func NewSponsorRepository(s store.Store) repository.SponsorRepository {
	return &sponsorRepository{store: s}
}

func (r *sponsorRepository) List(ctx context.Context) ([]models.Sponsor, error) {
	docs, err := r.store.List(ctx, store.CollectionSponsors)
	if err != nil {
		return nil, err
	}

	sponsors := make([]models.Sponsor, 0, len(docs))
	for _, doc := range docs {
		var ss storedSponsor
		if err := json.Unmarshal(doc.Data, &ss); err != nil {
			return nil, fmt.Errorf("decode sponsor %s: %w", doc.ID, err)
		}
		sponsors = append(sponsors, ss.toModel(doc.ID))
	}

	sort.SliceStable(sponsors, func(i, j int) bool {
		return sponsors[i].CreatedAt.After(sponsors[j].CreatedAt)
	})
	return sponsors, nil
}

func (r *sponsorRepository) Create(ctx context.Context, in models.SponsorCreate) (*models.Sponsor, error) {
	ss := storedSponsor{
		Name:      in.Name,
		LogoURL:   in.LogoURL,
		Website:   in.Website,
		Status:    in.Status,
		CreatedAt: store.Now(),
	}
	data, err := json.Marshal(ss)
	if err != nil {
		return nil, err
	}
	id, err := r.store.Add(ctx, store.CollectionSponsors, data)
	if err != nil {
		return nil, err
	}
	sponsor := ss.toModel(id)
	return &sponsor, nil
}
