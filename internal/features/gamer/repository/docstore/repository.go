package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Ignition-ceo/RaffleFox/internal/features/gamer/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/gamer/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

type storedGamer struct {
	UID              string       `json:"uid"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	RegistrationDate store.Millis `json:"registrationDate,omitempty"`
	Status           string       `json:"status"`
}

func (sg storedGamer) toModel(id string) models.Gamer {
	return models.Gamer{
		ID:               id,
		UID:              sg.UID,
		Name:             sg.Name,
		Email:            sg.Email,
		RegistrationDate: sg.RegistrationDate.Time(),
		Status:           sg.Status,
	}
}

type gamerRepository struct {
	store store.Store
}

func NewGamerRepository(s store.Store) repository.GamerRepository {
	return &gamerRepository{store: s}
}

func (r *gamerRepository) List(ctx context.Context) ([]models.Gamer, error) {
	docs, err := r.store.List(ctx, store.CollectionGamers)
	if err != nil {
		return nil, err
	}

	gamers := make([]models.Gamer, 0, len(docs))
	for _, doc := range docs {
		var sg storedGamer
		if err := json.Unmarshal(doc.Data, &sg); err != nil {
			return nil, fmt.Errorf("decode gamer %s: %w", doc.ID, err)
		}
		gamers = append(gamers, sg.toModel(doc.ID))
	}

	sort.SliceStable(gamers, func(i, j int) bool {
		return gamers[i].RegistrationDate.After(gamers[j].RegistrationDate)
	})
	return gamers, nil
}

func (r *gamerRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.store.List(ctx, store.CollectionGamers)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}
