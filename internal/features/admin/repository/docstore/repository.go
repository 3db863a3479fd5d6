package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

type storedAdmin struct {
	UID       string       `json:"uid"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	Company   string       `json:"company"`
	Role      string       `json:"role"`
	Phone     string       `json:"phone"`
	Status    string       `json:"status"`
	CreatedAt store.Millis `json:"createdAt,omitempty"`
}

func (sa storedAdmin) toModel(id string) models.Admin {
	return models.Admin{
		ID:        id,
		UID:       sa.UID,
		Email:     sa.Email,
		Name:      sa.Name,
		Company:   sa.Company,
		Role:      sa.Role,
		Phone:     sa.Phone,
		Status:    sa.Status,
		CreatedAt: sa.CreatedAt.Time(),
	}
}

type adminRepository struct {
	store store.Store
}

func NewAdminRepository(s store.Store) repository.AdminRepository {
	return &adminRepository{store: s}
}

func (r *adminRepository) List(ctx context.Context) ([]models.Admin, error) {
	docs, err := r.store.List(ctx, store.CollectionAdmins)
	if err != nil {
		return nil, err
	}

	admins := make([]models.Admin, 0, len(docs))
	for _, doc := range docs {
		var sa storedAdmin
		if err := json.Unmarshal(doc.Data, &sa); err != nil {
			return nil, fmt.Errorf("decode admin %s: %w", doc.ID, err)
		}
		admins = append(admins, sa.toModel(doc.ID))
	}

	sort.SliceStable(admins, func(i, j int) bool {
		return admins[i].CreatedAt.After(admins[j].CreatedAt)
	})
	return admins, nil
}

func (r *adminRepository) GetByUID(ctx context.Context, uid string) (*models.Admin, error) {
	doc, err := r.store.Get(ctx, store.CollectionAdmins, uid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, repository.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}

	var sa storedAdmin
	if err := json.Unmarshal(doc.Data, &sa); err != nil {
		return nil, fmt.Errorf("decode admin %s: %w", doc.ID, err)
	}
	admin := sa.toModel(doc.ID)
	return &admin, nil
}

// Create writes the record under the identity's uid, so the session
// lookup and the management listing see the same document.
func (r *adminRepository) Create(ctx context.Context, in models.AdminCreate) (*models.Admin, error) {
	sa := storedAdmin{
		UID:       in.UID,
		Email:     in.Email,
		Name:      in.Name,
		Company:   in.Company,
		Role:      in.Role,
		Phone:     in.Phone,
		Status:    in.Status,
		CreatedAt: store.Now(),
	}
	data, err := json.Marshal(sa)
	if err != nil {
		return nil, err
	}
	if err := r.store.Set(ctx, store.CollectionAdmins, in.UID, data); err != nil {
		return nil, err
	}
	admin := sa.toModel(in.UID)
	return &admin, nil
}
