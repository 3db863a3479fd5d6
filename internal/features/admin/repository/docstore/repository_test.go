package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/admin/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

func TestGetByUID_NotFound(t *testing.T) {
	repo := NewAdminRepository(store.NewMemory())
	_, err := repo.GetByUID(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
}

func TestCreate_KeyedByUID(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(store.NewMemory())

	created, err := repo.Create(ctx, models.AdminCreate{
		UID:     "uid-1",
		Email:   "ops@rafflefox.local",
		Name:    "Ops",
		Company: "Raffle Fox",
		Role:    "admin",
		Status:  models.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", created.ID)

	got, err := repo.GetByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "ops@rafflefox.local", got.Email)
	assert.True(t, got.IsActive())
}

func TestCreate_UpsertsSameUID(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(store.NewMemory())

	_, err := repo.Create(ctx, models.AdminCreate{UID: "uid-1", Email: "a@x.co", Name: "A", Role: "admin", Status: models.StatusPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.AdminCreate{UID: "uid-1", Email: "a@x.co", Name: "A", Role: "admin", Status: models.StatusActive})
	require.NoError(t, err)

	admins, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, models.StatusActive, admins[0].Status)
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	repo := NewAdminRepository(s)

	require.NoError(t, s.Set(ctx, store.CollectionAdmins, "u1", []byte(`{"uid":"u1","name":"First","createdAt":1000}`)))
	require.NoError(t, s.Set(ctx, store.CollectionAdmins, "u2", []byte(`{"uid":"u2","name":"Second","createdAt":2000}`)))

	admins, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "Second", admins[0].Name)
}

func TestIsActive(t *testing.T) {
	var nilAdmin *models.Admin
	assert.False(t, nilAdmin.IsActive())
	assert.False(t, (&models.Admin{Status: models.StatusInactive}).IsActive())
	assert.True(t, (&models.Admin{Status: models.StatusActive}).IsActive())
}
