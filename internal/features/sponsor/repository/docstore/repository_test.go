package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ignition-ceo/RaffleFox/internal/features/sponsor/models"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSponsorRepository(store.NewMemory())

	before := time.Now().Add(-time.Second)
	created, err := repo.Create(ctx, models.SponsorCreate{
		Name:    "Acme Games",
		LogoURL: "https://cdn.example.com/acme.png",
		Website: "https://acme.example.com",
		Status:  "active",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme Games", created.Name)
	assert.True(t, created.CreatedAt.After(before))

	sponsors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sponsors, 1)
	assert.Equal(t, created.ID, sponsors[0].ID)
	assert.Equal(t, "https://acme.example.com", sponsors[0].Website)
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Set(ctx, store.CollectionSponsors, "s1", []byte(`{"name":"Old","createdAt":1000}`)))
	require.NoError(t, mem.Set(ctx, store.CollectionSponsors, "s2", []byte(`{"name":"New","createdAt":2000}`)))

	sponsors, err := NewSponsorRepository(mem).List(ctx)
	require.NoError(t, err)
	require.Len(t, sponsors, 2)
	assert.Equal(t, "New", sponsors[0].Name)
	assert.Equal(t, "Old", sponsors[1].Name)
}
