package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

func seed(t *testing.T, s store.Store, id, doc string) {
	t.Helper()
	require.NoError(t, s.Set(context.Background(), store.CollectionGamers, id, []byte(doc)))
}

func TestList_MostRecentlyRegisteredFirst(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	seed(t, mem, "g1", `{"uid":"u1","name":"First","email":"first@example.com","registrationDate":1000}`)
	seed(t, mem, "g2", `{"uid":"u2","name":"Third","email":"third@example.com","registrationDate":3000}`)
	seed(t, mem, "g3", `{"uid":"u3","name":"Second","email":"second@example.com","registrationDate":2000}`)

	repo := NewGamerRepository(mem)
	gamers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, gamers, 3)
	assert.Equal(t, "Third", gamers[0].Name)
	assert.Equal(t, "Second", gamers[1].Name)
	assert.Equal(t, "First", gamers[2].Name)
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	repo := NewGamerRepository(mem)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	seed(t, mem, "g1", `{"uid":"u1","email":"one@example.com"}`)
	seed(t, mem, "g2", `{"uid":"u2","email":"two@example.com"}`)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
