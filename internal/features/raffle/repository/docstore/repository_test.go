package docstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/models"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

func TestCountLive(t *testing.T) {
	ctx := context.Background()
	repo := NewRaffleRepository(store.NewMemory())

	for i, status := range []string{"live", "live", "draft", "ended"} {
		_, err := repo.Create(ctx, models.RaffleCreate{
			Title:   fmt.Sprintf("raffle-%d", i),
			StartAt: time.Now(),
			EndAt:   time.Now().Add(24 * time.Hour),
			Status:  status,
		})
		require.NoError(t, err)
	}

	count, err := repo.CountLive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSumTicketsSold_MissingFieldCountsAsZero(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	repo := NewRaffleRepository(s)

	require.NoError(t, s.Set(ctx, store.CollectionRaffles, "a", []byte(`{"title":"a","ticketSold":40}`)))
	require.NoError(t, s.Set(ctx, store.CollectionRaffles, "b", []byte(`{"title":"b","ticketSold":2}`)))
	// Old document without a ticketSold field at all.
	require.NoError(t, s.Set(ctx, store.CollectionRaffles, "c", []byte(`{"title":"c"}`)))

	sum, err := repo.SumTicketsSold(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, sum)
}

func TestSumTicketsSold_EmptyCollection(t *testing.T) {
	repo := NewRaffleRepository(store.NewMemory())
	sum, err := repo.SumTicketsSold(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestCreate_PersistsSchedule(t *testing.T) {
	ctx := context.Background()
	repo := NewRaffleRepository(store.NewMemory())

	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	created, err := repo.Create(ctx, models.RaffleCreate{
		Title:       "Summer draw",
		PrizeID:     "prize-1",
		PrizeName:   "Gaming Console",
		SponsorID:   "sponsor-1",
		SponsorName: "Acme Games",
		TicketSold:  10,
		TicketPrice: "2.50",
		StartAt:     start,
		EndAt:       end,
		Status:      "live",
	})
	require.NoError(t, err)

	raffles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, raffles, 1)

	got := raffles[0]
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.StartAt.Equal(start))
	assert.True(t, got.EndAt.Equal(end))
	assert.Equal(t, 10, got.TicketSold)
	assert.Equal(t, "2.50", got.TicketPrice)
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	repo := NewRaffleRepository(s)

	require.NoError(t, s.Set(ctx, store.CollectionRaffles, "old", []byte(`{"title":"Old","createdAt":1000}`)))
	require.NoError(t, s.Set(ctx, store.CollectionRaffles, "new", []byte(`{"title":"New","createdAt":2000}`)))

	raffles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, raffles, 2)
	assert.Equal(t, "New", raffles[0].Title)
	assert.Equal(t, "Old", raffles[1].Title)
}
