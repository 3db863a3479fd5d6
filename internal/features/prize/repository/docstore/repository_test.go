package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/prize/repository"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

func newRepo() repository.PrizeRepository {
	return NewPrizeRepository(store.NewMemory())
}

func createWithStock(t *testing.T, repo repository.PrizeRepository, name string, stock int) *models.Prize {
	t.Helper()
	prize, err := repo.Create(context.Background(), models.PrizeCreate{
		PrizeName:  name,
		Status:     "active",
		StockLevel: stock,
	})
	require.NoError(t, err)
	return prize
}

func TestCreate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	before := time.Now()
	created, err := repo.Create(ctx, models.PrizeCreate{
		PrizeName:   "Gaming Console",
		KeyDetails:  "Latest generation",
		PrizeValue:  499.99,
		SponsorID:   "sponsor-1",
		SponsorName: "Acme Games",
		StockLevel:  12,
		Status:      "active",
		Images:      []string{"https://cdn.example/console.png"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	prizes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, prizes, 1)

	got := prizes[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Gaming Console", got.PrizeName)
	assert.Equal(t, "Latest generation", got.KeyDetails)
	assert.Equal(t, 499.99, got.PrizeValue)
	assert.Equal(t, "sponsor-1", got.SponsorID)
	assert.Equal(t, "Acme Games", got.SponsorName)
	assert.Equal(t, 12, got.StockLevel)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, []string{"https://cdn.example/console.png"}, got.Images)

	// createdAt/updatedAt are stamped at call time.
	assert.False(t, got.CreatedAt.Before(before.Truncate(time.Millisecond)))
	assert.False(t, got.UpdatedAt.Before(before.Truncate(time.Millisecond)))
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	repo := NewPrizeRepository(s)

	// Seed raw documents so the created timestamps are distinct.
	require.NoError(t, s.Set(ctx, store.CollectionPrizes, "old", []byte(`{"prizeName":"Old","createdAt":1000}`)))
	require.NoError(t, s.Set(ctx, store.CollectionPrizes, "mid", []byte(`{"prizeName":"Mid","createdAt":2000}`)))
	require.NoError(t, s.Set(ctx, store.CollectionPrizes, "new", []byte(`{"prizeName":"New","createdAt":3000}`)))

	prizes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, prizes, 3)
	assert.Equal(t, []string{"New", "Mid", "Old"}, []string{prizes[0].PrizeName, prizes[1].PrizeName, prizes[2].PrizeName})
}

func TestUpdate_MergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	created := createWithStock(t, repo, "Headset", 10)

	newStock := 7
	updated, err := repo.Update(ctx, created.ID, models.PrizeUpdate{StockLevel: &newStock})
	require.NoError(t, err)

	assert.Equal(t, 7, updated.StockLevel)
	assert.Equal(t, "Headset", updated.PrizeName)
	assert.Equal(t, "active", updated.Status)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newRepo()
	_, err := repo.Update(context.Background(), "missing", models.PrizeUpdate{})
	assert.ErrorIs(t, err, repository.ErrPrizeNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	created := createWithStock(t, repo, "Mug", 50)
	require.NoError(t, repo.Delete(ctx, created.ID))

	prizes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, prizes)
}

// The KPI count and the watch list use different thresholds on purpose.
func TestLowStock_ThresholdsAreDistinct(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	for i, stock := range []int{1, 4, 6, 2, 3, 5, 10} {
		createWithStock(t, repo, string(rune('a'+i)), stock)
	}

	count, err := repo.CountLowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "critical threshold is <= 3")

	watch, err := repo.ListLowStockWatch(ctx)
	require.NoError(t, err)
	require.Len(t, watch, 5, "watch threshold is <= 5")

	levels := make([]int, len(watch))
	for i, p := range watch {
		levels[i] = p.StockLevel
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, levels)
}

func TestLowStockWatch_CappedAtSix(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	for i := 0; i < 9; i++ {
		createWithStock(t, repo, string(rune('a'+i)), i%5)
	}

	watch, err := repo.ListLowStockWatch(ctx)
	require.NoError(t, err)
	assert.Len(t, watch, models.LowStockWatchLimit)

	for i := 1; i < len(watch); i++ {
		assert.LessOrEqual(t, watch[i-1].StockLevel, watch[i].StockLevel)
	}
}
