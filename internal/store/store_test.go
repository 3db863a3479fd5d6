package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillis_RoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	m := ToMillis(at)
	assert.True(t, m.Time().Equal(at))
}

func TestMillis_AbsentDefaultsToNow(t *testing.T) {
	var m Millis
	got := m.Time()
	assert.WithinDuration(t, time.Now(), got, time.Second)
}

func TestMillis_ZeroTimePersistsAsAbsent(t *testing.T) {
	assert.Equal(t, Millis(0), ToMillis(time.Time{}))
}

func TestMemory_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	// Empty collection lists to an empty slice, never an error.
	docs, err := s.List(ctx, CollectionPrizes)
	require.NoError(t, err)
	assert.Empty(t, docs)

	id, err := s.Add(ctx, CollectionPrizes, []byte(`{"prizeName":"Console"}`))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := s.Get(ctx, CollectionPrizes, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"prizeName":"Console"}`, string(doc.Data))

	require.NoError(t, s.Set(ctx, CollectionPrizes, id, []byte(`{"prizeName":"TV"}`)))
	doc, err = s.Get(ctx, CollectionPrizes, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"prizeName":"TV"}`, string(doc.Data))

	require.NoError(t, s.Delete(ctx, CollectionPrizes, id))
	_, err = s.Get(ctx, CollectionPrizes, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_CollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.Add(ctx, CollectionRaffles, []byte(`{}`))
	require.NoError(t, err)

	docs, err := s.List(ctx, CollectionSponsors)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	id, err := s.Add(ctx, CollectionAdmins, []byte(`{"name":"a"}`))
	require.NoError(t, err)

	doc, err := s.Get(ctx, CollectionAdmins, id)
	require.NoError(t, err)
	doc.Data[2] = 'X'

	again, err := s.Get(ctx, CollectionAdmins, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a"}`, string(again.Data))
}
