package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Ignition-ceo/RaffleFox/internal/common/errors"
	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/models"
	"github.com/Ignition-ceo/RaffleFox/internal/features/raffle/repository/docstore"
	"github.com/Ignition-ceo/RaffleFox/internal/store"
)

func TestCreate_RejectsEndBeforeStart(t *testing.T) {
	svc := NewRaffleService(docstore.NewRaffleRepository(store.NewMemory()))

	start := time.Now()
	_, err := svc.Create(context.Background(), models.RaffleCreate{
		Title:   "backwards",
		StartAt: start,
		EndAt:   start.Add(-time.Hour),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsValidation())
	assert.Contains(t, appErr.Fields, "endAt")
}

func TestCreate_AllowsZeroLengthWindow(t *testing.T) {
	svc := NewRaffleService(docstore.NewRaffleRepository(store.NewMemory()))

	at := time.Now()
	_, err := svc.Create(context.Background(), models.RaffleCreate{
		Title:   "instant",
		StartAt: at,
		EndAt:   at,
	})
	assert.NoError(t, err)
}

func TestList_DegradesToEmptyOnStoreFailure(t *testing.T) {
	svc := NewRaffleService(failingRepo{})
	assert.Empty(t, svc.List(context.Background()))
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]models.Raffle, error) {
	return nil, assert.AnError
}

func (failingRepo) Create(context.Context, models.RaffleCreate) (*models.Raffle, error) {
	return nil, assert.AnError
}

func (failingRepo) CountLive(context.Context) (int, error) {
	return 0, assert.AnError
}

func (failingRepo) SumTicketsSold(context.Context) (int, error) {
	return 0, assert.AnError
}
