package repository

import (
	"context"
	"testing"
	"time"

	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/form"
	"github.com/futig/touchdown/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationCache_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationCache(time.Hour, time.Hour)
	f := form.New(nil, validator.New())

	require.NoError(t, repo.Create(ctx, "a1", f))
	assert.Error(t, repo.Create(ctx, "a1", f))
	assert.Equal(t, 1, repo.Count())

	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Same(t, f, got)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrApplicationNotFound)
}

func TestApplicationCache_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationCache(50*time.Millisecond, time.Hour)

	require.NoError(t, repo.Create(ctx, "a1", form.New(nil, validator.New())))

	assert.Eventually(t, func() bool {
		_, err := repo.Get(ctx, "a1")
		return err != nil
	}, time.Second, 10*time.Millisecond)
}
