package cart

import (
	"context"
	"testing"
	"time"

	"divineastro/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService(t *testing.T) (*DefaultCartService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultCartService{Cache: client, TTL: time.Hour}, mr
}

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{ProductID: "p1", Name: "Blue Sapphire", Price: 45000, Quantity: 1},
		{ProductID: "p2", Name: "Rudraksha Mala", Price: 2100, Quantity: 2},
	}
}

func TestCreateAndGetCart(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.CreateCart(ctx, sampleItems())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 45000+2*2100.0, created.Total)

	got, err := svc.GetCart(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Len(t, got.Items, 2)
}

func TestGetCartMissing(t *testing.T) {
	svc, _ := newTestCartService(t)
	_, err := svc.GetCart(context.Background(), "no-such-cart")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestUpdateItemsRecomputesTotal(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.CreateCart(ctx, sampleItems())
	require.NoError(t, err)

	updated, err := svc.UpdateItems(ctx, created.ID, []models.CartItem{
		{ProductID: "p2", Name: "Rudraksha Mala", Price: 2100, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2100.0, updated.Total)
	assert.Len(t, updated.Items, 1)
}

func TestCartExpires(t *testing.T) {
	svc, mr := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.CreateCart(ctx, sampleItems())
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = svc.GetCart(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestDeleteCart(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.CreateCart(ctx, sampleItems())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCart(ctx, created.ID))

	_, err = svc.GetCart(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}
