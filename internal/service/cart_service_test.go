package service

import (
	"context"
	"testing"

	"dito-store/internal/cart"
	"dito-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager(cart.DefaultMaxIdle, zerolog.Nop())
	productRepo := new(MockProductRepository)
	svc := NewCartService(carts, productRepo, zerolog.Nop())

	p := routerProduct()
	productRepo.On("GetByID", ctx, "dito-router").Return(&p, nil)

	view := svc.Create(ctx)
	view, err := svc.AddItem(ctx, view.ID, "dito-router")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.ItemCount)
	assert.InDelta(t, 1000, view.Subtotal, 0.001)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager(cart.DefaultMaxIdle, zerolog.Nop())
	productRepo := new(MockProductRepository)
	svc := NewCartService(carts, productRepo, zerolog.Nop())

	productRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

	view := svc.Create(ctx)
	_, err := svc.AddItem(ctx, view.ID, "ghost")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestCartService_AddItem_OutOfStock(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager(cart.DefaultMaxIdle, zerolog.Nop())
	productRepo := new(MockProductRepository)
	svc := NewCartService(carts, productRepo, zerolog.Nop())

	p := routerProduct()
	p.Stock = 0
	productRepo.On("GetByID", ctx, "dito-router").Return(&p, nil)

	view := svc.Create(ctx)
	_, err := svc.AddItem(ctx, view.ID, "dito-router")
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
}

func TestCartService_UnknownCart(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager(cart.DefaultMaxIdle, zerolog.Nop())
	svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrCartNotFound)

	_, err = svc.SetQuantity(ctx, "missing", "dito-router", 2)
	assert.ErrorIs(t, err, model.ErrCartNotFound)
}

func TestCartService_Delete(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager(cart.DefaultMaxIdle, zerolog.Nop())
	svc := NewCartService(carts, new(MockProductRepository), zerolog.Nop())

	view := svc.Create(ctx)
	require.NoError(t, svc.Delete(ctx, view.ID))

	_, err := svc.Get(ctx, view.ID)
	assert.ErrorIs(t, err, model.ErrCartNotFound)

	// Deleting an unknown cart is a no-op.
	assert.NoError(t, svc.Delete(ctx, "missing"))
}

func TestCartService_SetQuantity_AppliesBulkDiscount(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager(cart.DefaultMaxIdle, zerolog.Nop())
	productRepo := new(MockProductRepository)
	svc := NewCartService(carts, productRepo, zerolog.Nop())

	p := routerProduct()
	productRepo.On("GetByID", ctx, "dito-router").Return(&p, nil)

	view := svc.Create(ctx)
	_, err := svc.AddItem(ctx, view.ID, "dito-router")
	require.NoError(t, err)

	view, err = svc.SetQuantity(ctx, view.ID, "dito-router", 3)
	require.NoError(t, err)

	// 3 units at 1000 crosses the minQty 3 tier: 10% off.
	assert.Equal(t, 3, view.ItemCount)
	assert.InDelta(t, 2700, view.Subtotal, 0.001)
	assert.InDelta(t, 300, view.DiscountAmount, 0.001)
}
