package repository

import (
	"context"
	"sort"
	"time"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"

	"github.com/google/uuid"
)

type sheetOrderRepository struct {
	store *SheetStore
}

func (r *sheetOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	r.store.view(func(snap *sheetdb.Snapshot) {
		out = orderRows(snap)
	})
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *sheetOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var out *model.Order
	r.store.view(func(snap *sheetdb.Snapshot) {
		for i := range snap.Orders {
			if snap.Orders[i].ID == id {
				o := snap.Orders[i]
				out = &o
				return
			}
		}
	})
	return out, nil
}

func (r *sheetOrderRepository) GetByReferral(ctx context.Context, affiliateID string) ([]model.Order, error) {
	out := []model.Order{}
	r.store.view(func(snap *sheetdb.Snapshot) {
		for _, o := range snap.Orders {
			if o.ReferralID == affiliateID {
				out = append(out, o)
			}
		}
	})
	sortOrdersNewestFirst(out)
	return out, nil
}

// Create appends the order and applies its stock decrements under the same
// lock, so a poll or concurrent checkout never observes one without the other.
func (r *sheetOrderRepository) Create(ctx context.Context, order *model.Order, decrements []model.StockDecrement) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		snap.Orders = append(snap.Orders, *order)
		applyStockDecrements(snap, decrements)
		orders := orderRows(snap)
		products := productRows(snap)
		return func(ctx context.Context) error {
			if err := r.store.syncer.SyncOrders(ctx, orders); err != nil {
				return err
			}
			return r.store.syncer.SyncProducts(ctx, products)
		}, nil
	})
}

func (r *sheetOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, model.OrderStatus, error) {
	var updated *model.Order
	var previous model.OrderStatus
	err := r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Orders {
			if snap.Orders[i].ID != id {
				continue
			}
			previous = snap.Orders[i].Status
			snap.Orders[i].Status = status
			snap.Orders[i].UpdatedAt = time.Now().UTC()
			o := snap.Orders[i]
			updated = &o
			rows := orderRows(snap)
			return func(ctx context.Context) error {
				return r.store.syncer.SyncOrders(ctx, rows)
			}, nil
		}
		return nil, model.ErrOrderNotFound
	})
	if err != nil {
		return nil, "", err
	}
	return updated, previous, nil
}

// CreditCommission is the idempotency gate for affiliate earnings: the paid
// flag check and the wallet credit happen under one lock, so two Delivered
// transitions for the same order credit exactly once.
func (r *sheetOrderRepository) CreditCommission(ctx context.Context, orderID uuid.UUID, affiliateID string, amount float64) (bool, error) {
	credited := false
	err := r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		var order *model.Order
		for i := range snap.Orders {
			if snap.Orders[i].ID == orderID {
				order = &snap.Orders[i]
				break
			}
		}
		if order == nil {
			return nil, model.ErrOrderNotFound
		}
		if order.CommissionPaid {
			return nil, nil
		}

		var affiliate *model.Affiliate
		for i := range snap.Affiliates {
			if snap.Affiliates[i].ID == affiliateID {
				affiliate = &snap.Affiliates[i]
				break
			}
		}
		if affiliate == nil {
			return nil, model.ErrAffiliateNotFound
		}

		order.CommissionPaid = true
		order.UpdatedAt = time.Now().UTC()
		affiliate.WalletBalance += amount
		affiliate.LifetimeEarnings += amount
		credited = true

		orders := orderRows(snap)
		affiliates := affiliateRows(snap)
		return func(ctx context.Context) error {
			if err := r.store.syncer.SyncOrders(ctx, orders); err != nil {
				return err
			}
			return r.store.syncer.SyncAffiliates(ctx, affiliates)
		}, nil
	})
	return credited, err
}

func (r *sheetOrderRepository) SetFulfillment(ctx context.Context, id uuid.UUID, courier, trackingNumber string) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Orders {
			if snap.Orders[i].ID != id {
				continue
			}
			snap.Orders[i].Courier = courier
			snap.Orders[i].TrackingNumber = trackingNumber
			snap.Orders[i].UpdatedAt = time.Now().UTC()
			rows := orderRows(snap)
			return func(ctx context.Context) error {
				return r.store.syncer.SyncOrders(ctx, rows)
			}, nil
		}
		return nil, model.ErrOrderNotFound
	})
}

func (r *sheetOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Orders {
			if snap.Orders[i].ID == id {
				snap.Orders = append(snap.Orders[:i], snap.Orders[i+1:]...)
				rows := orderRows(snap)
				return func(ctx context.Context) error {
					return r.store.syncer.SyncOrders(ctx, rows)
				}, nil
			}
		}
		return nil, model.ErrOrderNotFound
	})
}

func sortOrdersNewestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
