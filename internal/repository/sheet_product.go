package repository

import (
	"context"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"
)

type sheetProductRepository struct {
	store *SheetStore
}

func (r *sheetProductRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	var out []model.Product
	r.store.view(func(snap *sheetdb.Snapshot) {
		if offset >= len(snap.Products) {
			out = []model.Product{}
			return
		}
		end := len(snap.Products)
		if limit > 0 && offset+limit < end {
			end = offset + limit
		}
		out = make([]model.Product, end-offset)
		copy(out, snap.Products[offset:end])
	})
	return out, nil
}

func (r *sheetProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var out *model.Product
	r.store.view(func(snap *sheetdb.Snapshot) {
		for i := range snap.Products {
			if snap.Products[i].ID == id {
				p := snap.Products[i]
				out = &p
				return
			}
		}
	})
	return out, nil
}

func (r *sheetProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]model.Product, 0, len(ids))
	r.store.view(func(snap *sheetdb.Snapshot) {
		for _, p := range snap.Products {
			if wanted[p.ID] {
				out = append(out, p)
			}
		}
	})
	return out, nil
}

func (r *sheetProductRepository) Upsert(ctx context.Context, p *model.Product) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		replaced := false
		for i := range snap.Products {
			if snap.Products[i].ID == p.ID {
				snap.Products[i] = *p
				replaced = true
				break
			}
		}
		if !replaced {
			snap.Products = append(snap.Products, *p)
		}
		rows := productRows(snap)
		return func(ctx context.Context) error {
			return r.store.syncer.SyncProducts(ctx, rows)
		}, nil
	})
}

func (r *sheetProductRepository) Delete(ctx context.Context, id string) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Products {
			if snap.Products[i].ID == id {
				snap.Products = append(snap.Products[:i], snap.Products[i+1:]...)
				rows := productRows(snap)
				return func(ctx context.Context) error {
					return r.store.syncer.SyncProducts(ctx, rows)
				}, nil
			}
		}
		return nil, model.ErrProductNotFound
	})
}

func (r *sheetProductRepository) DecrementStock(ctx context.Context, decrements []model.StockDecrement) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		applyStockDecrements(snap, decrements)
		rows := productRows(snap)
		return func(ctx context.Context) error {
			return r.store.syncer.SyncProducts(ctx, rows)
		}, nil
	})
}

func (r *sheetProductRepository) LowStock(ctx context.Context) ([]model.Product, error) {
	out := []model.Product{}
	r.store.view(func(snap *sheetdb.Snapshot) {
		for _, p := range snap.Products {
			if p.LowStock() {
				out = append(out, p)
			}
		}
	})
	return out, nil
}

// applyStockDecrements clamps stock at zero; an oversell detected late is
// recorded as zero rather than a negative count.
func applyStockDecrements(snap *sheetdb.Snapshot, decrements []model.StockDecrement) {
	for _, d := range decrements {
		for i := range snap.Products {
			if snap.Products[i].ID != d.ProductID {
				continue
			}
			snap.Products[i].Stock -= d.Quantity
			if snap.Products[i].Stock < 0 {
				snap.Products[i].Stock = 0
			}
			break
		}
	}
}
