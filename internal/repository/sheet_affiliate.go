package repository

import (
	"context"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"
)

type sheetAffiliateRepository struct {
	store *SheetStore
}

func (r *sheetAffiliateRepository) GetAll(ctx context.Context) ([]model.Affiliate, error) {
	var out []model.Affiliate
	r.store.view(func(snap *sheetdb.Snapshot) {
		out = affiliateRows(snap)
	})
	return out, nil
}

func (r *sheetAffiliateRepository) GetByID(ctx context.Context, id string) (*model.Affiliate, error) {
	var out *model.Affiliate
	r.store.view(func(snap *sheetdb.Snapshot) {
		for i := range snap.Affiliates {
			if snap.Affiliates[i].ID == id {
				a := snap.Affiliates[i]
				out = &a
				return
			}
		}
	})
	return out, nil
}

func (r *sheetAffiliateRepository) Create(ctx context.Context, a *model.Affiliate) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		snap.Affiliates = append(snap.Affiliates, *a)
		rows := affiliateRows(snap)
		return func(ctx context.Context) error {
			return r.store.syncer.SyncAffiliates(ctx, rows)
		}, nil
	})
}

func (r *sheetAffiliateRepository) Update(ctx context.Context, a *model.Affiliate) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Affiliates {
			if snap.Affiliates[i].ID == a.ID {
				snap.Affiliates[i] = *a
				rows := affiliateRows(snap)
				return func(ctx context.Context) error {
					return r.store.syncer.SyncAffiliates(ctx, rows)
				}, nil
			}
		}
		return nil, model.ErrAffiliateNotFound
	})
}

func (r *sheetAffiliateRepository) RecordClick(ctx context.Context, id string) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Affiliates {
			if snap.Affiliates[i].ID == id {
				snap.Affiliates[i].Clicks++
				rows := affiliateRows(snap)
				return func(ctx context.Context) error {
					return r.store.syncer.SyncAffiliates(ctx, rows)
				}, nil
			}
		}
		return nil, model.ErrAffiliateNotFound
	})
}

func (r *sheetAffiliateRepository) AddSales(ctx context.Context, id string, amount float64) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Affiliates {
			if snap.Affiliates[i].ID == id {
				snap.Affiliates[i].TotalSales += amount
				rows := affiliateRows(snap)
				return func(ctx context.Context) error {
					return r.store.syncer.SyncAffiliates(ctx, rows)
				}, nil
			}
		}
		return nil, model.ErrAffiliateNotFound
	})
}
