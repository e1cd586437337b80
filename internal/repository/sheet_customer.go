package repository

import (
	"context"
	"strings"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"
)

type sheetCustomerRepository struct {
	store *SheetStore
}

func (r *sheetCustomerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	var out []model.Customer
	r.store.view(func(snap *sheetdb.Snapshot) {
		out = customerRows(snap)
	})
	return out, nil
}

func (r *sheetCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		snap.Customers = append(snap.Customers, *c)
		rows := customerRows(snap)
		return func(ctx context.Context) error {
			return r.store.syncer.SyncCustomers(ctx, rows)
		}, nil
	})
}

func (r *sheetCustomerRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		for i := range snap.Customers {
			if strings.EqualFold(snap.Customers[i].Email, email) {
				snap.Customers = append(snap.Customers[:i], snap.Customers[i+1:]...)
				rows := customerRows(snap)
				return func(ctx context.Context) error {
					return r.store.syncer.SyncCustomers(ctx, rows)
				}, nil
			}
		}
		return nil, nil
	})
}
