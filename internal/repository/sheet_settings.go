package repository

import (
	"context"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"
)

type sheetSettingsRepository struct {
	store *SheetStore
}

func (r *sheetSettingsRepository) Shipping(ctx context.Context) (model.ShippingSettings, error) {
	var out model.ShippingSettings
	r.store.view(func(snap *sheetdb.Snapshot) {
		out = snap.Shipping
	})
	return out, nil
}

func (r *sheetSettingsRepository) SaveShipping(ctx context.Context, s model.ShippingSettings) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		snap.Shipping = s
		return r.syncSettings(snap), nil
	})
}

func (r *sheetSettingsRepository) Payment(ctx context.Context) (model.PaymentSettings, error) {
	var out model.PaymentSettings
	r.store.view(func(snap *sheetdb.Snapshot) {
		out = snap.Payment
	})
	return out, nil
}

func (r *sheetSettingsRepository) SavePayment(ctx context.Context, s model.PaymentSettings) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		snap.Payment = s
		return r.syncSettings(snap), nil
	})
}

func (r *sheetSettingsRepository) SMTP(ctx context.Context) (model.SMTPSettings, error) {
	var out model.SMTPSettings
	r.store.view(func(snap *sheetdb.Snapshot) {
		out = snap.SMTP
	})
	return out, nil
}

func (r *sheetSettingsRepository) SaveSMTP(ctx context.Context, s model.SMTPSettings) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		snap.SMTP = s
		return r.syncSettings(snap), nil
	})
}

// syncSettings snapshots all three settings groups while the lock is held;
// the Settings tab is written as one unit.
func (r *sheetSettingsRepository) syncSettings(snap *sheetdb.Snapshot) func(ctx context.Context) error {
	shipping := snap.Shipping
	payment := snap.Payment
	smtp := snap.SMTP
	return func(ctx context.Context) error {
		return r.store.syncer.SyncSettings(ctx, shipping, payment, smtp)
	}
}
