package repository

import (
	"context"
	"sort"
	"time"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"

	"github.com/google/uuid"
)

type sheetPayoutRepository struct {
	store *SheetStore
}

func (r *sheetPayoutRepository) GetAll(ctx context.Context) ([]model.PayoutRequest, error) {
	var out []model.PayoutRequest
	r.store.view(func(snap *sheetdb.Snapshot) {
		out = payoutRows(snap)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateRequested.After(out[j].DateRequested)
	})
	return out, nil
}

func (r *sheetPayoutRepository) GetByAffiliate(ctx context.Context, affiliateID string) ([]model.PayoutRequest, error) {
	out := []model.PayoutRequest{}
	r.store.view(func(snap *sheetdb.Snapshot) {
		for _, p := range snap.Payouts {
			if p.AffiliateID == affiliateID {
				out = append(out, p)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateRequested.After(out[j].DateRequested)
	})
	return out, nil
}

// Reserve debits the wallet and records the pending request in one step, so
// an affiliate cannot queue two payouts against the same balance.
func (r *sheetPayoutRepository) Reserve(ctx context.Context, p *model.PayoutRequest) error {
	return r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		var affiliate *model.Affiliate
		for i := range snap.Affiliates {
			if snap.Affiliates[i].ID == p.AffiliateID {
				affiliate = &snap.Affiliates[i]
				break
			}
		}
		if affiliate == nil {
			return nil, model.ErrAffiliateNotFound
		}
		if affiliate.WalletBalance < p.Amount {
			return nil, model.ErrInsufficientFunds
		}

		affiliate.WalletBalance -= p.Amount
		snap.Payouts = append(snap.Payouts, *p)

		payouts := payoutRows(snap)
		affiliates := affiliateRows(snap)
		return func(ctx context.Context) error {
			if err := r.store.syncer.SyncPayouts(ctx, payouts); err != nil {
				return err
			}
			return r.store.syncer.SyncAffiliates(ctx, affiliates)
		}, nil
	})
}

// Resolve finalises a pending payout. Rejection puts the reserved amount back
// in the wallet; approval leaves the debit in place. Either way the decision
// is terminal.
func (r *sheetPayoutRepository) Resolve(ctx context.Context, id uuid.UUID, status model.PayoutStatus) (*model.PayoutRequest, error) {
	var resolved *model.PayoutRequest
	err := r.store.mutate(func(snap *sheetdb.Snapshot) (func(ctx context.Context) error, error) {
		var payout *model.PayoutRequest
		for i := range snap.Payouts {
			if snap.Payouts[i].ID == id {
				payout = &snap.Payouts[i]
				break
			}
		}
		if payout == nil {
			return nil, model.ErrPayoutNotFound
		}
		if payout.Status != model.PayoutPending {
			return nil, model.ErrPayoutResolved
		}

		refund := status == model.PayoutRejected
		if refund {
			found := false
			for i := range snap.Affiliates {
				if snap.Affiliates[i].ID == payout.AffiliateID {
					snap.Affiliates[i].WalletBalance += payout.Amount
					found = true
					break
				}
			}
			if !found {
				return nil, model.ErrAffiliateNotFound
			}
		}

		now := time.Now().UTC()
		payout.Status = status
		payout.DateProcessed = &now
		p := *payout
		resolved = &p

		payouts := payoutRows(snap)
		affiliates := affiliateRows(snap)
		return func(ctx context.Context) error {
			if err := r.store.syncer.SyncPayouts(ctx, payouts); err != nil {
				return err
			}
			if !refund {
				return nil
			}
			return r.store.syncer.SyncAffiliates(ctx, affiliates)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}
