package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"dito-store/internal/model"
	"dito-store/internal/sheetdb"

	"github.com/rs/zerolog"
)

// syncTimeout bounds a single background write-through to the spreadsheet.
const syncTimeout = 30 * time.Second

// SheetSyncer is the slice of sheetdb.Client the store depends on.
type SheetSyncer interface {
	Read(ctx context.Context) (*sheetdb.Snapshot, error)
	SyncProducts(ctx context.Context, products []model.Product) error
	SyncOrders(ctx context.Context, orders []model.Order) error
	SyncCustomers(ctx context.Context, customers []model.Customer) error
	SyncAffiliates(ctx context.Context, affiliates []model.Affiliate) error
	SyncPayouts(ctx context.Context, payouts []model.PayoutRequest) error
	SyncSettings(ctx context.Context, shipping model.ShippingSettings, payment model.PaymentSettings, smtp model.SMTPSettings) error
}

// SheetStore keeps the full spreadsheet snapshot in memory and serialises all
// mutations behind one mutex. Reads serve from memory; every mutation bumps a
// revision counter and queues a write-through of the affected tab, flushed in
// mutation order by a single background worker. The spreadsheet is a
// durability layer, not the arbiter of concurrent writes: the in-memory state
// is authoritative between refreshes.
type SheetStore struct {
	mu     sync.Mutex
	snap   *sheetdb.Snapshot
	rev    uint64
	syncer SheetSyncer
	logger zerolog.Logger

	queue    []func(ctx context.Context) error
	flushing bool
	wg       sync.WaitGroup
}

// NewSheetStore creates a store seeded with an initial snapshot.
func NewSheetStore(syncer SheetSyncer, initial *sheetdb.Snapshot, logger zerolog.Logger) *SheetStore {
	if initial == nil {
		initial = &sheetdb.Snapshot{}
	}
	return &SheetStore{
		snap:   initial,
		syncer: syncer,
		logger: logger.With().Str("service", "sheet_store").Logger(),
	}
}

// NewMemorySheetStore creates a store with no spreadsheet behind it. Writes
// stay in memory only; useful for demos and local development without
// Google credentials.
func NewMemorySheetStore(initial *sheetdb.Snapshot, logger zerolog.Logger) *SheetStore {
	return NewSheetStore(nopSyncer{}, initial, logger)
}

// nopSyncer discards every write-through.
type nopSyncer struct{}

func (nopSyncer) Read(ctx context.Context) (*sheetdb.Snapshot, error) {
	return nil, errors.New("memory store has no spreadsheet to read")
}
func (nopSyncer) SyncProducts(ctx context.Context, products []model.Product) error   { return nil }
func (nopSyncer) SyncOrders(ctx context.Context, orders []model.Order) error         { return nil }
func (nopSyncer) SyncCustomers(ctx context.Context, customers []model.Customer) error { return nil }
func (nopSyncer) SyncAffiliates(ctx context.Context, affiliates []model.Affiliate) error {
	return nil
}
func (nopSyncer) SyncPayouts(ctx context.Context, payouts []model.PayoutRequest) error { return nil }
func (nopSyncer) SyncSettings(ctx context.Context, shipping model.ShippingSettings, payment model.PaymentSettings, smtp model.SMTPSettings) error {
	return nil
}

// NewSheetRepositories wires the full repository set over one shared store.
func NewSheetRepositories(store *SheetStore) Repositories {
	return Repositories{
		Products:   &sheetProductRepository{store: store},
		Orders:     &sheetOrderRepository{store: store},
		Affiliates: &sheetAffiliateRepository{store: store},
		Payouts:    &sheetPayoutRepository{store: store},
		Customers:  &sheetCustomerRepository{store: store},
		Settings:   &sheetSettingsRepository{store: store},
	}
}

// view runs fn with the snapshot locked for reading.
func (s *SheetStore) view(fn func(snap *sheetdb.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.snap)
}

// mutate runs fn with the snapshot locked. When fn reports a change the
// revision counter advances and fn's returned sync closure joins the flush
// queue. A single worker drains the queue in order, so the last write-through
// for a tab always carries the newest rows.
func (s *SheetStore) mutate(fn func(snap *sheetdb.Snapshot) (sync func(ctx context.Context) error, err error)) error {
	s.mu.Lock()
	flush, err := fn(s.snap)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if flush == nil {
		s.mu.Unlock()
		return nil
	}
	s.rev++
	s.queue = append(s.queue, flush)
	if !s.flushing {
		s.flushing = true
		s.wg.Add(1)
		go s.drainFlushes()
	}
	s.mu.Unlock()
	return nil
}

// drainFlushes pushes queued write-throughs to the spreadsheet one at a time,
// in mutation order, and exits when the queue empties.
func (s *SheetStore) drainFlushes() {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.flushing = false
			s.mu.Unlock()
			return
		}
		flush := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		if err := flush(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Background sheet sync failed")
		}
		cancel()
	}
}

// Refresh re-reads the spreadsheet and installs the result, unless a local
// mutation landed while the fetch was in flight. In that case the fetched
// snapshot is stale relative to memory and is discarded; the next tick tries
// again.
func (s *SheetStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	startRev := s.rev
	s.mu.Unlock()

	snap, err := s.syncer.Read(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rev != startRev {
		s.logger.Debug().Uint64("revision", s.rev).Msg("Skipping refresh, local writes in flight")
		return nil
	}
	s.snap = snap
	return nil
}

// RunPoller reconciles the in-memory snapshot with the spreadsheet on a fixed
// interval until ctx is cancelled. Spreadsheet edits made by operators show up
// in the store within one interval.
func (s *SheetStore) RunPoller(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("Snapshot refresh failed")
			}
		}
	}
}

// Wait blocks until all background write-throughs have finished. Used on
// shutdown so a freshly accepted order is not lost with the process.
func (s *SheetStore) Wait() {
	s.wg.Wait()
}

// productRows copies the product slice for handoff to a sync goroutine.
func productRows(snap *sheetdb.Snapshot) []model.Product {
	rows := make([]model.Product, len(snap.Products))
	copy(rows, snap.Products)
	return rows
}

func orderRows(snap *sheetdb.Snapshot) []model.Order {
	rows := make([]model.Order, len(snap.Orders))
	copy(rows, snap.Orders)
	return rows
}

func affiliateRows(snap *sheetdb.Snapshot) []model.Affiliate {
	rows := make([]model.Affiliate, len(snap.Affiliates))
	copy(rows, snap.Affiliates)
	return rows
}

func payoutRows(snap *sheetdb.Snapshot) []model.PayoutRequest {
	rows := make([]model.PayoutRequest, len(snap.Payouts))
	copy(rows, snap.Payouts)
	return rows
}

func customerRows(snap *sheetdb.Snapshot) []model.Customer {
	rows := make([]model.Customer, len(snap.Customers))
	copy(rows, snap.Customers)
	return rows
}
