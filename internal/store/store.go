package store

import (
	"context"
	"log"
	"sync"
	"time"

	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// Snapshot is one consistent read of the four remote collections. Slices are
// copies; callers may not mutate shared state through them but may re-slice
// freely.
type Snapshot struct {
	Shipments        []model.Shipment
	WarehouseRecords []model.IntakeRecord
	CustomerRecords  []model.IntakeRecord
	Expenses         []model.Expense
	FetchedAt        time.Time
}

// clone copies the slice headers so a caller appending to a returned snapshot
// cannot grow into the cached backing arrays.
func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Shipments:        append([]model.Shipment(nil), s.Shipments...),
		WarehouseRecords: append([]model.IntakeRecord(nil), s.WarehouseRecords...),
		CustomerRecords:  append([]model.IntakeRecord(nil), s.CustomerRecords...),
		Expenses:         append([]model.Expense(nil), s.Expenses...),
		FetchedAt:        s.FetchedAt,
	}
}

// Store caches the remote collections in memory so every dashboard read does
// not fan out to the upstream service. Reads go through Snapshot, which
// refreshes lazily after Invalidate. Container details are cached separately
// because only the intake flow needs them.
type Store struct {
	shipments  repository.ShipmentRepository
	warehouse  repository.IntakeRecordRepository
	customer   repository.IntakeRecordRepository
	expenses   repository.ExpenseRepository
	containers repository.ContainerRepository

	mu         sync.RWMutex
	snapshot   Snapshot
	stale      bool
	containerz []model.Container
	haveConts  bool
}

func New(
	shipments repository.ShipmentRepository,
	warehouse repository.IntakeRecordRepository,
	customer repository.IntakeRecordRepository,
	expenses repository.ExpenseRepository,
	containers repository.ContainerRepository,
) *Store {
	return &Store{
		shipments:  shipments,
		warehouse:  warehouse,
		customer:   customer,
		expenses:   expenses,
		containers: containers,
		stale:      true,
	}
}

// Refresh fetches the four collections concurrently and swaps the snapshot.
// A failure of the customer-records fetch is logged and the collection left
// empty; the other three are load bearing and fail the refresh.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		ships    []model.Shipment
		whRecs   []model.IntakeRecord
		custRecs []model.IntakeRecord
		exps     []model.Expense

		shipErr, whErr, custErr, expErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		ships, shipErr = s.shipments.List(ctx)
	}()
	go func() {
		defer wg.Done()
		whRecs, whErr = s.warehouse.List(ctx)
	}()
	go func() {
		defer wg.Done()
		custRecs, custErr = s.customer.List(ctx)
	}()
	go func() {
		defer wg.Done()
		exps, expErr = s.expenses.List(ctx)
	}()
	wg.Wait()

	for _, err := range []error{shipErr, whErr, expErr} {
		if err != nil {
			return err
		}
	}
	if custErr != nil {
		log.Printf("store: customer records fetch failed, keeping empty: %v", custErr)
		custRecs = nil
	}

	s.mu.Lock()
	s.snapshot = Snapshot{
		Shipments:        ships,
		WarehouseRecords: whRecs,
		CustomerRecords:  custRecs,
		Expenses:         exps,
		FetchedAt:        time.Now(),
	}
	s.stale = false
	s.mu.Unlock()
	return nil
}

// Snapshot returns the cached collections, refreshing first if a write has
// invalidated them or nothing has been loaded yet.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.RLock()
	stale := s.stale
	snap := s.snapshot
	s.mu.RUnlock()

	if !stale {
		return snap.clone(), nil
	}
	if err := s.Refresh(ctx); err != nil {
		return Snapshot{}, err
	}

	s.mu.RLock()
	snap = s.snapshot
	s.mu.RUnlock()
	return snap.clone(), nil
}

// Containers returns the container detail collection, fetching it on first
// use and after Invalidate.
func (s *Store) Containers(ctx context.Context) ([]model.Container, error) {
	s.mu.RLock()
	if s.haveConts {
		conts := append([]model.Container(nil), s.containerz...)
		s.mu.RUnlock()
		return conts, nil
	}
	s.mu.RUnlock()

	conts, err := s.containers.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.containerz = conts
	s.haveConts = true
	s.mu.Unlock()
	return append([]model.Container(nil), conts...), nil
}

// Invalidate marks everything stale. The next Snapshot or Containers call
// refetches.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.haveConts = false
	s.mu.Unlock()
}
