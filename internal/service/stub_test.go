package service

import (
	"context"
	"fmt"
	"sync"

	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/store"
)

// fakeStore serves fixed collections and counts cache invalidations.
type fakeStore struct {
	snapshot     store.Snapshot
	containers   []model.Container
	snapshotErr  error
	invalidated  int
	refreshCalls int
}

func (f *fakeStore) Snapshot(ctx context.Context) (store.Snapshot, error) {
	if f.snapshotErr != nil {
		return store.Snapshot{}, f.snapshotErr
	}
	return f.snapshot, nil
}

func (f *fakeStore) Containers(ctx context.Context) ([]model.Container, error) {
	return f.containers, nil
}

func (f *fakeStore) Refresh(ctx context.Context) error {
	f.refreshCalls++
	return nil
}

func (f *fakeStore) Invalidate() { f.invalidated++ }

// fakeBroadcaster collects emitted event names.
type fakeBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeBroadcaster) BroadcastEvent(event string, data map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeBroadcaster) eventNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

// fakeIntakeRepo records creates and can fail on chosen container numbers.
type fakeIntakeRepo struct {
	mu      sync.Mutex
	created []model.IntakeRecord
	failOn  map[string]bool
}

func (f *fakeIntakeRepo) List(ctx context.Context) ([]model.IntakeRecord, error) {
	return nil, nil
}

func (f *fakeIntakeRepo) Create(ctx context.Context, record model.IntakeRecord) (*model.IntakeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[record.ContainerNumber] {
		return nil, fmt.Errorf("create %s rejected", record.ContainerNumber)
	}
	f.created = append(f.created, record)
	return &record, nil
}

func (f *fakeIntakeRepo) Delete(ctx context.Context, id string) error { return nil }

var _ repository.IntakeRecordRepository = (*fakeIntakeRepo)(nil)

// fakeShipmentRepo echoes creates and updates back to the caller.
type fakeShipmentRepo struct {
	lastBulk *repository.BulkShipmentInput
	deleted  []string
}

func (f *fakeShipmentRepo) List(ctx context.Context) ([]model.Shipment, error) { return nil, nil }

func (f *fakeShipmentRepo) BulkCreate(ctx context.Context, input repository.BulkShipmentInput) (*model.Shipment, error) {
	f.lastBulk = &input
	created := input.Shipment
	created.ID = "created-1"
	return &created, nil
}

func (f *fakeShipmentRepo) Update(ctx context.Context, id string, s model.Shipment) (*model.Shipment, error) {
	s.ID = id
	return &s, nil
}

func (f *fakeShipmentRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeContainerRepo struct {
	next int
}

func (f *fakeContainerRepo) List(ctx context.Context) ([]model.Container, error) { return nil, nil }

func (f *fakeContainerRepo) GenerateUID(ctx context.Context) (string, error) {
	f.next++
	return fmt.Sprintf("uid-%d", f.next), nil
}

// fakeExpenseRepo echoes bulk creates and records deletes.
type fakeExpenseRepo struct {
	lastBulk *repository.BulkExpenseInput
	err      error
}

func (f *fakeExpenseRepo) List(ctx context.Context) ([]model.Expense, error) { return nil, nil }

func (f *fakeExpenseRepo) BulkCreate(ctx context.Context, input repository.BulkExpenseInput) ([]model.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBulk = &input
	out := make([]model.Expense, 0, len(input.ContainerNumbers))
	for _, cn := range input.ContainerNumbers {
		out = append(out, model.Expense{
			ContainerNumbers: []string{cn},
			ExpenseDate:      input.ExpenseDate,
			Remarks:          input.Remarks,
			Costs:            input.Costs,
		})
	}
	return out, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, id string, e model.Expense) (*model.Expense, error) {
	e.ID = id
	return &e, nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeIntakeRepo) createdNumbers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.created))
	for _, r := range f.created {
		out = append(out, r.ContainerNumber)
	}
	return out
}
