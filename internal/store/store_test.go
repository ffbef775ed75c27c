package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"backoffice/internal/model"
	"backoffice/internal/repository"
)

type fakeShipments struct {
	calls atomic.Int32
	err   error
}

func (f *fakeShipments) List(ctx context.Context) ([]model.Shipment, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []model.Shipment{{ID: "s1", InvoiceNumber: "INV-001"}}, nil
}

func (f *fakeShipments) BulkCreate(ctx context.Context, input repository.BulkShipmentInput) (*model.Shipment, error) {
	return nil, nil
}

func (f *fakeShipments) Update(ctx context.Context, id string, s model.Shipment) (*model.Shipment, error) {
	return nil, nil
}

func (f *fakeShipments) Delete(ctx context.Context, id string) error { return nil }

type fakeRecords struct {
	calls atomic.Int32
	err   error
	out   []model.IntakeRecord
}

func (f *fakeRecords) List(ctx context.Context) ([]model.IntakeRecord, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeRecords) Create(ctx context.Context, r model.IntakeRecord) (*model.IntakeRecord, error) {
	return &r, nil
}

func (f *fakeRecords) Delete(ctx context.Context, id string) error { return nil }

type fakeExpenses struct {
	calls atomic.Int32
	err   error
}

func (f *fakeExpenses) List(ctx context.Context) ([]model.Expense, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []model.Expense{{ID: "e1"}}, nil
}

func (f *fakeExpenses) BulkCreate(ctx context.Context, input repository.BulkExpenseInput) ([]model.Expense, error) {
	return nil, nil
}

func (f *fakeExpenses) Update(ctx context.Context, id string, e model.Expense) (*model.Expense, error) {
	return nil, nil
}

func (f *fakeExpenses) Delete(ctx context.Context, id string) error { return nil }

type fakeContainers struct {
	calls atomic.Int32
}

func (f *fakeContainers) List(ctx context.Context) ([]model.Container, error) {
	f.calls.Add(1)
	return []model.Container{{UniqueID: "uid-1", ContainerNumber: "C1"}}, nil
}

func (f *fakeContainers) GenerateUID(ctx context.Context) (string, error) { return "uid-2", nil }

func newTestStore() (*Store, *fakeShipments, *fakeRecords, *fakeRecords, *fakeExpenses, *fakeContainers) {
	ships := &fakeShipments{}
	wh := &fakeRecords{out: []model.IntakeRecord{{ID: "w1"}}}
	cust := &fakeRecords{out: []model.IntakeRecord{{ID: "c1"}}}
	exps := &fakeExpenses{}
	conts := &fakeContainers{}
	return New(ships, wh, cust, exps, conts), ships, wh, cust, exps, conts
}

func TestSnapshotLazyLoadsOnce(t *testing.T) {
	st, ships, _, _, exps, _ := newTestStore()
	ctx := context.Background()

	snap, err := st.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Shipments) != 1 || len(snap.Expenses) != 1 {
		t.Fatalf("snapshot incomplete: %+v", snap)
	}
	if snap.FetchedAt.IsZero() {
		t.Error("FetchedAt must be set")
	}

	if _, err := st.Snapshot(ctx); err != nil {
		t.Fatal(err)
	}
	if got := ships.calls.Load(); got != 1 {
		t.Errorf("shipments fetched %d times, want 1", got)
	}
	if got := exps.calls.Load(); got != 1 {
		t.Errorf("expenses fetched %d times, want 1", got)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	st, ships, _, _, _, conts := newTestStore()
	ctx := context.Background()

	if _, err := st.Snapshot(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Containers(ctx); err != nil {
		t.Fatal(err)
	}
	st.Invalidate()
	if _, err := st.Snapshot(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Containers(ctx); err != nil {
		t.Fatal(err)
	}

	if got := ships.calls.Load(); got != 2 {
		t.Errorf("shipments fetched %d times after invalidate, want 2", got)
	}
	if got := conts.calls.Load(); got != 2 {
		t.Errorf("containers fetched %d times after invalidate, want 2", got)
	}
}

func TestRefreshToleratesCustomerRecordFailure(t *testing.T) {
	st, _, _, cust, _, _ := newTestStore()
	cust.err = fmt.Errorf("boom")

	snap, err := st.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("customer failure must not fail the refresh: %v", err)
	}
	if len(snap.CustomerRecords) != 0 {
		t.Errorf("customer records should stay empty, got %d", len(snap.CustomerRecords))
	}
	if len(snap.Shipments) != 1 || len(snap.WarehouseRecords) != 1 {
		t.Errorf("other collections must still load: %+v", snap)
	}
}

func TestRefreshFailsOnLoadBearingCollections(t *testing.T) {
	st, ships, _, _, _, _ := newTestStore()
	ships.err = fmt.Errorf("upstream 500")

	if _, err := st.Snapshot(context.Background()); err == nil {
		t.Fatal("shipment fetch failure must fail the snapshot")
	}
}

func TestSnapshotIsolatedFromCallerMutation(t *testing.T) {
	st, _, _, _, _, _ := newTestStore()
	ctx := context.Background()

	snap, err := st.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	snap.Shipments[0].InvoiceNumber = "MUTATED"
	snap.WarehouseRecords[0].ID = "MUTATED"

	again, err := st.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if again.Shipments[0].InvoiceNumber != "INV-001" {
		t.Errorf("cached shipment changed by caller: got %s", again.Shipments[0].InvoiceNumber)
	}
	if again.WarehouseRecords[0].ID != "w1" {
		t.Errorf("cached record changed by caller: got %s", again.WarehouseRecords[0].ID)
	}

	conts, err := st.Containers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	conts[0].ContainerNumber = "MUTATED"
	conts, _ = st.Containers(ctx)
	if conts[0].ContainerNumber != "C1" {
		t.Errorf("cached container changed by caller: got %s", conts[0].ContainerNumber)
	}
}

func TestContainersCachedAcrossCalls(t *testing.T) {
	st, _, _, _, _, conts := newTestStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := st.Containers(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if got := conts.calls.Load(); got != 1 {
		t.Errorf("containers fetched %d times, want 1", got)
	}
}
