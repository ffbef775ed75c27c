package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"backoffice/internal/model"
	"backoffice/internal/repository"
)

func bulkExpenseInput() repository.BulkExpenseInput {
	return repository.BulkExpenseInput{
		ContainerNumbers: []string{"C1", "C2"},
		ExpenseDate:      "2026-01-10",
		Remarks:          "January port costs",
		Costs:            []model.CostLine{{CostType: "Local charges", Amount: amount(1_000_000)}},
	}
}

func TestBulkCreateExpensesValidatesBeforeSending(t *testing.T) {
	repo := &fakeExpenseRepo{}
	svc := NewExpenseService(&fakeStore{}, repo, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*repository.BulkExpenseInput)
	}{
		{"no containers", func(in *repository.BulkExpenseInput) { in.ContainerNumbers = nil }},
		{"missing date", func(in *repository.BulkExpenseInput) { in.ExpenseDate = "" }},
		{"no cost lines", func(in *repository.BulkExpenseInput) { in.Costs = nil }},
		{"cost without type", func(in *repository.BulkExpenseInput) { in.Costs[0].CostType = "" }},
		{"negative amount", func(in *repository.BulkExpenseInput) {
			in.Costs[0].Amount = model.NewAmount(decimal.NewFromInt(-1))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := bulkExpenseInput()
			tc.mutate(&in)
			if _, err := svc.BulkCreate(ctx, in); err == nil {
				t.Error("expected validation error")
			}
			if repo.lastBulk != nil {
				t.Error("invalid batch must not reach the remote service")
			}
		})
	}
}

func TestBulkCreateExpensesSendsFlatBatch(t *testing.T) {
	st := &fakeStore{}
	repo := &fakeExpenseRepo{}
	svc := NewExpenseService(st, repo, nil)

	created, err := svc.BulkCreate(context.Background(), bulkExpenseInput())
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 2 {
		t.Fatalf("got %d created, want one per container", len(created))
	}
	sent := repo.lastBulk
	if sent == nil {
		t.Fatal("nothing sent to the remote service")
	}
	// The remote endpoint expects the containers, date, remarks and cost
	// lines at the top level of the request body.
	if len(sent.ContainerNumbers) != 2 || sent.ExpenseDate != "2026-01-10" || sent.Remarks != "January port costs" {
		t.Errorf("sent payload: got %+v", sent)
	}
	if len(sent.Costs) != 1 || sent.Costs[0].CostType != "Local charges" {
		t.Errorf("sent costs: got %+v", sent.Costs)
	}
	if st.invalidated != 1 {
		t.Errorf("invalidations: got %d, want 1", st.invalidated)
	}
}

func TestExpenseWritesBroadcastEvents(t *testing.T) {
	notify := &fakeBroadcaster{}
	svc := NewExpenseService(&fakeStore{}, &fakeExpenseRepo{}, notify)
	ctx := context.Background()

	if _, err := svc.BulkCreate(ctx, bulkExpenseInput()); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "e1"); err != nil {
		t.Fatal(err)
	}

	got := notify.eventNames()
	if len(got) != 2 || got[0] != "expenses_created" || got[1] != "expense_deleted" {
		t.Errorf("events: got %v", got)
	}
}
