package service

import (
	"context"
	"fmt"

	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/pkg/pagination"
)

// ExpenseService validates expense documents before they leave the process
// and keeps the snapshot coherent after writes. Validation happens here so a
// half-broken form never reaches the remote collection.
type ExpenseService interface {
	List(ctx context.Context, page, limit int) ([]model.Expense, int64, error)
	BulkCreate(ctx context.Context, input repository.BulkExpenseInput) ([]model.Expense, error)
	Update(ctx context.Context, id string, expense model.Expense) (*model.Expense, error)
	Delete(ctx context.Context, id string) error
}

type expenseService struct {
	store    Store
	expenses repository.ExpenseRepository
	notify   Broadcaster
}

func NewExpenseService(st Store, expenses repository.ExpenseRepository, notify Broadcaster) ExpenseService {
	return &expenseService{store: st, expenses: expenses, notify: notify}
}

func (s *expenseService) List(ctx context.Context, page, limit int) ([]model.Expense, int64, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(snap.Expenses))
	start, end := pagination.Slice(page, limit, len(snap.Expenses))
	return snap.Expenses[start:end], total, nil
}

func validateCosts(costs []model.CostLine) error {
	if len(costs) == 0 {
		return fmt.Errorf("at least one cost line is required")
	}
	for j, c := range costs {
		if c.CostType == "" {
			return fmt.Errorf("cost %d: costType is required", j+1)
		}
		if c.Amount.IsNegative() {
			return fmt.Errorf("cost %d: amount must not be negative", j+1)
		}
	}
	return nil
}

func validateExpense(e model.Expense) error {
	if e.InvoiceNumber == "" {
		return fmt.Errorf("invoiceNumber is required")
	}
	if e.ExpenseDate == "" {
		return fmt.Errorf("expenseDate is required")
	}
	if len(e.ContainerNumbers) == 0 {
		return fmt.Errorf("at least one container is required")
	}
	return validateCosts(e.Costs)
}

// BulkCreate books the same cost lines against every listed container. The
// remote collection resolves each container back to its invoice, so the form
// carries no invoice number.
func (s *expenseService) BulkCreate(ctx context.Context, input repository.BulkExpenseInput) ([]model.Expense, error) {
	if len(input.ContainerNumbers) == 0 {
		return nil, fmt.Errorf("at least one container is required")
	}
	if input.ExpenseDate == "" {
		return nil, fmt.Errorf("expenseDate is required")
	}
	if err := validateCosts(input.Costs); err != nil {
		return nil, err
	}

	created, err := s.expenses.BulkCreate(ctx, input)
	if err != nil {
		return nil, err
	}
	s.store.Invalidate()
	if s.notify != nil {
		s.notify.BroadcastEvent("expenses_created", map[string]interface{}{
			"containers": len(input.ContainerNumbers),
		})
	}
	return created, nil
}

func (s *expenseService) Update(ctx context.Context, id string, expense model.Expense) (*model.Expense, error) {
	if id == "" {
		return nil, fmt.Errorf("expense id is required")
	}
	if err := validateExpense(expense); err != nil {
		return nil, err
	}
	updated, err := s.expenses.Update(ctx, id, expense)
	if err != nil {
		return nil, err
	}
	s.store.Invalidate()
	if s.notify != nil {
		s.notify.BroadcastEvent("expense_updated", map[string]interface{}{"id": id})
	}
	return updated, nil
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return err
	}
	s.store.Invalidate()
	if s.notify != nil {
		s.notify.BroadcastEvent("expense_deleted", map[string]interface{}{"id": id})
	}
	return nil
}
