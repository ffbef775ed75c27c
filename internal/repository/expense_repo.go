package repository

import (
	"context"
	"fmt"
	"net/url"

	"backoffice/internal/model"
)

// BulkExpenseInput creates one expense document per listed container in a
// single request, sharing the date, remarks and cost lines.
type BulkExpenseInput struct {
	ContainerNumbers []string         `json:"containerNumbers"`
	ExpenseDate      string           `json:"expenseDate"`
	Remarks          string           `json:"remarks"`
	Costs            []model.CostLine `json:"costs"`
}

type ExpenseRepository interface {
	List(ctx context.Context) ([]model.Expense, error)
	BulkCreate(ctx context.Context, input BulkExpenseInput) ([]model.Expense, error)
	Update(ctx context.Context, id string, expense model.Expense) (*model.Expense, error)
	Delete(ctx context.Context, id string) error
}

type expenseRepository struct {
	client *Client
}

func NewExpenseRepository(client *Client) ExpenseRepository {
	return &expenseRepository{client: client}
}

func (r *expenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := r.client.Get(ctx, "/expenses", &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) BulkCreate(ctx context.Context, input BulkExpenseInput) ([]model.Expense, error) {
	var created []model.Expense
	if err := r.client.Post(ctx, "/expenses/bulk-create", input, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *expenseRepository) Update(ctx context.Context, id string, expense model.Expense) (*model.Expense, error) {
	var updated model.Expense
	if err := r.client.Put(ctx, "/expenses/"+url.PathEscape(id), expense, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("expense id is required")
	}
	return r.client.Delete(ctx, "/expenses/"+url.PathEscape(id))
}
