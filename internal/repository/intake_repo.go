package repository

import (
	"context"
	"fmt"
	"net/url"

	"backoffice/internal/model"
)

// IntakeRecordRepository is backed by either the warehouse-records or the
// customer-records collection; the two share one wire shape.
type IntakeRecordRepository interface {
	List(ctx context.Context) ([]model.IntakeRecord, error)
	Create(ctx context.Context, record model.IntakeRecord) (*model.IntakeRecord, error)
	Delete(ctx context.Context, id string) error
}

type intakeRepository struct {
	client *Client
	path   string
}

func NewWarehouseRecordRepository(client *Client) IntakeRecordRepository {
	return &intakeRepository{client: client, path: "/warehouse-records"}
}

func NewCustomerRecordRepository(client *Client) IntakeRecordRepository {
	return &intakeRepository{client: client, path: "/customer-records"}
}

func (r *intakeRepository) List(ctx context.Context) ([]model.IntakeRecord, error) {
	var records []model.IntakeRecord
	if err := r.client.Get(ctx, r.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *intakeRepository) Create(ctx context.Context, record model.IntakeRecord) (*model.IntakeRecord, error) {
	var created model.IntakeRecord
	if err := r.client.Post(ctx, r.path, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *intakeRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("record id is required")
	}
	return r.client.Delete(ctx, r.path+"/"+url.PathEscape(id))
}
