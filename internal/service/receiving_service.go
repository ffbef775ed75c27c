package service

import (
	"context"
	"fmt"

	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/pkg/pagination"
)

// ReceivingService handles the warehouse and customer record collections
// outside the intake session: listing, one-off creates, deletes.
type ReceivingService interface {
	WarehouseRecords(ctx context.Context, page, limit int, rng DateRange) ([]model.IntakeRecord, int64, error)
	CustomerRecords(ctx context.Context, page, limit int, rng DateRange) ([]model.IntakeRecord, int64, error)
	CreateWarehouseRecord(ctx context.Context, record model.IntakeRecord) (*model.IntakeRecord, error)
	DeleteWarehouseRecord(ctx context.Context, id string) error
	DeleteCustomerRecord(ctx context.Context, id string) error
}

type receivingService struct {
	store     Store
	warehouse repository.IntakeRecordRepository
	customer  repository.IntakeRecordRepository
}

func NewReceivingService(st Store, warehouse, customer repository.IntakeRecordRepository) ReceivingService {
	return &receivingService{store: st, warehouse: warehouse, customer: customer}
}

func pageRecords(records []model.IntakeRecord, page, limit int, rng DateRange) ([]model.IntakeRecord, int64) {
	filtered := make([]model.IntakeRecord, 0, len(records))
	for _, r := range records {
		if rng.Contains(r.ReceivedDate) {
			filtered = append(filtered, r)
		}
	}
	start, end := pagination.Slice(page, limit, len(filtered))
	return filtered[start:end], int64(len(filtered))
}

func (s *receivingService) WarehouseRecords(ctx context.Context, page, limit int, rng DateRange) ([]model.IntakeRecord, int64, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	records, total := pageRecords(snap.WarehouseRecords, page, limit, rng)
	return records, total, nil
}

func (s *receivingService) CustomerRecords(ctx context.Context, page, limit int, rng DateRange) ([]model.IntakeRecord, int64, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	records, total := pageRecords(snap.CustomerRecords, page, limit, rng)
	return records, total, nil
}

func (s *receivingService) CreateWarehouseRecord(ctx context.Context, record model.IntakeRecord) (*model.IntakeRecord, error) {
	if record.ContainerNumber == "" {
		return nil, fmt.Errorf("containerNumber is required")
	}
	if record.ReceivedDate == "" {
		return nil, fmt.Errorf("receivedDate is required")
	}
	if record.WarehouseName == "" {
		record.WarehouseName = model.DefaultWarehouseName
	}
	created, err := s.warehouse.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.store.Invalidate()
	return created, nil
}

func (s *receivingService) DeleteWarehouseRecord(ctx context.Context, id string) error {
	if err := s.warehouse.Delete(ctx, id); err != nil {
		return err
	}
	s.store.Invalidate()
	return nil
}

func (s *receivingService) DeleteCustomerRecord(ctx context.Context, id string) error {
	if err := s.customer.Delete(ctx, id); err != nil {
		return err
	}
	s.store.Invalidate()
	return nil
}
