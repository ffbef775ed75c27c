package service

import (
	"context"
	"fmt"

	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/pkg/pagination"
)

// ShipmentService fronts the shipment collection: paged reads from the
// snapshot, writes passed through to the remote service with the derived
// total computed here.
type ShipmentService interface {
	List(ctx context.Context, page, limit int) ([]model.Shipment, int64, error)
	BulkCreate(ctx context.Context, input repository.BulkShipmentInput) (*model.Shipment, error)
	Update(ctx context.Context, id string, shipment model.Shipment) (*model.Shipment, error)
	Delete(ctx context.Context, id string) error
	Containers(ctx context.Context) ([]model.Container, error)
	GenerateUID(ctx context.Context) (string, error)
}

type shipmentService struct {
	store      Store
	shipments  repository.ShipmentRepository
	containers repository.ContainerRepository
	notify     Broadcaster
}

func NewShipmentService(st Store, shipments repository.ShipmentRepository, containers repository.ContainerRepository, notify Broadcaster) ShipmentService {
	return &shipmentService{store: st, shipments: shipments, containers: containers, notify: notify}
}

func (s *shipmentService) List(ctx context.Context, page, limit int) ([]model.Shipment, int64, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(snap.Shipments))
	start, end := pagination.Slice(page, limit, len(snap.Shipments))
	return snap.Shipments[start:end], total, nil
}

func (s *shipmentService) BulkCreate(ctx context.Context, input repository.BulkShipmentInput) (*model.Shipment, error) {
	if input.InvoiceNumber == "" {
		return nil, fmt.Errorf("invoiceNumber is required")
	}
	if len(input.Containers) == 0 {
		return nil, fmt.Errorf("at least one container is required")
	}
	if input.ExchangeRate <= 0 {
		input.ExchangeRate = model.DefaultExchangeRate
	}

	var gross, net float64
	var bags int
	for i := range input.Containers {
		c := &input.Containers[i]
		if c.ContainerNumber == "" {
			return nil, fmt.Errorf("container %d: containerNumber is required", i+1)
		}
		if c.UniqueID == "" {
			uid, err := s.containers.GenerateUID(ctx)
			if err != nil {
				return nil, fmt.Errorf("generate container uid: %w", err)
			}
			c.UniqueID = uid
		}
		gross += c.GrossWeight
		net += c.NetWeight
		bags += c.NoOfBags
	}

	input.GrossWeight = gross
	input.NetWeight = net
	input.NoOfBags = bags
	input.TotalValueVnd = net * input.PricePerKgUsd * input.ExchangeRate
	input.ContainerNumber = nil
	for _, c := range input.Containers {
		input.ContainerNumber = append(input.ContainerNumber, c.ContainerNumber)
	}

	created, err := s.shipments.BulkCreate(ctx, input)
	if err != nil {
		return nil, err
	}
	s.store.Invalidate()
	if s.notify != nil {
		s.notify.BroadcastEvent("shipment_created", map[string]interface{}{
			"invoiceNumber": input.InvoiceNumber,
		})
	}
	return created, nil
}

func (s *shipmentService) Update(ctx context.Context, id string, shipment model.Shipment) (*model.Shipment, error) {
	if id == "" {
		return nil, fmt.Errorf("shipment id is required")
	}
	updated, err := s.shipments.Update(ctx, id, shipment)
	if err != nil {
		return nil, err
	}
	s.store.Invalidate()
	if s.notify != nil {
		s.notify.BroadcastEvent("shipment_updated", map[string]interface{}{"id": id})
	}
	return updated, nil
}

func (s *shipmentService) Delete(ctx context.Context, id string) error {
	if err := s.shipments.Delete(ctx, id); err != nil {
		return err
	}
	s.store.Invalidate()
	if s.notify != nil {
		s.notify.BroadcastEvent("shipment_deleted", map[string]interface{}{"id": id})
	}
	return nil
}

func (s *shipmentService) Containers(ctx context.Context) ([]model.Container, error) {
	return s.store.Containers(ctx)
}

func (s *shipmentService) GenerateUID(ctx context.Context) (string, error) {
	return s.containers.GenerateUID(ctx)
}
