package repository

import (
	"context"
	"fmt"
	"net/url"

	"backoffice/internal/model"
)

// BulkShipmentInput is the creation payload: one shipment document plus the
// container detail records created in the same request.
type BulkShipmentInput struct {
	model.Shipment
	Containers []model.Container `json:"containers"`
}

type ShipmentRepository interface {
	List(ctx context.Context) ([]model.Shipment, error)
	BulkCreate(ctx context.Context, input BulkShipmentInput) (*model.Shipment, error)
	Update(ctx context.Context, id string, shipment model.Shipment) (*model.Shipment, error)
	Delete(ctx context.Context, id string) error
}

type shipmentRepository struct {
	client *Client
}

func NewShipmentRepository(client *Client) ShipmentRepository {
	return &shipmentRepository{client: client}
}

func (r *shipmentRepository) List(ctx context.Context) ([]model.Shipment, error) {
	var shipments []model.Shipment
	if err := r.client.Get(ctx, "/shipments", &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *shipmentRepository) BulkCreate(ctx context.Context, input BulkShipmentInput) (*model.Shipment, error) {
	var created model.Shipment
	if err := r.client.Post(ctx, "/shipments/bulk", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *shipmentRepository) Update(ctx context.Context, id string, shipment model.Shipment) (*model.Shipment, error) {
	var updated model.Shipment
	if err := r.client.Put(ctx, "/shipments/"+url.PathEscape(id), shipment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *shipmentRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("shipment id is required")
	}
	return r.client.Delete(ctx, "/shipments/"+url.PathEscape(id))
}
