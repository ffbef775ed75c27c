package repository

import (
	"context"

	"backoffice/internal/model"
)

type ContainerRepository interface {
	List(ctx context.Context) ([]model.Container, error)
	GenerateUID(ctx context.Context) (string, error)
}

type containerRepository struct {
	client *Client
}

func NewContainerRepository(client *Client) ContainerRepository {
	return &containerRepository{client: client}
}

func (r *containerRepository) List(ctx context.Context) ([]model.Container, error) {
	var containers []model.Container
	if err := r.client.Get(ctx, "/containers", &containers); err != nil {
		return nil, err
	}
	return containers, nil
}

func (r *containerRepository) GenerateUID(ctx context.Context) (string, error) {
	var resp struct {
		UID string `json:"uid"`
	}
	if err := r.client.Get(ctx, "/generate-uid", &resp); err != nil {
		return "", err
	}
	return resp.UID, nil
}
