package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hostctl/internal/client/api"
	"github.com/dmitrijs2005/hostctl/internal/client/models"
)

// Power actions accepted by the backend.
const (
	PowerStart   = "start"
	PowerStop    = "stop"
	PowerRestart = "restart"
)

// InstanceService exposes VPS instance operations to the CLI.
type InstanceService interface {
	List(ctx context.Context) ([]*models.Instance, error)
	Get(ctx context.Context, id string) (*models.Instance, error)
	Power(ctx context.Context, id, action string) error
}

type instanceService struct {
	client api.Client
}

func NewInstanceService(client api.Client) InstanceService {
	return &instanceService{client: client}
}

func (s *instanceService) List(ctx context.Context) ([]*models.Instance, error) {
	return s.client.ListInstances(ctx)
}

func (s *instanceService) Get(ctx context.Context, id string) (*models.Instance, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.client.GetInstance(ctx, id)
}

// Power validates the action locally before handing it to the backend; the
// backend remains the authority on whether the transition is allowed.
func (s *instanceService) Power(ctx context.Context, id, action string) error {
	if id == "" {
		return ErrEmptyID
	}
	switch action {
	case PowerStart, PowerStop, PowerRestart:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPowerAction, action)
	}
	return s.client.PowerAction(ctx, id, action)
}
