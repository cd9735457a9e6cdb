package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hostctl/internal/client/api"
	"github.com/dmitrijs2005/hostctl/internal/client/models"
)

// BillingService covers plans, orders and gift-code redemption. Pricing and
// stock checks are entirely backend-side; this layer only validates input
// shape before spending a round-trip.
type BillingService interface {
	Plans(ctx context.Context) ([]*models.Plan, error)
	Orders(ctx context.Context) ([]*models.Order, error)
	Order(ctx context.Context, planID string, months int) (*models.Order, error)
	Redeem(ctx context.Context, code string) (*models.Redemption, error)
}

type billingService struct {
	client api.Client
}

func NewBillingService(client api.Client) BillingService {
	return &billingService{client: client}
}

func (s *billingService) Plans(ctx context.Context) ([]*models.Plan, error) {
	return s.client.ListPlans(ctx)
}

func (s *billingService) Orders(ctx context.Context) ([]*models.Order, error) {
	return s.client.ListOrders(ctx)
}

func (s *billingService) Order(ctx context.Context, planID string, months int) (*models.Order, error) {
	if planID == "" {
		return nil, ErrEmptyID
	}
	if months < 1 {
		return nil, ErrInvalidDuration
	}
	return s.client.CreateOrder(ctx, planID, months)
}

func (s *billingService) Redeem(ctx context.Context, code string) (*models.Redemption, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	return s.client.RedeemGiftCode(ctx, code)
}
