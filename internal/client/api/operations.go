package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/hostctl/internal/client/models"
	"github.com/dmitrijs2005/hostctl/internal/client/tokens"
)

// Login authenticates with email and password. The returned credentials are
// not stored here; persisting them is the session facade's job.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var payload loginPayload
	if err := c.call(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &payload); err != nil {
		return nil, err
	}
	return &LoginResult{
		Tokens: tokens.Update{
			AccessToken:  payload.AccessToken,
			RefreshToken: payload.RefreshToken,
			ExpiresIn:    payload.ExpiresIn,
		},
		User: payload.User,
	}, nil
}

// Logout revokes the session server-side. Local cleanup is the caller's job.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me fetches the current account snapshot.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListInstances(ctx context.Context) ([]*models.Instance, error) {
	var list []*models.Instance
	if err := c.call(ctx, http.MethodGet, "/instances", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetInstance(ctx context.Context, id string) (*models.Instance, error) {
	var inst models.Instance
	if err := c.call(ctx, http.MethodGet, "/instances/"+url.PathEscape(id), nil, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// PowerAction requests a lifecycle change ("start", "stop", "restart").
// The backend owns validation and the actual container operation.
func (c *HTTPClient) PowerAction(ctx context.Context, id, action string) error {
	return c.call(ctx, http.MethodPost, "/instances/"+url.PathEscape(id)+"/power", powerRequest{Action: action}, nil)
}

func (c *HTTPClient) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	var list []*models.Plan
	if err := c.call(ctx, http.MethodGet, "/plans", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context) ([]*models.Order, error) {
	var list []*models.Order
	if err := c.call(ctx, http.MethodGet, "/orders", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, planID string, months int) (*models.Order, error) {
	var order models.Order
	if err := c.call(ctx, http.MethodPost, "/orders", orderRequest{PlanID: planID, Months: months}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) RedeemGiftCode(ctx context.Context, code string) (*models.Redemption, error) {
	var red models.Redemption
	if err := c.call(ctx, http.MethodPost, "/gift-codes/redeem", redeemRequest{Code: code}, &red); err != nil {
		return nil, err
	}
	return &red, nil
}

func (c *HTTPClient) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	var list []*models.Ticket
	if err := c.call(ctx, http.MethodGet, "/tickets", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	var tk models.Ticket
	if err := c.call(ctx, http.MethodGet, "/tickets/"+url.PathEscape(id), nil, &tk); err != nil {
		return nil, err
	}
	return &tk, nil
}

func (c *HTTPClient) CreateTicket(ctx context.Context, subject, body string) (*models.Ticket, error) {
	var tk models.Ticket
	if err := c.call(ctx, http.MethodPost, "/tickets", ticketRequest{Subject: subject, Body: body}, &tk); err != nil {
		return nil, err
	}
	return &tk, nil
}

func (c *HTTPClient) ReplyTicket(ctx context.Context, id, body string) (*models.TicketReply, error) {
	var reply models.TicketReply
	if err := c.call(ctx, http.MethodPost, "/tickets/"+url.PathEscape(id)+"/replies", replyRequest{Body: body}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Ping checks backend liveness. Unauthenticated.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/ping", nil, nil)
}
