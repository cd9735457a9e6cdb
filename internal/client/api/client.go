package api

import (
	"context"

	"github.com/dmitrijs2005/hostctl/internal/client/models"
	"github.com/dmitrijs2005/hostctl/internal/client/tokens"
)

// LoginResult carries everything a successful login returns: the credential
// update for the token store and the authenticated account snapshot.
type LoginResult struct {
	Tokens tokens.Update
	User   *models.User
}

// Client is the API contract the rest of the application depends on.
type Client interface {
	Close() error

	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)

	ListInstances(ctx context.Context) ([]*models.Instance, error)
	GetInstance(ctx context.Context, id string) (*models.Instance, error)
	PowerAction(ctx context.Context, id, action string) error

	ListPlans(ctx context.Context) ([]*models.Plan, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	CreateOrder(ctx context.Context, planID string, months int) (*models.Order, error)
	RedeemGiftCode(ctx context.Context, code string) (*models.Redemption, error)

	ListTickets(ctx context.Context) ([]*models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*models.Ticket, error)
	CreateTicket(ctx context.Context, subject, body string) (*models.Ticket, error)
	ReplyTicket(ctx context.Context, id, body string) (*models.TicketReply, error)

	Ping(ctx context.Context) error
}

var _ Client = (*HTTPClient)(nil)
