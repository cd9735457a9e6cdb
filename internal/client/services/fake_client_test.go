package services

import (
	"context"

	"github.com/dmitrijs2005/hostctl/internal/client/api"
	"github.com/dmitrijs2005/hostctl/internal/client/models"
)

// fakeClient implements api.Client for service unit tests: preset outputs,
// captured inputs.
type fakeClient struct {
	CloseErr error

	LoginRet *api.LoginResult
	LoginErr error

	LogoutErr error

	MeRet *models.User
	MeErr error

	ListInstancesRet []*models.Instance
	ListInstancesErr error

	GetInstanceRet *models.Instance
	GetInstanceErr error

	PowerActionErr error

	ListPlansRet []*models.Plan
	ListPlansErr error

	ListOrdersRet []*models.Order
	ListOrdersErr error

	CreateOrderRet *models.Order
	CreateOrderErr error

	RedeemRet *models.Redemption
	RedeemErr error

	ListTicketsRet []*models.Ticket
	ListTicketsErr error

	GetTicketRet *models.Ticket
	GetTicketErr error

	CreateTicketRet *models.Ticket
	CreateTicketErr error

	ReplyTicketRet *models.TicketReply
	ReplyTicketErr error

	PingErr error

	// captured arguments
	LastLoginEmail    string
	LastLoginPassword string
	LastInstanceID    string
	LastPowerAction   string
	LastOrderPlanID   string
	LastOrderMonths   int
	LastRedeemCode    string
	LastTicketSubject string
	LastTicketBody    string
	LastReplyID       string
	LastReplyBody     string

	LogoutCalls int
	MeCalls     int
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.MeCalls++
	return f.MeRet, f.MeErr
}

func (f *fakeClient) ListInstances(ctx context.Context) ([]*models.Instance, error) {
	return f.ListInstancesRet, f.ListInstancesErr
}

func (f *fakeClient) GetInstance(ctx context.Context, id string) (*models.Instance, error) {
	f.LastInstanceID = id
	return f.GetInstanceRet, f.GetInstanceErr
}

func (f *fakeClient) PowerAction(ctx context.Context, id, action string) error {
	f.LastInstanceID = id
	f.LastPowerAction = action
	return f.PowerActionErr
}

func (f *fakeClient) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	return f.ListPlansRet, f.ListPlansErr
}

func (f *fakeClient) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return f.ListOrdersRet, f.ListOrdersErr
}

func (f *fakeClient) CreateOrder(ctx context.Context, planID string, months int) (*models.Order, error) {
	f.LastOrderPlanID = planID
	f.LastOrderMonths = months
	return f.CreateOrderRet, f.CreateOrderErr
}

func (f *fakeClient) RedeemGiftCode(ctx context.Context, code string) (*models.Redemption, error) {
	f.LastRedeemCode = code
	return f.RedeemRet, f.RedeemErr
}

func (f *fakeClient) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	return f.ListTicketsRet, f.ListTicketsErr
}

func (f *fakeClient) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	f.LastReplyID = id
	return f.GetTicketRet, f.GetTicketErr
}

func (f *fakeClient) CreateTicket(ctx context.Context, subject, body string) (*models.Ticket, error) {
	f.LastTicketSubject = subject
	f.LastTicketBody = body
	return f.CreateTicketRet, f.CreateTicketErr
}

func (f *fakeClient) ReplyTicket(ctx context.Context, id, body string) (*models.TicketReply, error) {
	f.LastReplyID = id
	f.LastReplyBody = body
	return f.ReplyTicketRet, f.ReplyTicketErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

var _ api.Client = (*fakeClient)(nil)
