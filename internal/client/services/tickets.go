package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hostctl/internal/client/api"
	"github.com/dmitrijs2005/hostctl/internal/client/models"
)

// TicketService covers the support ticket workflow.
type TicketService interface {
	List(ctx context.Context) ([]*models.Ticket, error)
	Get(ctx context.Context, id string) (*models.Ticket, error)
	Open(ctx context.Context, subject, body string) (*models.Ticket, error)
	Reply(ctx context.Context, id, body string) (*models.TicketReply, error)
}

type ticketService struct {
	client api.Client
}

func NewTicketService(client api.Client) TicketService {
	return &ticketService{client: client}
}

func (s *ticketService) List(ctx context.Context) ([]*models.Ticket, error) {
	return s.client.ListTickets(ctx)
}

func (s *ticketService) Get(ctx context.Context, id string) (*models.Ticket, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.client.GetTicket(ctx, id)
}

func (s *ticketService) Open(ctx context.Context, subject, body string) (*models.Ticket, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrEmptyTicketFields
	}
	return s.client.CreateTicket(ctx, subject, body)
}

func (s *ticketService) Reply(ctx context.Context, id, body string) (*models.TicketReply, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyTicketFields
	}
	return s.client.ReplyTicket(ctx, id, body)
}
