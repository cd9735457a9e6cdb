package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/hostctl/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestTicketOpen_Validation(t *testing.T) {
	f := &fakeClient{}
	s := NewTicketService(f)
	ctx := context.Background()

	_, err := s.Open(ctx, "", "body")
	require.ErrorIs(t, err, ErrEmptyTicketFields)

	_, err = s.Open(ctx, "subject", "   ")
	require.ErrorIs(t, err, ErrEmptyTicketFields)

	require.Empty(t, f.LastTicketSubject)
}

func TestTicketOpen_Forwarded(t *testing.T) {
	f := &fakeClient{CreateTicketRet: &models.Ticket{ID: "t-1", Status: "open"}}
	s := NewTicketService(f)

	tk, err := s.Open(context.Background(), "instance down", "it stopped responding")
	require.NoError(t, err)
	require.Equal(t, "t-1", tk.ID)
	require.Equal(t, "instance down", f.LastTicketSubject)
}

func TestTicketReply_Validation(t *testing.T) {
	s := NewTicketService(&fakeClient{})
	ctx := context.Background()

	_, err := s.Reply(ctx, "", "body")
	require.ErrorIs(t, err, ErrEmptyID)

	_, err = s.Reply(ctx, "t-1", " ")
	require.ErrorIs(t, err, ErrEmptyTicketFields)
}
