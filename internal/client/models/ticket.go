package models

import "time"

// Ticket is a support request.
type Ticket struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`

	// Status is "open", "answered" or "closed".
	Status string `json:"status"`

	CreatedAt time.Time     `json:"createdAt"`
	Replies   []TicketReply `json:"replies,omitempty"`
}

// TicketReply is a single message in a ticket thread.
type TicketReply struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
