package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) listTickets(ctx context.Context) {
	list, err := a.tickets.List(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No tickets")
		return
	}

	fmt.Printf("%-12s %-10s %-12s %s\n", "ID", "STATUS", "CREATED", "SUBJECT")
	for _, tk := range list {
		fmt.Printf("%-12s %-10s %-12s %s\n",
			tk.ID, tk.Status, tk.CreatedAt.Format("2006-01-02"), tk.Subject)
	}
}

func (a *App) showTicket(ctx context.Context, id string) {
	tk, err := a.tickets.Get(ctx, id)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("[%s] %s (%s)\n", tk.ID, tk.Subject, tk.Status)
	for _, r := range tk.Replies {
		fmt.Printf("--- %s at %s\n%s\n", r.Author, r.CreatedAt.Format("2006-01-02 15:04"), r.Body)
	}
}

func (a *App) openTicket(ctx context.Context) {
	subject, err := GetSimpleText(a.reader, "Subject", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	body, err := GetMultiline(a.reader, "Describe the problem", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	tk, err := a.tickets.Open(ctx, subject, body)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("Ticket %s created\n", tk.ID)
}

func (a *App) replyTicket(ctx context.Context, id string) {
	body, err := GetMultiline(a.reader, "Reply", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if _, err := a.tickets.Reply(ctx, id, body); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("Reply sent")
}
