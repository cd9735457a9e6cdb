package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if u := a.session.CurrentUser(ctx); u != nil {
		s = u.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to hostctl (type 'help' for commands)")

	if !a.session.IsAuthenticated(ctx) {
		a.Login(ctx)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("hostctl %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.session.IsAuthenticated(ctx) {
				fmt.Println("Available commands: instances, instance <id>, power <id> <start|stop|restart>,")
				fmt.Println("  plans, orders, order <plan> <months>, redeem <code>, balance,")
				fmt.Println("  tickets, ticket <id>, newticket, reply <id>, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: login, exit")
			}

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.whoami(ctx)

		case "instances":
			a.listInstances(ctx)
		case "instance":
			if len(args) == 0 {
				fmt.Println("Usage: instance <id>")
				continue
			}
			a.showInstance(ctx, args[0])
		case "power":
			if len(args) < 2 {
				fmt.Println("Usage: power <id> <start|stop|restart>")
				continue
			}
			a.powerInstance(ctx, args[0], args[1])

		case "plans":
			a.listPlans(ctx)
		case "orders":
			a.listOrders(ctx)
		case "order":
			if len(args) < 2 {
				fmt.Println("Usage: order <plan> <months>")
				continue
			}
			a.createOrder(ctx, args[0], args[1])
		case "redeem":
			if len(args) == 0 {
				fmt.Println("Usage: redeem <code>")
				continue
			}
			a.redeemCode(ctx, args[0])
		case "balance":
			a.showBalance(ctx)

		case "tickets":
			a.listTickets(ctx)
		case "ticket":
			if len(args) == 0 {
				fmt.Println("Usage: ticket <id>")
				continue
			}
			a.showTicket(ctx, args[0])
		case "newticket":
			a.openTicket(ctx)
		case "reply":
			if len(args) == 0 {
				fmt.Println("Usage: reply <id>")
				continue
			}
			a.replyTicket(ctx, args[0])

		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
