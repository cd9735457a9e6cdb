package cli

import (
	"context"
	"fmt"
	"strconv"
)

func formatMoney(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

func (a *App) listPlans(ctx context.Context) {
	plans, err := a.billing.Plans(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("%-12s %-16s %-8s %-22s %-8s %s\n", "ID", "NAME", "REGION", "SPECS", "STOCK", "PRICE/MO")
	for _, p := range plans {
		specs := fmt.Sprintf("%dc/%dMB/%dGB", p.CPUCores, p.MemoryMB, p.DiskGB)
		fmt.Printf("%-12s %-16s %-8s %-22s %-8d %s\n",
			p.ID, p.Name, p.Region, specs, p.Stock, formatMoney(p.MonthlyPrice))
	}
}

func (a *App) listOrders(ctx context.Context) {
	orders, err := a.billing.Orders(ctx)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Println("No orders")
		return
	}

	fmt.Printf("%-12s %-12s %-8s %-12s %s\n", "ID", "PLAN", "MONTHS", "STATUS", "AMOUNT")
	for _, o := range orders {
		fmt.Printf("%-12s %-12s %-8d %-12s %s\n",
			o.ID, o.PlanID, o.Months, o.Status, formatMoney(o.Amount))
	}
}

func (a *App) createOrder(ctx context.Context, planID, monthsArg string) {
	months, err := strconv.Atoi(monthsArg)
	if err != nil {
		fmt.Println("Usage: order <plan> <months>")
		return
	}

	order, err := a.billing.Order(ctx, planID, months)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("Order %s created (%s), total %s\n", order.ID, order.Status, formatMoney(order.Amount))
}

func (a *App) redeemCode(ctx context.Context, code string) {
	red, err := a.billing.Redeem(ctx, code)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("Credited %s, new balance %s\n", formatMoney(red.Amount), formatMoney(red.Balance))
}

func (a *App) showBalance(ctx context.Context) {
	user, err := a.session.RefreshUser(ctx)
	if err != nil {
		user = a.session.CurrentUser(ctx)
		if user == nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}
	fmt.Printf("Balance: %s\n", formatMoney(user.Balance))
}
