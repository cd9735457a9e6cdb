package models

import "time"

// Order is a purchase record for a plan.
type Order struct {
	ID string `json:"id"`

	// PlanID references the ordered plan.
	PlanID string `json:"planId"`

	// Months is the purchased duration.
	Months int `json:"months"`

	// Amount is the charged total in cents.
	Amount int64 `json:"amount"`

	// Status is "pending", "paid", "provisioned" or "cancelled".
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// Redemption is the result of redeeming a gift/promo code.
type Redemption struct {
	// Amount credited to the balance, in cents.
	Amount int64 `json:"amount"`

	// Balance is the new account balance after the credit.
	Balance int64 `json:"balance"`
}
