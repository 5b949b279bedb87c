package domain

import "time"

// Payment settlement states.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

type Order struct {
	ID            string
	SolutionID    string
	UserID        string
	OrderNumber   string
	PaymentMethod string
	PaymentStatus string
	AmountOnceOff float64
	AmountMonthly float64
	PaymentDate   *time.Time
	CreatedAt     time.Time
}

// OrderWithSolution is an order joined with a summary of its parent solution,
// as returned by the list and detail endpoints.
type OrderWithSolution struct {
	Order

	SolutionType  string
	SolutionName  string
	Address       string
	CustomerName  string
	Configuration *SolutionConfig // populated on detail reads only
}
