package model

import "time"

// OrderStatus describes the approval lifecycle. Pending is the only
// non-terminal state; approved and declined admit no further transitions.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusDeclined OrderStatus = "declined"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusApproved || s == OrderStatusDeclined
}

// Order describes a purchase order raised by a site user. Site is copied
// from the submitter's site at creation and never recomputed.
type Order struct {
	ID                 int64
	Supplier           string
	Description        string
	Amount             float64
	Submitter          string
	Site               string
	CreatedAt          time.Time
	Status             OrderStatus
	Approver           *string
	ApprovedAt         *time.Time
	SubmitterEmpNumber string
	SubmitterEmpName   string
	ApproverEmpNumber  *string
	ApproverEmpName    *string
}

// OrderView is an order annotated with the submitter's resolved role label
// for listing. SubmitterRole degrades to "Unknown" when the submitter
// account no longer resolves.
type OrderView struct {
	Order
	SubmitterRole string
}

// LineItem is one row of the order form. All fields arrive as entered;
// rows with an empty description are dropped during assembly.
type LineItem struct {
	Quantity    string
	Description string
	UnitCost    string
	TotalCost   string
}

// Decision carries the fields written atomically when a pending order is
// approved or declined. Approver and DecidedAt are recorded for declines as
// well, reusing the same columns.
type Decision struct {
	Status    OrderStatus
	Approver  string
	EmpNumber string
	EmpName   string
	DecidedAt time.Time
}
