package dto

import "time"

// LineItemRequest is one row of the order form.
type LineItemRequest struct {
	Quantity    string `json:"qty"`
	Description string `json:"description"`
	UnitCost    string `json:"unit_cost"`
	TotalCost   string `json:"total_cost"`
}

// CreateOrderRequest describes the order submission payload. Amount arrives
// as text so a malformed number can be distinguished from a missing one.
type CreateOrderRequest struct {
	Supplier  string            `json:"supplier"`
	Items     []LineItemRequest `json:"items"`
	Amount    string            `json:"amount"`
	EmpNumber string            `json:"emp_number"`
	EmpName   string            `json:"emp_name"`
}

// DecisionRequest carries the acting party's employee details for an
// approve or decline.
type DecisionRequest struct {
	EmpNumber string `json:"emp_number"`
	EmpName   string `json:"emp_name"`
}

// DispatchRequest names the supplier address the order document goes to.
type DispatchRequest struct {
	SupplierEmail string `json:"supplier_email"`
}

// OrderResponse is the JSON projection of an order.
type OrderResponse struct {
	ID                 int64      `json:"id"`
	Supplier           string     `json:"supplier"`
	Description        string     `json:"description"`
	Amount             float64    `json:"amount"`
	Submitter          string     `json:"submitter"`
	SubmitterRole      string     `json:"submitter_role,omitempty"`
	Site               string     `json:"site"`
	CreatedAt          time.Time  `json:"created_at"`
	Status             string     `json:"status"`
	Approver           *string    `json:"approver,omitempty"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	SubmitterEmpNumber string     `json:"submitter_emp_number"`
	SubmitterEmpName   string     `json:"submitter_emp_name"`
	ApproverEmpNumber  *string    `json:"approver_emp_number,omitempty"`
	ApproverEmpName    *string    `json:"approver_emp_name,omitempty"`
}

// NotificationResponse reports the outcome of the notification step
// separately from the committed state change.
type NotificationResponse struct {
	State     string `json:"state"`
	Recipient string `json:"recipient,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// OrderResultResponse pairs a mutated order with its notification outcome.
type OrderResultResponse struct {
	Order        OrderResponse        `json:"order"`
	Notification NotificationResponse `json:"notification"`
}
