package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/treadworks/orderflow/internal/domain/model"
)

func sampleOrder() *model.Order {
	num := "E200"
	name := "Mandla Mokoena"
	at := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)
	return &model.Order{
		ID:                 12,
		Supplier:           "Stationery Direct",
		Description:        "QTY: 2, Description: Copier paper A4, Unit Cost Excl.: 45.00, Total Unit Cost Excl.: 90.00",
		Amount:             115.50,
		Submitter:          "admin@twt.to",
		Site:               "TWT Sandton",
		CreatedAt:          at,
		Status:             model.OrderStatusApproved,
		SubmitterEmpNumber: "E100",
		SubmitterEmpName:   "Alice Adams",
		ApproverEmpNumber:  &num,
		ApproverEmpName:    &name,
	}
}

func TestAwaitingApproval(t *testing.T) {
	submitter := &model.User{Username: "admin@twt.to", Email: "admin@twt.to", Role: model.RoleAdmin}
	counterpart := &model.User{Username: "manager@twt.to", Email: "manager@twt.to", Role: model.RoleManager}

	msg := AwaitingApproval(sampleOrder(), submitter, counterpart)
	if msg.To != "manager@twt.to" {
		t.Fatalf("message must address the counterpart, got %q", msg.To)
	}
	if msg.Subject != "New Order Awaiting Approval" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	for _, want := range []string{"Dear Manager", "Order ID: 12", "TWT Sandton", "Copier paper A4", "E100, Alice Adams"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q:\n%s", want, msg.Body)
		}
	}
}

func TestApprovedAndDeclined(t *testing.T) {
	submitter := &model.User{Username: "admin@twt.to", Email: "admin@twt.to", Role: model.RoleAdmin}
	actor := &model.User{Username: "manager@twt.to", Email: "manager@twt.to", Role: model.RoleManager}
	order := sampleOrder()

	approved := Approved(order, submitter, actor)
	if approved.To != "admin@twt.to" || approved.Subject != "Your Order Has Been Approved" {
		t.Fatalf("unexpected approval message %+v", approved)
	}
	if !strings.Contains(approved.Body, "E200, Mandla Mokoena") {
		t.Fatalf("approver employee details missing:\n%s", approved.Body)
	}

	declined := Declined(order, submitter, actor)
	if declined.To != "admin@twt.to" || declined.Subject != "Your Order Has Been Declined" {
		t.Fatalf("unexpected decline message %+v", declined)
	}
	if !strings.Contains(declined.Body, "declined by manager@twt.to (Manager)") {
		t.Fatalf("decliner missing:\n%s", declined.Body)
	}
}

func TestPasswordReset(t *testing.T) {
	user := &model.User{Username: "admin@twt.to", Email: "admin@twt.to"}
	msg := PasswordReset(user, "abc123defA1!")
	if msg.To != "admin@twt.to" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if !strings.Contains(msg.Body, "Temporary Password: abc123defA1!") {
		t.Fatalf("temporary credential missing:\n%s", msg.Body)
	}
}

func TestSupplierDispatch(t *testing.T) {
	order := sampleOrder()
	msg := SupplierDispatch(order, "sales@supplier.example", []byte("%PDF-stub"))

	if msg.To != "sales@supplier.example" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if msg.Subject != "Order #12 from TWT Sandton" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if msg.Attachment == nil || msg.Attachment.Filename != "order-12.pdf" {
		t.Fatalf("expected pdf attachment, got %+v", msg.Attachment)
	}
	for _, want := range []string{
		"Total Amount (Excl. VAT): R100.00",
		"VAT (15.5%): R15.50",
		"Total Amount (Incl. VAT): R115.50",
		"Approved by: Mandla Mokoena (E200)",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q:\n%s", want, msg.Body)
		}
	}
}

func TestSupplierDispatchPendingOmitsApprovalLine(t *testing.T) {
	order := sampleOrder()
	order.Status = model.OrderStatusPending

	msg := SupplierDispatch(order, "sales@supplier.example", nil)
	if strings.Contains(msg.Body, "Approved by:") {
		t.Fatalf("pending order must not carry an approval line:\n%s", msg.Body)
	}
}
