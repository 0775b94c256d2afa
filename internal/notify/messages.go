package notify

import (
	"fmt"

	"github.com/treadworks/orderflow/internal/domain/model"
)

// Message construction is deterministic over order and user fields so that
// every transition produces the same text for the same data.

// AwaitingApproval addresses the opposite-role counterpart after an order
// was submitted.
func AwaitingApproval(order *model.Order, submitter, counterpart *model.User) Message {
	subject := "New Order Awaiting Approval"
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"A new order created by %s (%s) at %s is awaiting your approval.\n"+
			"Order ID: %d\n"+
			"Site: %s\n"+
			"Supplier: %s\n"+
			"Description:\n%s\n"+
			"Total Amount Incl.: %.2f\n"+
			"Submitter (Emp #, Name): %s, %s\n\n"+
			"Please log in to review and approve the order.",
		counterpart.Role, submitter.Username, submitter.Role, order.Site,
		order.ID, order.Site, order.Supplier, order.Description, order.Amount,
		order.SubmitterEmpNumber, order.SubmitterEmpName,
	)
	return Message{To: counterpart.Email, From: submitter.Email, Subject: subject, Body: body}
}

// Approved addresses the submitter after their order was approved.
func Approved(order *model.Order, submitter, actor *model.User) Message {
	subject := "Your Order Has Been Approved"
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your order (ID: %d) at %s has been approved by %s (%s).\n"+
			"Approver (Emp #, Name): %s, %s\n"+
			"You can now proceed to print the order.\n\n"+
			"Best regards,\nOrder Management System",
		submitter.Role, order.ID, order.Site, actor.Username, actor.Role,
		deref(order.ApproverEmpNumber), deref(order.ApproverEmpName),
	)
	return Message{To: submitter.Email, From: actor.Email, Subject: subject, Body: body}
}

// Declined addresses the submitter after their order was declined.
func Declined(order *model.Order, submitter, actor *model.User) Message {
	subject := "Your Order Has Been Declined"
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your order (ID: %d) at %s has been declined by %s (%s).\n"+
			"Decliner (Emp #, Name): %s, %s\n\n"+
			"Please contact your approver for more information.",
		submitter.Role, order.ID, order.Site, actor.Username, actor.Role,
		deref(order.ApproverEmpNumber), deref(order.ApproverEmpName),
	)
	return Message{To: submitter.Email, From: actor.Email, Subject: subject, Body: body}
}

// PasswordReset carries a freshly issued temporary credential.
func PasswordReset(user *model.User, tempPassword string) Message {
	subject := "Password Reset - Order Management System"
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your password has been reset. Here are your new login credentials:\n\n"+
			"Username: %s\n"+
			"Temporary Password: %s\n\n"+
			"Please log in and change your password immediately.\n\n"+
			"Best regards,\nOrder Management System",
		user.Username, user.Email, tempPassword,
	)
	return Message{To: user.Email, Subject: subject, Body: body}
}

// vatRate is the inclusive VAT rate applied to order totals.
const vatRate = 0.155

// SupplierDispatch addresses a supplier with the order document attached.
func SupplierDispatch(order *model.Order, supplierEmail string, document []byte) Message {
	excl := order.Amount / (1 + vatRate)
	approvedLine := ""
	if order.Status == model.OrderStatusApproved {
		approvedLine = fmt.Sprintf("Approved by: %s (%s)\n", deref(order.ApproverEmpName), deref(order.ApproverEmpNumber))
	}
	body := fmt.Sprintf(
		"Dear Supplier,\n\n"+
			"Please find attached the order details from %s.\n\n"+
			"Order Details:\n"+
			"-------------\n"+
			"Order ID: %d\n"+
			"Site: %s\n"+
			"Status: %s\n"+
			"Created: %s\n\n"+
			"Total Amount (Excl. VAT): R%.2f\n"+
			"VAT (15.5%%): R%.2f\n"+
			"Total Amount (Incl. VAT): R%.2f\n\n"+
			"Submitted by: %s (%s)\n"+
			"%s\n"+
			"Best regards,\n%s Team",
		order.Site, order.ID, order.Site, order.Status,
		order.CreatedAt.Format("2006-01-02 15:04:05"),
		excl, order.Amount-excl, order.Amount,
		order.SubmitterEmpName, order.SubmitterEmpNumber,
		approvedLine, order.Site,
	)
	return Message{
		To:      supplierEmail,
		Subject: fmt.Sprintf("Order #%d from %s", order.ID, order.Site),
		Body:    body,
		Attachment: &Attachment{
			Filename:    fmt.Sprintf("order-%d.pdf", order.ID),
			ContentType: "application/pdf",
			Data:        document,
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
