package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/treadworks/orderflow/internal/domain/model"
)

// vatRate is the inclusive VAT rate shown on the printable document.
const vatRate = 0.155

// Renderer produces a printable PDF representation of an order.
type Renderer struct{}

// NewRenderer creates a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the purchase order as a single-page A4 document.
func (r *Renderer) Render(order *model.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Purchase Order #%d", order.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Purchase Order #%d", order.ID), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, order.Site, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	field := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, value, "", "L", false)
	}

	field("Supplier:", order.Supplier)
	field("Status:", strings.ToUpper(string(order.Status)))
	field("Created:", order.CreatedAt.Format("2006-01-02 15:04:05"))
	field("Submitted by:", fmt.Sprintf("%s (%s)", order.SubmitterEmpName, order.SubmitterEmpNumber))
	if order.Status == model.OrderStatusApproved && order.ApproverEmpName != nil {
		number := ""
		if order.ApproverEmpNumber != nil {
			number = *order.ApproverEmpNumber
		}
		field("Approved by:", fmt.Sprintf("%s (%s)", *order.ApproverEmpName, number))
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Items", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range strings.Split(order.Description, "\n") {
		if line == "" {
			continue
		}
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
	pdf.Ln(6)

	excl := order.Amount / (1 + vatRate)
	totals := [][2]string{
		{"Total Amount (Excl. VAT):", fmt.Sprintf("R%.2f", excl)},
		{"VAT (15.5%):", fmt.Sprintf("R%.2f", order.Amount-excl)},
		{"Total Amount (Incl. VAT):", fmt.Sprintf("R%.2f", order.Amount)},
	}
	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Helvetica", "B", 10)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.CellFormat(60, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render order %d: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}
