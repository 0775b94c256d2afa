package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/treadworks/orderflow/internal/domain/model"
)

// PasswordViolations checks the credential policy and returns every violated
// rule, not just the first. An empty slice means the password is acceptable.
func PasswordViolations(password string) []string {
	var violations []string
	if len(password) < 8 {
		violations = append(violations, "at least 8 characters")
	}

	var upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	if !upper {
		violations = append(violations, "one uppercase letter")
	}
	if !digit {
		violations = append(violations, "one number")
	}
	if !special {
		violations = append(violations, "one special character")
	}
	return violations
}

// ValidEmail applies the minimal address check used at registration.
func ValidEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}

// AssembleDescription renders line items into the order description text.
// Each row with a non-empty description becomes one line combining all four
// fields; empty-description rows are dropped, input order is preserved.
func AssembleDescription(items []model.LineItem) string {
	var lines []string
	for _, item := range items {
		desc := strings.TrimSpace(item.Description)
		if desc == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"QTY: %s, Description: %s, Unit Cost Excl.: %s, Total Unit Cost Excl.: %s",
			strings.TrimSpace(item.Quantity), desc,
			strings.TrimSpace(item.UnitCost), strings.TrimSpace(item.TotalCost),
		))
	}
	return strings.Join(lines, "\n")
}
