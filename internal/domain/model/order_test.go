package model

import "testing"

func TestOrderStatusTerminal(t *testing.T) {
	if OrderStatusPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
	if !OrderStatusApproved.Terminal() {
		t.Fatalf("approved must be terminal")
	}
	if !OrderStatusDeclined.Terminal() {
		t.Fatalf("declined must be terminal")
	}
}
