package usecase

import (
	"reflect"
	"testing"

	"github.com/treadworks/orderflow/internal/domain/model"
)

func TestPasswordViolationsAcceptable(t *testing.T) {
	if v := PasswordViolations("Str0ng!pass"); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestPasswordViolationsReportsAllRules(t *testing.T) {
	cases := []struct {
		password string
		want     []string
	}{
		{"short1", []string{"at least 8 characters", "one uppercase letter", "one special character"}},
		{"longenough1", []string{"one uppercase letter", "one special character"}},
		{"NoDigits!", []string{"one number"}},
		{"", []string{"at least 8 characters", "one uppercase letter", "one number", "one special character"}},
	}
	for _, tc := range cases {
		got := PasswordViolations(tc.password)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("PasswordViolations(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("user@twt.to") {
		t.Fatalf("address with @ must be accepted")
	}
	if ValidEmail("") || ValidEmail("user.twt.to") {
		t.Fatalf("address without @ must be rejected")
	}
}

func TestAssembleDescriptionDropsEmptyRows(t *testing.T) {
	items := []model.LineItem{
		{Quantity: "2", Description: "Copier paper A4", UnitCost: "45.00", TotalCost: "90.00"},
		{Quantity: "5", Description: "   ", UnitCost: "1.00", TotalCost: "5.00"},
		{Quantity: "1", Description: "Toner cartridge", UnitCost: "850.00", TotalCost: "850.00"},
	}

	got := AssembleDescription(items)
	want := "QTY: 2, Description: Copier paper A4, Unit Cost Excl.: 45.00, Total Unit Cost Excl.: 90.00\n" +
		"QTY: 1, Description: Toner cartridge, Unit Cost Excl.: 850.00, Total Unit Cost Excl.: 850.00"
	if got != want {
		t.Fatalf("unexpected description:\n%s\nwant:\n%s", got, want)
	}
}

func TestAssembleDescriptionEmpty(t *testing.T) {
	if got := AssembleDescription(nil); got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
	if got := AssembleDescription([]model.LineItem{{Quantity: "1"}}); got != "" {
		t.Fatalf("rows without description must be dropped, got %q", got)
	}
}
