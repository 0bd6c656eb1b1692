package refdata

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLookup(t *testing.T) {
	b, ok := Lookup("91282CLW9")
	if !ok {
		t.Fatal("Lookup(91282CLW9) not found")
	}
	if b.Ticker != "US10Y" {
		t.Errorf("Ticker = %q, want %q", b.Ticker, "US10Y")
	}
	if !b.Coupon.Equal(decimal.RequireFromString("0.0429")) {
		t.Errorf("Coupon = %s, want 0.0429", b.Coupon)
	}
	if b.Maturity.Year() != 2034 {
		t.Errorf("Maturity = %v, want 2034", b.Maturity)
	}
	if !b.Valid() {
		t.Error("known bond reported invalid")
	}
}

func TestLookup_Unknown(t *testing.T) {
	b, ok := Lookup("NOPE")
	if ok {
		t.Fatal("Lookup(NOPE) found")
	}
	if b.Valid() {
		t.Error("sentinel reported valid")
	}
	if b.Ticker != "UNKNOWN" {
		t.Errorf("Ticker = %q, want UNKNOWN", b.Ticker)
	}
	if !PV01("NOPE").IsZero() {
		t.Errorf("PV01(NOPE) = %s, want 0", PV01("NOPE"))
	}
}

func TestPV01(t *testing.T) {
	if got := PV01("912810UE6"); !got.Equal(decimal.RequireFromString("0.15013155")) {
		t.Errorf("PV01(912810UE6) = %s", got)
	}
}

func TestDefaultCUSIPsAreKnown(t *testing.T) {
	if err := Validate(DefaultCUSIPs); err != nil {
		t.Fatalf("Validate(DefaultCUSIPs): %v", err)
	}
	if len(DefaultCUSIPs) != len(All()) {
		t.Errorf("DefaultCUSIPs has %d entries, table has %d", len(DefaultCUSIPs), len(All()))
	}
}

func TestAll_OrderedByMaturity(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if all[i].Maturity.Before(all[i-1].Maturity) {
			t.Errorf("%s matures before %s", all[i].ID, all[i-1].ID)
		}
	}
	// tenor order matches maturity order
	for i, b := range all {
		if b.ID != DefaultCUSIPs[i] {
			t.Errorf("All()[%d] = %s, want %s", i, b.ID, DefaultCUSIPs[i])
		}
	}
}

func TestValidate_ReportsMissing(t *testing.T) {
	err := Validate([]string{"91282CLY5", "A", "B"})
	if err == nil {
		t.Fatal("Validate succeeded with unknown ids")
	}
	if !strings.Contains(err.Error(), "A, B") {
		t.Errorf("error = %q, want it to list A, B", err)
	}
}
