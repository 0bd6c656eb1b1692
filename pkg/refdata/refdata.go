// Package refdata holds the fixed Treasury reference table keyed by CUSIP.
package refdata

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gregtusar/datagen/pkg/models"
)

// Unknown is returned by Lookup for identifiers missing from the table.
var Unknown = models.Bond{
	ID:       models.InvalidBondID,
	IDType:   models.IDTypeCUSIP,
	Ticker:   "UNKNOWN",
	Coupon:   decimal.Zero,
	Maturity: date(1900, 1, 1),
	PV01:     decimal.Zero,
}

var bonds = map[string]models.Bond{
	"91282CLY5": bond("91282CLY5", "US2Y", "0.04050", date(2026, 11, 30), "0.01948992"),
	"91282CMB4": bond("91282CMB4", "US3Y", "0.04090", date(2027, 11, 15), "0.02865304"),
	"91282CMA6": bond("91282CMA6", "US5Y", "0.04130", date(2029, 11, 30), "0.04581119"),
	"91282CLZ2": bond("91282CLZ2", "US7Y", "0.04138", date(2031, 11, 30), "0.06127718"),
	"91282CLW9": bond("91282CLW9", "US10Y", "0.04290", date(2034, 11, 15), "0.08161449"),
	"912810UF3": bond("912810UF3", "US20Y", "0.04622", date(2044, 11, 15), "0.11707914"),
	"912810UE6": bond("912810UE6", "US30Y", "0.04875", date(2054, 11, 15), "0.15013155"),
}

// DefaultCUSIPs is the on-the-run curve in tenor order.
var DefaultCUSIPs = []string{
	"91282CLY5", "91282CMB4", "91282CMA6", "91282CLZ2", "91282CLW9", "912810UF3", "912810UE6",
}

// Lookup returns the reference record for id and whether it was found.
// Unknown ids yield the Unknown sentinel.
func Lookup(id string) (models.Bond, bool) {
	b, ok := bonds[id]
	if !ok {
		return Unknown, false
	}
	return b, true
}

// PV01 returns the PV01 for id, zero if the id is unknown.
func PV01(id string) decimal.Decimal {
	b, _ := Lookup(id)
	return b.PV01
}

// All returns every known bond ordered by maturity.
func All() []models.Bond {
	out := make([]models.Bond, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Maturity.Before(out[j].Maturity)
	})
	return out
}

// Validate returns an error naming every id missing from the table.
func Validate(ids []string) error {
	var missing []string
	for _, id := range ids {
		if _, ok := bonds[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unknown instruments: %s", strings.Join(missing, ", "))
	}
	return nil
}

func bond(cusip, ticker, coupon string, maturity time.Time, pv01 string) models.Bond {
	return models.Bond{
		ID:       cusip,
		IDType:   models.IDTypeCUSIP,
		Ticker:   ticker,
		Coupon:   decimal.RequireFromString(coupon),
		Maturity: maturity,
		PV01:     decimal.RequireFromString(pv01),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
