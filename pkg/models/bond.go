package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type IDType string

const IDTypeCUSIP IDType = "CUSIP"

// Bond is the static reference record for a Treasury issue.
type Bond struct {
	ID       string
	IDType   IDType
	Ticker   string
	Coupon   decimal.Decimal // annual rate, 0.0405 = 4.05%
	Maturity time.Time
	PV01     decimal.Decimal // price change per 1bp, in points
}

// Valid reports whether b is a real issue rather than the unknown sentinel.
func (b Bond) Valid() bool {
	return b.ID != "" && b.ID != InvalidBondID
}

// InvalidBondID marks the record returned for unknown identifiers.
const InvalidBondID = "INVALID"
