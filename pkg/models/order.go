package models

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// SideForIndex alternates BUY on even indexes and SELL on odd ones.
func SideForIndex(i int) OrderSide {
	if i%2 == 0 {
		return OrderSideBuy
	}
	return OrderSideSell
}

type InquiryStatus string

const (
	InquiryStatusReceived InquiryStatus = "RECEIVED"
)

type Trade struct {
	Instrument string
	TradeID    string
	Price      float64
	Book       string
	Quantity   int64
	Side       OrderSide
}

type Inquiry struct {
	InquiryID  string
	Instrument string
	Side       OrderSide
	Quantity   int64
	Price      float64
	Status     InquiryStatus
}
