package models

// Quote is the top of book for one instrument at one tick.
type Quote struct {
	Tick       int64
	Instrument string
	BidPrice   float64
	AskPrice   float64
}

// OrderBookLevel is one rung of a synthetic book. Bid and ask share a size.
type OrderBookLevel struct {
	BidPrice float64
	BidSize  int64
	AskPrice float64
	AskSize  int64
}

// BookDepth is the number of levels in every generated book.
const BookDepth = 5

type OrderBook struct {
	Tick       int64
	Instrument string
	Levels     [BookDepth]OrderBookLevel
}

// Top returns the level-1 quote of the book.
func (b OrderBook) Top() Quote {
	return Quote{
		Tick:       b.Tick,
		Instrument: b.Instrument,
		BidPrice:   b.Levels[0].BidPrice,
		AskPrice:   b.Levels[0].AskPrice,
	}
}
