package generator

import (
	"fmt"
	"strconv"

	"github.com/gregtusar/datagen/pkg/models"
	"github.com/gregtusar/datagen/pkg/price"
)

// TimestampWidth is the zero-padded width of the tick column.
const TimestampWidth = 12

var QuoteHeader = []string{"Timestamp", "CUSIP", "Bid", "Ask"}

var BookHeader = bookHeader()

func bookHeader() []string {
	h := []string{"Timestamp", "CUSIP"}
	for level := 1; level <= models.BookDepth; level++ {
		n := strconv.Itoa(level)
		h = append(h, "Bid"+n, "BidSize"+n, "Ask"+n, "AskSize"+n)
	}
	return h
}

func quoteRecord(q models.Quote) ([]string, error) {
	bid, err := price.Format(q.BidPrice)
	if err != nil {
		return nil, fmt.Errorf("quote %s tick %d bid: %w", q.Instrument, q.Tick, err)
	}
	ask, err := price.Format(q.AskPrice)
	if err != nil {
		return nil, fmt.Errorf("quote %s tick %d ask: %w", q.Instrument, q.Tick, err)
	}
	return []string{IndexID(q.Tick, TimestampWidth), q.Instrument, bid, ask}, nil
}

func bookRecord(b models.OrderBook) ([]string, error) {
	rec := make([]string, 0, len(BookHeader))
	rec = append(rec, IndexID(b.Tick, TimestampWidth), b.Instrument)
	for i, l := range b.Levels {
		bid, err := price.Format(l.BidPrice)
		if err != nil {
			return nil, fmt.Errorf("book %s tick %d level %d bid: %w", b.Instrument, b.Tick, i+1, err)
		}
		ask, err := price.Format(l.AskPrice)
		if err != nil {
			return nil, fmt.Errorf("book %s tick %d level %d ask: %w", b.Instrument, b.Tick, i+1, err)
		}
		rec = append(rec,
			bid, strconv.FormatInt(l.BidSize, 10),
			ask, strconv.FormatInt(l.AskSize, 10),
		)
	}
	return rec, nil
}

// Instrument,TradeId,Price,Book,Quantity,Side
func tradeRecord(t models.Trade) ([]string, error) {
	p, err := price.Format(t.Price)
	if err != nil {
		return nil, fmt.Errorf("trade %s: %w", t.TradeID, err)
	}
	return []string{
		t.Instrument,
		t.TradeID,
		p,
		t.Book,
		strconv.FormatInt(t.Quantity, 10),
		string(t.Side),
	}, nil
}

// InquiryId,Instrument,Side,Quantity,Price,Status
func inquiryRecord(q models.Inquiry) ([]string, error) {
	p, err := price.Format(q.Price)
	if err != nil {
		return nil, fmt.Errorf("inquiry %s: %w", q.InquiryID, err)
	}
	return []string{
		q.InquiryID,
		q.Instrument,
		string(q.Side),
		strconv.FormatInt(q.Quantity, 10),
		p,
		string(q.Status),
	}, nil
}
