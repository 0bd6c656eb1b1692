package generator

import (
	"github.com/gregtusar/datagen/pkg/models"
	"github.com/gregtusar/datagen/pkg/price"
)

// RecordsPerInstrument is the number of trades or inquiries per instrument.
const RecordsPerInstrument = 10

var (
	tradeBooks = []string{"TRSY1", "TRSY2", "TRSY3"}
	quantities = []int64{1_000_000, 2_000_000, 3_000_000, 4_000_000, 5_000_000}
)

// priceRange is where a side's random prices are drawn from.
func priceRange(side models.OrderSide) (lo, hi float64) {
	if side == models.OrderSideBuy {
		return 99.0, 100.0
	}
	return 100.0, 101.0
}

// Trades generates RecordsPerInstrument trades for each instrument in order.
// Prices are snapped to the 1/256 grid so they match what is written.
// The same seed and instrument list always yield the same trades.
func Trades(instruments []string, seed uint64, idLength int) []models.Trade {
	rng := newStream(seed)
	out := make([]models.Trade, 0, len(instruments)*RecordsPerInstrument)
	for _, instrument := range instruments {
		for i := 0; i < RecordsPerInstrument; i++ {
			side := models.SideForIndex(i)
			id := rng.digits(idLength)
			lo, hi := priceRange(side)
			out = append(out, models.Trade{
				Instrument: instrument,
				TradeID:    id,
				Price:      price.Quantize(rng.uniform(lo, hi)),
				Book:       tradeBooks[i%len(tradeBooks)],
				Quantity:   quantities[i%len(quantities)],
				Side:       side,
			})
		}
	}
	return out
}

// Inquiries generates RecordsPerInstrument inquiries for each instrument,
// all in the RECEIVED state.
func Inquiries(instruments []string, seed uint64, idLength int) []models.Inquiry {
	rng := newStream(seed)
	out := make([]models.Inquiry, 0, len(instruments)*RecordsPerInstrument)
	for _, instrument := range instruments {
		for i := 0; i < RecordsPerInstrument; i++ {
			side := models.SideForIndex(i)
			id := rng.digits(idLength)
			lo, hi := priceRange(side)
			out = append(out, models.Inquiry{
				InquiryID:  id,
				Instrument: instrument,
				Side:       side,
				Quantity:   quantities[i%len(quantities)],
				Price:      price.Quantize(rng.uniform(lo, hi)),
				Status:     models.InquiryStatusReceived,
			})
		}
	}
	return out
}
