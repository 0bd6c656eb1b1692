package generator

import "github.com/gregtusar/datagen/pkg/models"

// Quote builds the top-of-book quote for instrument at tick.
func (s MarketState) Quote(tick int64, instrument string) models.Quote {
	bid, ask := s.Top()
	return models.Quote{
		Tick:       tick,
		Instrument: instrument,
		BidPrice:   bid,
		AskPrice:   ask,
	}
}

// Book builds the five-level book for instrument at tick. Level 1 is the
// top of book; each further level is LevelStep wider on both sides.
func (s MarketState) Book(tick int64, instrument string) models.OrderBook {
	book := models.OrderBook{Tick: tick, Instrument: instrument}
	bid, ask := s.Top()
	for i := range book.Levels {
		if i > 0 {
			bid -= LevelStep
			ask += LevelStep
		}
		size := int64(i+1) * LevelSize
		book.Levels[i] = models.OrderBookLevel{
			BidPrice: bid,
			BidSize:  size,
			AskPrice: ask,
			AskSize:  size,
		}
	}
	return book
}
