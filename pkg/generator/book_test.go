package generator

import (
	"testing"

	"github.com/gregtusar/datagen/pkg/models"
)

func TestBook_LevelSizes(t *testing.T) {
	book := InitialMarketState().Book(0, "A")
	for i, l := range book.Levels {
		want := int64(i+1) * 10_000_000
		if l.BidSize != want || l.AskSize != want {
			t.Errorf("level %d sizes = %d/%d, want %d", i+1, l.BidSize, l.AskSize, want)
		}
	}
}

func TestBook_WidensWithoutCrossing(t *testing.T) {
	s := InitialMarketState()
	for tick := int64(0); tick < 300; tick++ {
		book := s.Book(tick, "A")
		for k := 1; k < models.BookDepth; k++ {
			prev, cur := book.Levels[k-1], book.Levels[k]
			if !(cur.AskPrice > prev.AskPrice && prev.AskPrice > prev.BidPrice && prev.BidPrice > cur.BidPrice) {
				t.Fatalf("tick %d level %d: %+v then %+v", tick, k+1, prev, cur)
			}
			if cur.AskPrice-prev.AskPrice != LevelStep || prev.BidPrice-cur.BidPrice != LevelStep {
				t.Fatalf("tick %d level %d: step is not %v", tick, k+1, LevelStep)
			}
		}
		s = s.Advance()
	}
}

func TestBook_TopMatchesQuote(t *testing.T) {
	s := InitialMarketState().Advance().Advance()
	book := s.Book(2, "91282CLY5")
	if book.Top() != s.Quote(2, "91282CLY5") {
		t.Errorf("book top %+v != quote %+v", book.Top(), s.Quote(2, "91282CLY5"))
	}
}

func TestQuote_Tick0(t *testing.T) {
	q := InitialMarketState().Quote(0, "A")
	if q.BidPrice != 99.0-1.0/256.0 || q.AskPrice != 99.0+1.0/256.0 {
		t.Errorf("tick 0 quote = %v/%v", q.BidPrice, q.AskPrice)
	}
}
