// Package generator produces the synthetic Treasury market data files:
// quotes and five-level books driven by an oscillating mid and spread,
// plus seeded trades and inquiries.
package generator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// DefaultIDLength is the number of digits in trade and inquiry ids.
const DefaultIDLength = 12

var errNoInstruments = errors.New("no instruments")

// ValidateInstruments rejects an empty list and any id the delimited
// output would have to quote, so every id is written exactly as given.
func ValidateInstruments(ids []string) error {
	if len(ids) == 0 {
		return errNoInstruments
	}
	for i, id := range ids {
		r, _ := utf8.DecodeRuneInString(id)
		if id == "" || id == `\.` || unicode.IsSpace(r) || strings.ContainsAny(id, ",\"\r\n") {
			return fmt.Errorf("instruments[%d] %q cannot be written unquoted", i, id)
		}
	}
	return nil
}

type Generator struct {
	logger logrus.FieldLogger
}

func New(logger logrus.FieldLogger) *Generator {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Generator{logger: logger}
}

// BookStats summarizes one order book run.
type BookStats struct {
	Ticks       int64
	Instruments int
	Rows        int64
}

// WriteOrderBooks writes a quote row and a book row for every tick and
// instrument, tick-major. Both outputs get a header line.
func (g *Generator) WriteOrderBooks(quotes, books io.Writer, instruments []string, ticks int64) (BookStats, error) {
	stats := BookStats{Ticks: ticks, Instruments: len(instruments)}
	if ticks < 0 {
		return stats, fmt.Errorf("ticks must be >= 0, got %d", ticks)
	}
	if err := ValidateInstruments(instruments); err != nil {
		return stats, err
	}

	start := time.Now()
	qw := csv.NewWriter(quotes)
	bw := csv.NewWriter(books)

	if err := qw.Write(QuoteHeader); err != nil {
		return stats, err
	}
	if err := bw.Write(BookHeader); err != nil {
		return stats, err
	}

	state := InitialMarketState()
	for t := int64(0); t < ticks; t++ {
		for _, instrument := range instruments {
			rec, err := quoteRecord(state.Quote(t, instrument))
			if err != nil {
				return stats, err
			}
			if err := qw.Write(rec); err != nil {
				return stats, err
			}

			rec, err = bookRecord(state.Book(t, instrument))
			if err != nil {
				return stats, err
			}
			if err := bw.Write(rec); err != nil {
				return stats, err
			}
			stats.Rows++
		}

		g.logger.WithFields(logrus.Fields{
			"tick":   t,
			"mid":    state.Mid.Value,
			"spread": state.Spread.Value,
		}).Trace("Tick generated")
		state = state.Advance()
	}
	if err := flush(qw); err != nil {
		return stats, err
	}
	if err := flush(bw); err != nil {
		return stats, err
	}

	g.logger.WithFields(logrus.Fields{
		"ticks":       ticks,
		"instruments": len(instruments),
		"rows":        stats.Rows,
		"duration":    time.Since(start),
	}).Info("Generated prices and order books")
	return stats, nil
}

// WriteTrades writes the seeded trades without a header and returns the row count.
func (g *Generator) WriteTrades(w io.Writer, instruments []string, seed uint64, idLength int) (int, error) {
	if err := ValidateInstruments(instruments); err != nil {
		return 0, err
	}
	cw := csv.NewWriter(w)
	trades := Trades(instruments, seed, idLength)
	for _, t := range trades {
		rec, err := tradeRecord(t)
		if err != nil {
			return 0, err
		}
		if err := cw.Write(rec); err != nil {
			return 0, err
		}
	}
	if err := flush(cw); err != nil {
		return 0, err
	}

	g.logger.WithFields(logrus.Fields{
		"instruments": len(instruments),
		"rows":        len(trades),
		"seed":        seed,
	}).Info("Generated trades")
	return len(trades), nil
}

// WriteInquiries writes the seeded inquiries without a header and returns the row count.
func (g *Generator) WriteInquiries(w io.Writer, instruments []string, seed uint64, idLength int) (int, error) {
	if err := ValidateInstruments(instruments); err != nil {
		return 0, err
	}
	cw := csv.NewWriter(w)
	inquiries := Inquiries(instruments, seed, idLength)
	for _, q := range inquiries {
		rec, err := inquiryRecord(q)
		if err != nil {
			return 0, err
		}
		if err := cw.Write(rec); err != nil {
			return 0, err
		}
	}
	if err := flush(cw); err != nil {
		return 0, err
	}

	g.logger.WithFields(logrus.Fields{
		"instruments": len(instruments),
		"rows":        len(inquiries),
		"seed":        seed,
	}).Info("Generated inquiries")
	return len(inquiries), nil
}

func flush(w *csv.Writer) error {
	w.Flush()
	return w.Error()
}
