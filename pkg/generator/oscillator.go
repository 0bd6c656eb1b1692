package generator

import "github.com/gregtusar/datagen/pkg/price"

const (
	MidStart = 99.0
	MidLower = 99.0
	MidUpper = 101.0
	MidStep  = price.Tick256

	SpreadStart = 1.0 / 128.0
	SpreadLower = 1.0 / 128.0
	SpreadUpper = 1.0 / 32.0
	SpreadStep  = 1.0 / 128.0

	// LevelStep is how far each book level sits outside the one before it.
	LevelStep = price.Tick256
	// LevelSize is the size at level 1; level k carries k times this.
	LevelSize = 10_000_000
)

// Oscillator walks a value back and forth between two bounds one step at a
// time. The direction flips once the value reaches or passes a bound, so a
// value that starts off-grid can overshoot by at most one step.
type Oscillator struct {
	Value      float64
	Step       float64
	Lower      float64
	Upper      float64
	Increasing bool
}

// Advance returns the oscillator one step later.
func (o Oscillator) Advance() Oscillator {
	if o.Increasing {
		o.Value += o.Step
		if o.Value >= o.Upper {
			o.Increasing = false
		}
	} else {
		o.Value -= o.Step
		if o.Value <= o.Lower {
			o.Increasing = true
		}
	}
	return o
}

// MarketState is the mid price and bid/ask spread shared by every
// instrument at a given tick.
type MarketState struct {
	Mid    Oscillator
	Spread Oscillator
}

// InitialMarketState is the state at tick 0: mid 99-000 rising, spread 1/128 widening.
func InitialMarketState() MarketState {
	return MarketState{
		Mid: Oscillator{
			Value:      MidStart,
			Step:       MidStep,
			Lower:      MidLower,
			Upper:      MidUpper,
			Increasing: true,
		},
		Spread: Oscillator{
			Value:      SpreadStart,
			Step:       SpreadStep,
			Lower:      SpreadLower,
			Upper:      SpreadUpper,
			Increasing: true,
		},
	}
}

// Advance moves both oscillators one tick.
func (s MarketState) Advance() MarketState {
	return MarketState{Mid: s.Mid.Advance(), Spread: s.Spread.Advance()}
}

// Top returns the best bid and ask around the mid.
func (s MarketState) Top() (bid, ask float64) {
	half := s.Spread.Value / 2.0
	return s.Mid.Value - half, s.Mid.Value + half
}
