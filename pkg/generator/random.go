package generator

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// stream is the single seeded source consumed by one trade or inquiry run.
// Values must be drawn in a fixed order for output to be reproducible.
type stream struct {
	r *rand.Rand
}

func newStream(seed uint64) *stream {
	return &stream{r: rand.New(rand.NewPCG(seed, seed))}
}

// digits returns n random decimal digits.
func (s *stream) digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + s.r.IntN(10)))
	}
	return b.String()
}

// uniform draws from [lo, hi).
func (s *stream) uniform(lo, hi float64) float64 {
	v := lo + s.r.Float64()*(hi-lo)
	if v >= hi {
		// lo + x can round up to hi when x is within an ulp of 1
		v = math.Nextafter(hi, lo)
	}
	return v
}

// IndexID renders index zero-padded to width digits.
func IndexID(index int64, width int) string {
	s := strconv.FormatInt(index, 10)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
