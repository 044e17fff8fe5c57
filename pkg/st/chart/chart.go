// Package chart builds the placeholder price history shown on the market detail screen.
package chart

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/komsit37/sportstrader/pkg/st/types"
)

var blocks = []rune("▁▂▃▄▅▆▇█")

// Series returns n deterministic points that start at the price implied by m.ChangePct
// and end exactly at m.Price. The wiggle in between is seeded by m.ID.
func Series(m types.Market, n int) []float64 {
	if n <= 0 {
		return nil
	}
	end := m.Price
	start := end
	if f := 1 + m.ChangePct/100; f > 0 {
		start = end / f
	}
	if n == 1 {
		return []float64{end}
	}

	h := fnv.New32a()
	h.Write([]byte(m.ID))
	phase := float64(h.Sum32()%628) / 100
	amp := math.Abs(end-start) * 0.35
	if amp == 0 {
		amp = math.Abs(end) * 0.01
	}

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		wiggle := amp * math.Sin(phase+t*3*math.Pi) * math.Sin(t*math.Pi)
		out[i] = start + (end-start)*t + wiggle
	}
	out[n-1] = end
	return out
}

// Sparkline renders values as a single line of block glyphs.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * float64(len(blocks)-1)))
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
