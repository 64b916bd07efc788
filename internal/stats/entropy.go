package stats

import "math"

// ShannonEntropy returns the zero-order Shannon entropy, in bits per
// symbol, of the distribution counts describes. It is the same H(x)
// the original source's entropy_calculator crate reports before an
// encode, purely as a diagnostic lower bound on achievable compression
// (spec §8, "Length monotonicity").
func ShannonEntropy(counts Counts) float64 {
	total := counts.Total()
	if total == 0 {
		return 0
	}
	var hx float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		hx -= p * math.Log2(p)
	}
	return hx
}

// CompressionRatio returns the ratio of original to compressed symbol
// counts (symbols per output byte).
func CompressionRatio(symbolCount, compressedByteCount int) float64 {
	if compressedByteCount == 0 {
		return 0
	}
	return float64(symbolCount) / float64(compressedByteCount)
}

// AverageSymbolBits returns the average number of bits spent per input
// symbol for a given compression ratio (8 bits per original byte,
// divided across that many output bytes' worth of symbols).
func AverageSymbolBits(ratio float64) float64 {
	if ratio == 0 {
		return 0
	}
	return 8.0 / ratio
}
