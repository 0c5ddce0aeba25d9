package uca

// Hangul syllable decomposition constants (UAX #15, Hangul Syllable Type).
const (
	hangulSBase      uint32 = 0xAC00
	hangulNCount     uint32 = 588
	hangulTCount     uint32 = 27
	hangulTBlockSize uint32 = hangulTCount + 1
)

// Hangul L/V/T base weights. In CLDR root, jamo L1 weights are contiguous,
// so rather than carry a table entry per jamo we compute them directly from
// the syllable's arithmetic decomposition: L1 lives in the low 16 bits of
// the weight word, so base+offset reproduces the table lookup exactly.
//
// This is a stand-in, not a complete Hangul collation element weighter: it
// does not address trailing-weight correctness (UTS #10 §10, Hangul
// Trailing Weights) — a precomposed syllable and its full LVT jamo expansion
// are not guaranteed to interleave correctly against a following combining
// jamo sequence.
const (
	hangulLBaseWeights uint32 = 0x4204323
	hangulVBaseWeights uint32 = 0x42043A1
	hangulTBaseWeights uint32 = 0x42043FE
)

// hangulWeights returns the L, V and (if present) T weight words for a
// precomposed Hangul syllable, appended to result.
func hangulWeights(code rune, result []uint32) []uint32 {
	lvt := uint32(code) - hangulSBase

	l := lvt / hangulNCount
	v := (lvt % hangulNCount) / hangulTBlockSize
	t := lvt % hangulTBlockSize

	result = append(result, hangulLBaseWeights+l)
	result = append(result, hangulVBaseWeights+v)

	if t != 0 {
		result = append(result, hangulTBaseWeights+t)
	}

	return result
}
