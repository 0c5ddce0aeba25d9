package uca

// WeightsData is the persisted table a Collator is built from: the
// resolver's index plus the four scalar/trie arrays it points into. See
// SPEC_FULL.md §3 for the full array layout and §6 for the on-disk format
// this mirrors.
type WeightsData struct {
	// Index is the two-tier resolver index: tier one keyed by code>>7,
	// tier two the 16-cell per-block lookup it points into.
	Index []uint16
	// Scalars32 holds records that fit in 32 bits: implicit (all-zero)
	// records and records carrying a position into Expansions or Tries
	// plus a length, CCC or sentinel field.
	Scalars32 []uint32
	// Scalars64 holds single-weight records (starter or non-starter),
	// whose weight word at bits 4-35 and, for non-starters, CCC at bits
	// 36-43 do not fit in 32 bits.
	Scalars64 []uint64
	// Expansions holds the weight-word sequences starter expansions
	// point into.
	Expansions []uint32
	// Tries holds the flat contraction/decomposition/many-to-many trie,
	// as described in trie.go.
	Tries []uint32
	// ContinuousBlockEnd is the last code point for which the resolver
	// uses the contiguous fast path instead of the sparse index.
	ContinuousBlockEnd uint32
}

// validate checks the structural invariants FromBaked requires before
// trusting a WeightsData enough to read from it without bounds panics on
// the hot path: that the continuous-block end is a valid code point, and
// that the index has enough entries to be useful together with the scalar
// arrays it is paired with. It does not attempt to re-derive every
// reachable index cell's target by walking all of Unicode — that would
// duplicate the resolver itself — so a WeightsData can still pass
// validation and panic on a later out-of-range lookup if its index
// entries are wrong in a way this check does not cover.
func validateWeightsData(d WeightsData) error {
	const maxCodePoint = 0x10FFFF

	if d.ContinuousBlockEnd > maxCodePoint {
		return malformedDataf("continuous_block_end %#x exceeds max code point %#x", d.ContinuousBlockEnd, maxCodePoint)
	}

	if len(d.Index) == 0 && d.ContinuousBlockEnd < maxCodePoint {
		return malformedDataf("index is empty but continuous_block_end %#x does not cover the full code point range", d.ContinuousBlockEnd)
	}

	if len(d.Scalars64) == 0 && len(d.Scalars32) == 0 && len(d.Index) != 0 {
		return malformedDataf("index is non-empty but both scalar arrays are empty")
	}

	// Tries interleaves node headers with the raw weight words they own;
	// a weight word's high bits can look like an arbitrary weightsLen, so
	// there is no way to tell header words from weight words without
	// walking the trie from its known entry points (the pos fields in
	// Scalars32/Scalars64), which would mean re-deriving reachability for
	// all of Unicode. That walk is exactly what the resolver itself does
	// on first use, so it is left to do the checking.

	return nil
}

// Collator is an immutable, frozen UCA sort-key engine built from a
// WeightsData. It holds no mutable state and is safe for concurrent use by
// multiple goroutines once constructed.
type Collator struct {
	scalars64          []uint64
	scalars32          []uint32
	index              []uint16
	expansions         []uint32
	tries              []uint32
	continuousBlockEnd uint32
}

// FromBaked constructs a Collator from a pre-baked WeightsData, validating
// its structural invariants first. This is the only fallible operation in
// the engine; once constructed, a Collator's GetWeights/GetKey methods
// never return an error (SPEC_FULL.md §7).
func FromBaked(data WeightsData) (*Collator, error) {
	if err := validateWeightsData(data); err != nil {
		return nil, err
	}

	return &Collator{
		scalars64:          data.Scalars64,
		scalars32:          data.Scalars32,
		index:              data.Index,
		expansions:         data.Expansions,
		tries:              data.Tries,
		continuousBlockEnd: data.ContinuousBlockEnd,
	}, nil
}

// CldrUnd returns a Collator built from a small, representative subset of
// CLDR root ("und") collation data — ASCII and Cyrillic letters, a handful
// of combining diacritics with real canonical combining classes, a canonical
// decomposition, a ligature expansion, and Hangul jamo plus one precomposed
// syllable. It is not the full CLDR root table (baking that from
// allkeys.txt/CLDR XML is outside this engine's scope, see SPEC_FULL.md
// §4.H); callers who need full root coverage should bake their own
// WeightsData and call FromBaked directly.
func CldrUnd() (*Collator, error) {
	return FromBaked(buildCldrUndData())
}
