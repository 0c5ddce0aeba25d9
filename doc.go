// Package uca implements the Unicode Collation Algorithm (UTS #10) against
// the CLDR root ("und") tailoring.
//
// # Overview
//
// uca turns a string into a sort key: a sequence of uint16 weights such that
// byte-for-byte (word-for-word) comparison of two keys matches what a human
// reader of the target locale would consider alphabetical order. It does
// this in a single streaming pass over the input's code points, fusing
// canonical reordering, contraction matching and decomposition into one
// pipeline rather than running a separate normalization pass first.
//
// # When to Use uca
//
// uca is useful wherever string comparison needs to be linguistically
// correct rather than purely code-point-ordinal:
//   - Sorting user-facing lists (names, filenames, search results)
//   - Database indexes that need locale-aware ordering
//   - Deduplicating strings that are canonically equivalent but not
//     byte-identical (e.g. a precomposed vs. a decomposed accented letter)
//
// # When NOT to Use uca
//
// uca is not a normalizer and not a full ICU replacement:
//   - It does not expose NFC/NFD normalization as a standalone operation;
//     canonical reordering only happens as a side effect of key generation
//   - Hangul syllables get base L/V/T weights only; trailing weights are
//     not adjusted (see hangulWeights in hangul.go)
//   - It implements the root ("und") collation only; it does not parse
//     CLDR tailoring rules for other locales
//
// # Basic Usage
//
//	c, err := uca.CldrUnd()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opts := uca.Options{Strength: uca.Tertiary, Alternate: uca.NonIgnorable}
//	a := c.GetKey("cafe", opts)
//	b := c.GetKey("café", opts)
//
//	if uca.CompareKeys(a.Weights, b.Weights) < 0 {
//		fmt.Println("cafe sorts before café")
//	}
//
// # Performance Characteristics
//
// GetWeights and GetKey run in a single pass over the input's code points,
// with no heap allocation beyond the output slices and a small per-call
// scratch buffer for pending non-starters. A Collator is immutable once
// constructed and safe for concurrent use by multiple goroutines.
package uca
