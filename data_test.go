package uca

import "testing"

func TestFromBakedValidData(t *testing.T) {
	c, err := FromBaked(buildCldrUndData())
	if err != nil {
		t.Fatalf("FromBaked(buildCldrUndData()) error: %v", err)
	}
	if c == nil {
		t.Fatal("FromBaked returned nil Collator with nil error")
	}
}

func TestFromBakedRejectsOversizedContinuousBlockEnd(t *testing.T) {
	_, err := FromBaked(WeightsData{ContinuousBlockEnd: 0x110000})
	if err == nil {
		t.Fatal("expected error for continuous_block_end beyond max code point")
	}
}

func TestFromBakedRejectsEmptyIndexWithPartialCoverage(t *testing.T) {
	_, err := FromBaked(WeightsData{ContinuousBlockEnd: 0x7F})
	if err == nil {
		t.Fatal("expected error: empty index but continuous_block_end does not cover full range")
	}
}

func TestFromBakedRejectsNonEmptyIndexWithNoScalars(t *testing.T) {
	_, err := FromBaked(WeightsData{
		Index:              []uint16{0},
		ContinuousBlockEnd: 0x10FFFF,
	})
	if err == nil {
		t.Fatal("expected error: non-empty index but both scalar arrays empty")
	}
}

func TestFromBakedAcceptsFullCoverageWithNoIndex(t *testing.T) {
	// An empty index is fine as long as ContinuousBlockEnd covers the whole
	// repertoire: every lookup takes the continuous-block fast path.
	_, err := FromBaked(WeightsData{
		ContinuousBlockEnd: 0x10FFFF,
		Scalars32:          []uint32{0, 0, 0, 0, 0, 0, 0, 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCldrUnd(t *testing.T) {
	c, err := CldrUnd()
	if err != nil {
		t.Fatalf("CldrUnd() error: %v", err)
	}
	if c == nil {
		t.Fatal("CldrUnd() returned nil Collator with nil error")
	}
}
