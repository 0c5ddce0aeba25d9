package uca

import "testing"

func TestSingleWeightsRecordRoundTrip(t *testing.T) {
	w := weights{l1: 0x1234, l2: 0x0020, l3: 0x0008}.value()
	d := newSingleWeightsRecord(markerStarterSingleWeights, w)

	if got := d.marker(); got != markerStarterSingleWeights {
		t.Fatalf("marker() = %#o, want %#o", got, markerStarterSingleWeights)
	}
	if got := d.singleWeights(); got != w {
		t.Fatalf("singleWeights() = %#x, want %#x", got, w)
	}
}

func TestNonstarterSingleWeightsRecordRoundTrip(t *testing.T) {
	w := weights{l1: 0, l2: 0x0021, l3: 0x0002}.value()
	d := newNonstarterSingleWeightsRecord(230, w)

	if got := d.marker(); got != markerNonstarterSingleWeights {
		t.Fatalf("marker() = %#o, want %#o", got, markerNonstarterSingleWeights)
	}
	if got := d.singleWeights(); got != w {
		t.Fatalf("singleWeights() = %#x, want %#x", got, w)
	}
	if got := d.singleWeightsCCC(); got != 230 {
		t.Fatalf("singleWeightsCCC() = %d, want 230", got)
	}
}

func TestPosLenRecordRoundTrip(t *testing.T) {
	d := newPosLenRecord(markerStarterExpansion, 0x1234, 3)

	if got := d.marker(); got != markerStarterExpansion {
		t.Fatalf("marker() = %#o, want %#o", got, markerStarterExpansion)
	}
	pos, lenOrCCC := d.posAndLenOrCCC()
	if pos != 0x1234 || lenOrCCC != 3 {
		t.Fatalf("posAndLenOrCCC() = (%#x, %d), want (0x1234, 3)", pos, lenOrCCC)
	}
}

func TestPosLenRecordHangulSentinel(t *testing.T) {
	d := newPosLenRecord(markerStarterDecompositionOrTrie, 0, markerCCCHangul)
	pos, sentinel := d.posAndLenOrCCC()
	if pos != 0 || sentinel != markerCCCHangul {
		t.Fatalf("posAndLenOrCCC() = (%#x, %#x), want (0, 0xFE)", pos, sentinel)
	}
}

func TestNonstarterTrieRecordRoundTrip(t *testing.T) {
	d := newNonstarterTrieRecord(0x4321)
	if got := d.marker(); got != markerNonstarterTrie {
		t.Fatalf("marker() = %#o, want %#o", got, markerNonstarterTrie)
	}
	if got := d.pos(); got != 0x4321 {
		t.Fatalf("pos() = %#x, want 0x4321", got)
	}
}

func TestImplicitRecordIsZero(t *testing.T) {
	var d dataRecord
	if got := d.marker(); got != markerImplicit {
		t.Fatalf("zero value marker() = %#o, want markerImplicit", got)
	}
}

func TestGetDataValueContinuousBlock(t *testing.T) {
	c, err := CldrUnd()
	if err != nil {
		t.Fatalf("CldrUnd() error: %v", err)
	}

	d := c.getDataValue('a')
	if d.marker() != markerStarterSingleWeights {
		t.Fatalf("'a' marker = %#o, want markerStarterSingleWeights", d.marker())
	}

	// An untouched code point (here one above the bundled table's
	// contiguous prefix) falls back to the shared default record.
	d = c.getDataValue(0x4E2D) // 中, a CJK ideograph with no table entry
	if d.marker() != markerImplicit {
		t.Fatalf("untouched code point marker = %#o, want markerImplicit", d.marker())
	}
}
