package uca

// buildCldrUndData assembles the small bundled default table CldrUnd()
// returns. It is not a CLDR-scale table: baking the real root collation
// data from allkeys.txt/CLDR XML is explicitly out of scope (SPEC_FULL.md
// §4.H) and is not attempted here. Instead this builds a self-consistent
// subset directly through the same record/trie constructors the engine
// reads, covering:
//
//   - ASCII and Cyrillic letters as plain starters
//   - a handful of combining diacritics with real canonical combining
//     classes, to exercise non-starter reordering
//   - a real canonical decomposition (é -> e + combining acute accent)
//   - a real compatibility ligature expansion (ﬀ -> f, f)
//   - Hangul jamo and one precomposed Hangul syllable, wired so that
//     GetWeights on the syllable and on its jamo expansion agree
//   - everything else (including ordinary CJK ideographs) falls through
//     to the implicit-weight path, which needs no table entry at all
//
// Every code point outside this subset still resolves: the builder's
// default index cell points at an all-zero record, which decodes as
// markerImplicit and is handled algorithmically by implicitWeights.
func buildCldrUndData() WeightsData {
	b := newTableBuilder()

	b.buildLatin()
	b.buildCyrillic()
	b.buildCombiningMarks()
	b.buildDecompositions()
	b.buildLigatures()
	b.buildHangul()

	return b.data()
}

// tableBuilder assembles a WeightsData by computing the same resolver
// addresses getDataValue uses and writing records through it in reverse,
// allocating scalar storage lazily so unrelated code points never need
// individual entries.
type tableBuilder struct {
	index      []uint16
	scalars32  []uint32
	scalars64  []uint64
	expansions []uint32
	tries      []uint32

	cell32 map[uint16]uint16
	cell64 map[uint16]uint16
}

// bundledContinuousBlockEnd ends the contiguous fast path just below U+1000:
// getDataValue ORs the block offset (code>>3 with the low 4 bits cleared)
// into continuousBlockBase (0x600), and from U+1000 upwards that offset
// reaches the same bits, so distinct blocks would share index cells. Code
// points above it (Hangul jamo and syllables, the FB00 ligature block) are
// placed through the sparse tier-one index instead.
const bundledContinuousBlockEnd uint32 = 0x0FFF

func newTableBuilder() *tableBuilder {
	b := &tableBuilder{
		cell32: map[uint16]uint16{},
		cell64: map[uint16]uint16{},
	}

	// scalars32[0:8] is the shared "nothing here" octet: every index cell
	// defaults to it (Go zero-values index to 0, and 0<<1 with tag bit 0
	// already points at position 0 in scalars32), and every one of its
	// eight slots is itself the zero record, i.e. markerImplicit.
	b.scalars32 = append(b.scalars32, 0, 0, 0, 0, 0, 0, 0, 0)

	maxCell := b.cellIndex(bundledContinuousBlockEnd)
	b.index = make([]uint16, maxCell+1)

	return b
}

func (b *tableBuilder) cellIndex(code uint32) uint16 {
	offset := uint16(code) & 0x7F
	if code <= bundledContinuousBlockEnd {
		base := uint16(0x600) | (uint16(code>>3) &^ 0xF)
		return base | (offset >> 3)
	}

	// Beyond the contiguous prefix, each 128-code-point group gets its own
	// 16-cell block appended to the index on first use, with its tier-one
	// entry (index[code>>7]) pointing at it.
	group := uint16(code >> 7)
	if b.index[group] == 0 {
		b.index[group] = uint16(len(b.index))
		b.index = append(b.index, make([]uint16, 16)...)
	}
	return b.index[group] | (offset >> 3)
}

func (b *tableBuilder) ensureScalars64Octet(cell uint16) uint16 {
	if pos, ok := b.cell64[cell]; ok {
		return pos
	}
	pos := uint16(len(b.scalars64))
	b.scalars64 = append(b.scalars64, 0, 0, 0, 0, 0, 0, 0, 0)
	b.cell64[cell] = pos
	b.index[cell] = (pos << 1) | 1
	return pos
}

func (b *tableBuilder) ensureScalars32Octet(cell uint16) uint16 {
	if pos, ok := b.cell32[cell]; ok {
		return pos
	}
	pos := uint16(len(b.scalars32))
	b.scalars32 = append(b.scalars32, 0, 0, 0, 0, 0, 0, 0, 0)
	b.cell32[cell] = pos
	b.index[cell] = pos << 1
	return pos
}

func (b *tableBuilder) setStarterSingleWeights(code rune, w weights) {
	cell := b.cellIndex(uint32(code))
	pos := b.ensureScalars64Octet(cell)
	b.scalars64[pos+(uint16(code)&7)] = uint64(newSingleWeightsRecord(markerStarterSingleWeights, w.value()))
}

func (b *tableBuilder) setNonstarterSingleWeights(code rune, ccc uint8, w weights) {
	cell := b.cellIndex(uint32(code))
	pos := b.ensureScalars64Octet(cell)
	b.scalars64[pos+(uint16(code)&7)] = uint64(newNonstarterSingleWeightsRecord(ccc, w.value()))
}

func (b *tableBuilder) setStarterExpansion(code rune, words ...uint32) {
	cell := b.cellIndex(uint32(code))
	pos := b.ensureScalars32Octet(cell)
	expPos := uint16(len(b.expansions))
	b.expansions = append(b.expansions, words...)
	b.scalars32[pos+(uint16(code)&7)] = uint32(newPosLenRecord(markerStarterExpansion, expPos, uint8(len(words))))
}

func (b *tableBuilder) setDecomposition(code rune, triePos uint16) {
	cell := b.cellIndex(uint32(code))
	pos := b.ensureScalars32Octet(cell)
	b.scalars32[pos+(uint16(code)&7)] = uint32(newPosLenRecord(markerStarterDecompositionOrTrie, triePos, 0))
}

func (b *tableBuilder) setHangulSyllable(code rune) {
	cell := b.cellIndex(uint32(code))
	pos := b.ensureScalars32Octet(cell)
	b.scalars32[pos+(uint16(code)&7)] = uint32(newPosLenRecord(markerStarterDecompositionOrTrie, 0, markerCCCHangul))
}

// addDecompositionTrie appends a starter-plus-one-non-starter decomposition
// to tries and returns the anchor position a scalars entry's decomposition
// field should point to.
//
// The anchor carries the decomposition's own flattened weight words (what
// handleBuffer's simple case reads directly), immediately followed by the
// same starter and non-starter re-expressed as addressable child nodes
// (what decompose() reads when the buffer needs full reordering or
// contraction matching against what follows) — the same two collation
// elements written out twice, once flat and once structured, matching the
// dual read paths in engine.go.
func (b *tableBuilder) addDecompositionTrie(starterCode uint32, starterWeight uint32, nonstarterCode uint32, nonstarterCCC uint8, nonstarterWeight uint32) uint16 {
	anchor := uint16(len(b.tries))
	b.tries = append(b.tries, newTrieNodeHeader(0, 0, 2, false, true))
	b.tries = append(b.tries, starterWeight, nonstarterWeight)

	b.tries = append(b.tries, newTrieNodeHeader(starterCode, 0, 1, false, false))
	b.tries = append(b.tries, starterWeight)

	b.tries = append(b.tries, newTrieNodeHeader(nonstarterCode, nonstarterCCC, 1, false, true))
	b.tries = append(b.tries, nonstarterWeight)

	return anchor
}

func (b *tableBuilder) data() WeightsData {
	return WeightsData{
		Index:              b.index,
		Scalars32:          b.scalars32,
		Scalars64:          b.scalars64,
		Expansions:         b.expansions,
		Tries:              b.tries,
		ContinuousBlockEnd: bundledContinuousBlockEnd,
	}
}

func w(l1, l2, l3 uint16, variable bool) weights {
	return weights{l1: l1, l2: l2, l3: l3, isVariable: variable}
}

func (b *tableBuilder) buildLatin() {
	for c := rune('a'); c <= 'z'; c++ {
		l1 := uint16(0x1000 + 2*(c-'a'))
		b.setStarterSingleWeights(c, w(l1, 0x0020, 0x0002, false))
	}
	for c := rune('A'); c <= 'Z'; c++ {
		l1 := uint16(0x1000 + 2*(c-'A'))
		b.setStarterSingleWeights(c, w(l1, 0x0020, 0x0008, false))
	}
	for c := rune('0'); c <= '9'; c++ {
		l1 := uint16(0x0E00 + (c - '0'))
		b.setStarterSingleWeights(c, w(l1, 0x0020, 0x0002, false))
	}

	// SPACE: the canonical Shifted/variable-weight example — [*0209.0020.0002].
	b.setStarterSingleWeights(0x0020, w(0x0209, 0x0020, 0x0002, true))
}

func (b *tableBuilder) buildCyrillic() {
	for c := rune(0x0430); c <= 0x044F; c++ {
		l1 := uint16(0x2000 + 2*(c-0x0430))
		b.setStarterSingleWeights(c, w(l1, 0x0020, 0x0002, false))
	}
	for c := rune(0x0410); c <= 0x042F; c++ {
		l1 := uint16(0x2000 + 2*(c-0x0410))
		b.setStarterSingleWeights(c, w(l1, 0x0020, 0x0008, false))
	}
}

// combiningAcuteWeight and combiningCedillaWeight are shared between the
// standalone non-starter entries and the é decomposition trie, so that
// NFD-equivalent input ("e" + combining acute) and precomposed input ("é")
// collate identically.
var (
	combiningAcuteWeight   = w(0x0000, 0x0021, 0x0002, false)
	combiningCedillaWeight = w(0x0000, 0x0023, 0x0002, false)
)

func (b *tableBuilder) buildCombiningMarks() {
	// COMBINING ACUTE ACCENT, ccc=230 (Above).
	b.setNonstarterSingleWeights(0x0301, 230, combiningAcuteWeight)
	// COMBINING CEDILLA, ccc=202 (Attached_Below, treated here simply
	// as "a lower class than Above" for the reordering example).
	b.setNonstarterSingleWeights(0x0327, 202, combiningCedillaWeight)
}

func (b *tableBuilder) buildDecompositions() {
	eWeight := w(0x1000+2*('e'-'a'), 0x0020, 0x0002, false)

	anchor := b.addDecompositionTrie(uint32('e'), eWeight.value(), 0x0301, 230, combiningAcuteWeight.value())
	b.setDecomposition(0x00E9, anchor) // é LATIN SMALL LETTER E WITH ACUTE
}

func (b *tableBuilder) buildLigatures() {
	fWeight := w(0x1000+2*('f'-'a'), 0x0020, 0x0002, false)
	// U+FB00 LATIN SMALL LIGATURE FF expands to two "f" collation elements.
	b.setStarterExpansion(0xFB00, fWeight.value(), fWeight.value())
}

func (b *tableBuilder) buildHangul() {
	// Jamo weights are the Hangul base weights themselves (offset 0): the
	// same formula hangulWeights() uses for a precomposed syllable whose
	// L/V/T indices are all zero, so the two paths agree by construction.
	b.setStarterSingleWeights(0x1100, weightsFromWord(hangulLBaseWeights)) // HANGUL CHOSEONG KIYEOK
	b.setStarterSingleWeights(0x1161, weightsFromWord(hangulVBaseWeights)) // HANGUL JUNGSEONG A

	b.setHangulSyllable(0xAC00) // 가 (L=0, V=0, T=0)
}
