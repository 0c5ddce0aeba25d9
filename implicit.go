package uca

// firstWeightL2L3 is the fixed secondary/tertiary pair every implicit weight
// word uses, precomputed once: secondary=0x0020, tertiary=0x0002.
const firstWeightL2L3 uint32 = (0x20 << 16) | (0x02 << 25)

// implicitWeights computes the two-element weight sequence UTS #10 §10
// assigns to code points with no explicit entry: an algorithmic weight
// derived from the code point's block, used for unassigned and
// large-repertoire scripts (principally CJK) that CLDR does not enumerate
// one entry at a time.
func implicitWeights(code rune) [2]uint32 {
	c := uint32(code)

	switch {
	case isHanCore(code):
		return [2]uint32{
			(0xFB40 + (c >> 15)) | firstWeightL2L3,
			(c & 0x7FFF) | 0x8000,
		}
	case isHanOther(code):
		return [2]uint32{
			(0xFB80 + (c >> 15)) | firstWeightL2L3,
			(c & 0x7FFF) | 0x8000,
		}
	case isTangut(code):
		return [2]uint32{0xFB00 | firstWeightL2L3, (c - 0x17000) | 0x8000}
	case isNushu(code):
		return [2]uint32{0xFB01 | firstWeightL2L3, (c - 0x1B170) | 0x8000}
	case isKhitan(code):
		return [2]uint32{0xFB02 | firstWeightL2L3, (c - 0x18B00) | 0x8000}
	default:
		return [2]uint32{
			(0xFBC0 + (c >> 15)) | firstWeightL2L3,
			(c & 0x7FFF) | 0x8000,
		}
	}
}

// isHanCore covers the base CJK Unified Ideographs block, U+4E00..U+9FFF.
// The unified ideographs inside the CJK Compatibility Ideographs block are
// not included and fall through to the generic formula.
func isHanCore(code rune) bool {
	return code >= 0x4E00 && code <= 0x9FFF
}

// isHanOther covers the CJK Unified Ideographs extension blocks:
// Unified_Ideograph=True AND NOT (Block=CJK_Unified_Ideographs OR
// Block=CJK_Compatibility_Ideographs).
func isHanOther(code rune) bool {
	switch {
	case code >= 0x3400 && code <= 0x4DBF:
	case code >= 0x20000 && code <= 0x2A6DF:
	case code >= 0x2A700 && code <= 0x2B739:
	case code >= 0x2B740 && code <= 0x2B81D:
	case code >= 0x2B820 && code <= 0x2CEA1:
	case code >= 0x2CEB0 && code <= 0x2EBE0:
	case code >= 0x2EBF0 && code <= 0x2EE5D:
	case code >= 0x30000 && code <= 0x3134A:
	case code >= 0x31350 && code <= 0x323AF:
	default:
		return false
	}
	return true
}

// isTangut covers the Tangut, Tangut Components and Tangut Supplement
// assigned ranges.
func isTangut(code rune) bool {
	switch {
	case code >= 0x17000 && code <= 0x187F7:
	case code >= 0x18800 && code <= 0x18AFF:
	case code >= 0x18D00 && code <= 0x18D08:
	default:
		return false
	}
	return true
}

// isNushu covers the assigned Nüshu range.
func isNushu(code rune) bool {
	return code >= 0x1B170 && code <= 0x1B2FB
}

// isKhitan covers the assigned Khitan Small Script range.
func isKhitan(code rune) bool {
	return code >= 0x18B00 && code <= 0x18CD5
}
