package uca

// Key is a composed sort key together with the lengths of its constituent
// per-level runs, letting callers re-slice Weights into its
// primary/secondary/tertiary(/quaternary) sections without rescanning it.
type Key struct {
	Weights []uint16
	L1Len   int
	L2Len   int
	L3Len   int
}

// GetKey runs the collation-element pipeline over input and composes the
// result into a Key under the given Options.
func (c *Collator) GetKey(input string, opts Options) Key {
	w := c.GetWeights(input)
	return composeKey(w, opts)
}

// composeKey turns a flat weight-word sequence into a level-separated
// uint16 key, honoring Options.Strength and Options.Alternate.
func composeKey(w []uint32, opts Options) Key {
	switch opts.Alternate {
	case Shifted:
		return composeShiftedKey(w, opts.Strength)
	default:
		return composeNonIgnorableKey(w, opts.Strength)
	}
}

func composeNonIgnorableKey(w []uint32, strength Strength) Key {
	var primary, secondary, tertiary []uint16

	push := func(to *[]uint16, v uint16) {
		if v != 0 {
			*to = append(*to, v)
		}
	}

	switch strength {
	case Primary:
		for _, v := range w {
			ws := weightsFromWord(v)
			push(&primary, ws.l1)
		}
	case Secondary:
		for _, v := range w {
			ws := weightsFromWord(v)
			push(&primary, ws.l1)
			push(&secondary, ws.l2)
		}
	default:
		for _, v := range w {
			ws := weightsFromWord(v)
			push(&primary, ws.l1)
			push(&secondary, ws.l2)
			push(&tertiary, ws.l3)
		}
	}

	l1Len, l2Len, l3Len := len(primary), len(secondary), len(tertiary)

	if strength >= Secondary {
		primary = append(primary, 0)
		primary = append(primary, secondary...)
	}
	if strength >= Tertiary {
		primary = append(primary, 0)
		primary = append(primary, tertiary...)
	}

	return Key{Weights: primary, L1Len: l1Len, L2Len: l2Len, L3Len: l3Len}
}

// composeShiftedKey implements UTS #10's variable-weight Shifted policy: a
// code point carrying a "variable" weight (roughly, punctuation/whitespace
// under the default CLDR root variable-top) has its primary weight pushed
// down to a quaternary level instead of its natural level, and anything it
// would otherwise contribute at lower strengths is suppressed — with two
// CLDR-test-driven divergences from the literal TR#10 text, both recorded
// as open questions in SPEC_FULL.md §9.1: a non-variable entry with a
// nonzero primary weight gets the 0xFFFF quaternary value only when its
// tertiary weight is also nonzero (following CLDR conformance test output
// rather than TR#10's unconditional 0xFFFF), and U+FFFE's sentinel
// quaternary value (0x0001 instead of 0xFFFF).
func composeShiftedKey(w []uint32, strength Strength) Key {
	var primary, secondary, tertiary, quaternary []uint16

	push := func(to *[]uint16, v uint16) {
		if v != 0 {
			*to = append(*to, v)
		}
	}

	followingAVariable := false

	switch strength {
	case Primary:
		for _, v := range w {
			ws := weightsFromWord(v)
			if ws.isVariable {
				continue
			}
			push(&primary, ws.l1)
		}

	case Secondary:
		for _, v := range w {
			ws := weightsFromWord(v)
			if ws.isVariable {
				followingAVariable = true
				continue
			}
			if followingAVariable && ws.l1 == 0 {
				continue
			}
			push(&primary, ws.l1)
			push(&secondary, ws.l2)
			followingAVariable = false
		}

	case Tertiary:
		for _, v := range w {
			ws := weightsFromWord(v)
			if ws.isVariable {
				followingAVariable = true
				continue
			}
			if followingAVariable && ws.l1 == 0 {
				continue
			}
			push(&primary, ws.l1)
			push(&secondary, ws.l2)
			push(&tertiary, ws.l3)
			followingAVariable = false
		}

	case Quaternary:
		for _, v := range w {
			if v == 0 {
				continue
			}
			ws := weightsFromWord(v)

			if ws.l1 == 0 && ws.l3 != 0 {
				if followingAVariable {
					continue
				}
				push(&quaternary, 0xFFFF)
			}

			if ws.l1 != 0 {
				if ws.isVariable {
					followingAVariable = true
					push(&quaternary, ws.l1)
					continue
				}

				if ws.l1 == 1 {
					push(&quaternary, 0x0001)
				} else if ws.l3 != 0 {
					push(&quaternary, 0xFFFF)
				}
			}

			push(&primary, ws.l1)
			push(&secondary, ws.l2)
			push(&tertiary, ws.l3)

			followingAVariable = ws.isVariable
		}
	}

	l1Len, l2Len, l3Len := len(primary), len(secondary), len(tertiary)

	if strength >= Secondary {
		primary = append(primary, 0)
		primary = append(primary, secondary...)
	}
	if strength >= Tertiary {
		primary = append(primary, 0)
		primary = append(primary, tertiary...)
	}
	if strength >= Quaternary {
		primary = append(primary, 0)
		primary = append(primary, quaternary...)
	}

	return Key{Weights: primary, L1Len: l1Len, L2Len: l2Len, L3Len: l3Len}
}
