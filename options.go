package uca

// Strength is the comparison level at which a sort key stops distinguishing
// code points, per UTS #35 §1.3.
type Strength uint8

const (
	// Primary distinguishes base letters only (a vs b).
	Primary Strength = 1
	// Secondary additionally distinguishes accents (a vs ä).
	Secondary Strength = 2
	// Tertiary additionally distinguishes case and variants (a vs A).
	Tertiary Strength = 3
	// Quaternary additionally distinguishes punctuation under Shifted
	// alternate handling.
	Quaternary Strength = 4
)

func (s Strength) String() string {
	switch s {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	case Tertiary:
		return "Tertiary"
	case Quaternary:
		return "Quaternary"
	default:
		return "Strength(invalid)"
	}
}

// AlternateHandling controls how variable-weight (typically punctuation and
// whitespace) code points are folded into the key.
type AlternateHandling uint8

const (
	// NonIgnorable keeps variable weights at their natural level.
	NonIgnorable AlternateHandling = 0
	// Shifted moves variable weights down to a quaternary level, and
	// ignores them entirely below Quaternary strength.
	Shifted AlternateHandling = 1
)

func (a AlternateHandling) String() string {
	switch a {
	case NonIgnorable:
		return "NonIgnorable"
	case Shifted:
		return "Shifted"
	default:
		return "AlternateHandling(invalid)"
	}
}

// Options controls key composition. The zero value is not valid; use
// DefaultOptions or set both fields explicitly.
type Options struct {
	Strength  Strength
	Alternate AlternateHandling
}

// DefaultOptions matches the CLDR root default: Tertiary strength,
// NonIgnorable alternate handling.
func DefaultOptions() Options {
	return Options{Strength: Tertiary, Alternate: NonIgnorable}
}

// optionsValue is the packed 16-bit encoding of Options: bits 0-2 hold
// Strength, bit 3 holds AlternateHandling. It exists for compact storage and
// diagnostics; callers work with Options directly.
type optionsValue uint16

func (o Options) pack() optionsValue {
	return optionsValue(uint16(o.Strength) | (uint16(o.Alternate) << 3))
}

func parseOptionsValue(v optionsValue) Options {
	return Options{
		Strength:  Strength(uint16(v) & 7),
		Alternate: AlternateHandling((uint16(v) >> 3) & 1),
	}
}
