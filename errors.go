package uca

import (
	"errors"
	"fmt"
)

// ErrMalformedData is returned by FromBaked when a WeightsData's arrays are
// not internally consistent (e.g. an empty index whose continuous block does
// not cover every code point). Construction is the only place this engine can fail:
// once a Collator exists, GetWeights/GetKey never return an error (see
// SPEC_FULL.md §7).
var ErrMalformedData = errors.New("uca: malformed weights data")

func malformedDataf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedData, fmt.Sprintf(format, args...))
}

// ErrBadVersion is returned by WeightsData deserialization when the stored
// format version is not one this build of the engine understands.
var ErrBadVersion = errors.New("uca: unsupported weights data version")
