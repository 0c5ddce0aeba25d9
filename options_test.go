package uca

import "testing"

func TestStrengthString(t *testing.T) {
	cases := []struct {
		s    Strength
		want string
	}{
		{Primary, "Primary"},
		{Secondary, "Secondary"},
		{Tertiary, "Tertiary"},
		{Quaternary, "Quaternary"},
		{Strength(99), "Strength(invalid)"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("Strength(%d).String() = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestAlternateHandlingString(t *testing.T) {
	cases := []struct {
		a    AlternateHandling
		want string
	}{
		{NonIgnorable, "NonIgnorable"},
		{Shifted, "Shifted"},
		{AlternateHandling(99), "AlternateHandling(invalid)"},
	}
	for _, c := range cases {
		if got := c.a.String(); got != c.want {
			t.Errorf("AlternateHandling(%d).String() = %q, want %q", c.a, got, c.want)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	want := Options{Strength: Tertiary, Alternate: NonIgnorable}
	if got := DefaultOptions(); got != want {
		t.Errorf("DefaultOptions() = %+v, want %+v", got, want)
	}
}

func TestOptionsPackRoundTrip(t *testing.T) {
	for _, s := range []Strength{Primary, Secondary, Tertiary, Quaternary} {
		for _, a := range []AlternateHandling{NonIgnorable, Shifted} {
			opts := Options{Strength: s, Alternate: a}
			got := parseOptionsValue(opts.pack())
			if got != opts {
				t.Errorf("pack/parse round trip: got %+v, want %+v", got, opts)
			}
		}
	}
}
