package uca

import "testing"

func TestCompareKeysOrdering(t *testing.T) {
	cases := []struct {
		a, b []uint16
		want int
	}{
		{[]uint16{1, 2}, []uint16{1, 2}, 0},
		{[]uint16{1, 2}, []uint16{1, 3}, -1},
		{[]uint16{1, 3}, []uint16{1, 2}, 1},
		{[]uint16{1}, []uint16{1, 0}, -1},
		{[]uint16{1, 0}, []uint16{1}, 1},
		{nil, nil, 0},
		{nil, []uint16{1}, -1},
	}
	for _, c := range cases {
		if got := CompareKeys(c.a, c.b); got != c.want {
			t.Errorf("CompareKeys(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareKeysPrefixLengthTiebreak(t *testing.T) {
	// A prefix relationship must fall back to length, not claim equality.
	short := []uint16{0x1000, 0x0020}
	long := []uint16{0x1000, 0x0020, 0x0002}
	if got := CompareKeys(short, long); got != -1 {
		t.Fatalf("CompareKeys(short, long) = %d, want -1", got)
	}
	if got := CompareKeys(long, short); got != 1 {
		t.Fatalf("CompareKeys(long, short) = %d, want 1", got)
	}
}
