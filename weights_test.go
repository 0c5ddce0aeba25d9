package uca

import "testing"

func TestWeightsRoundTrip(t *testing.T) {
	cases := []weights{
		{l1: 0x06D9, l2: 0x0020, l3: 0x0002, isVariable: false},
		{l1: 0x0209, l2: 0x0020, l3: 0x0002, isVariable: true},
		{l1: 0, l2: 0x01FF, l3: 0x1F, isVariable: true},
		{},
	}
	for _, w := range cases {
		got := weightsFromWord(w.value())
		if got != w {
			t.Errorf("weightsFromWord(%#x) = %+v, want %+v", w.value(), got, w)
		}
	}
}

func TestWeightsFormat(t *testing.T) {
	cases := []struct {
		w    weights
		want string
	}{
		{weights{l1: 0x06D9, l2: 0x0020, l3: 0x0002}, "[.06D9.0020.0002]"},
		{weights{l1: 0x0209, l2: 0x0020, l3: 0x0002, isVariable: true}, "[*0209.0020.0002]"},
	}
	for _, c := range cases {
		if got := c.w.Format(); got != c.want {
			t.Errorf("Format() = %q, want %q", got, c.want)
		}
		if got := c.w.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
