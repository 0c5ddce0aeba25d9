package uca

import "testing"

func TestTrieNodeHeaderAccessors(t *testing.T) {
	v := newTrieNodeHeader(0x1234, 37, 5, true, true)
	n := trieNodeFromValue(v, 42)

	if got := n.code(); got != 0x1234 {
		t.Errorf("code() = %#x, want 0x1234", got)
	}
	if got := n.ccc(); got != 37 {
		t.Errorf("ccc() = %d, want 37", got)
	}
	if got := n.weightsLen(); got != 5 {
		t.Errorf("weightsLen() = %d, want 5", got)
	}
	if !n.hasChildren() {
		t.Error("hasChildren() = false, want true")
	}
	if !n.isLastSibling() {
		t.Error("isLastSibling() = false, want true")
	}
	if !n.isStarter() {
		n2 := trieNodeFromValue(newTrieNodeHeader(0, 0, 0, false, false), 0)
		if !n2.isStarter() {
			t.Error("ccc=0 node should report isStarter() = true")
		}
	}
	if got, want := n.weightsOffset(), uint16(43); got != want {
		t.Errorf("weightsOffset() = %d, want %d", got, want)
	}
	if got, want := n.nextOffset(), uint16(48); got != want {
		t.Errorf("nextOffset() = %d, want %d", got, want)
	}
}

// buildSiblingTrie constructs:
//
//	[0] node(code=1, weightsLen=1, last=false)       -- plain starter
//	[1]   weight A
//	[2] node(code=2, weightsLen=1, hasChildren=true, last=false)
//	[3]   weight B (node 2's own weights)
//	[4]   node(code=10, ccc=5, weightsLen=1, last=true) -- child of node 2
//	[5]     weight C
//	[6] node(code=3, weightsLen=1, last=true)
//	[7]   weight D
func buildSiblingTrie() []uint32 {
	return []uint32{
		newTrieNodeHeader(1, 0, 1, false, false), 0xA,
		newTrieNodeHeader(2, 0, 1, true, false), 0xB,
		newTrieNodeHeader(10, 5, 1, false, true), 0xC,
		newTrieNodeHeader(3, 0, 1, false, true), 0xD,
	}
}

func TestTrieIterSkipsOverChildren(t *testing.T) {
	tries := buildSiblingTrie()
	it := newTrieIter(tries, 0)

	var codes []uint32
	for {
		n, ok := it.next()
		if !ok {
			break
		}
		codes = append(codes, n.code())
	}

	want := []uint32{1, 2, 3}
	if len(codes) != len(want) {
		t.Fatalf("codes = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}
}

func TestTrieIterDescendsIntoChildren(t *testing.T) {
	tries := buildSiblingTrie()
	node2 := trieNodeFromSlice(tries, 2)

	it := newTrieIter(tries, node2.nextOffset())
	child, ok := it.next()
	if !ok {
		t.Fatal("expected one child")
	}
	if child.code() != 10 || child.ccc() != 5 {
		t.Fatalf("child = %+v, want code=10 ccc=5", child)
	}

	if _, ok := it.next(); ok {
		t.Fatal("expected no more children")
	}
}
