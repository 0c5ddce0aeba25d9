package uca

import (
	"sort"
	"unicode/utf8"
)

// charsIter walks a string's code points one at a time. It exists (rather
// than a plain range loop) because the engine needs to hand a single
// iterator to several mutually-recursive helpers that each pull the next
// code point on demand.
type charsIter struct {
	s   string
	pos int
}

func newCharsIter(s string) *charsIter { return &charsIter{s: s} }

func (it *charsIter) next() (rune, bool) {
	if it.pos >= len(it.s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(it.s[it.pos:])
	it.pos += size
	return r, true
}

// lookahead is a code point paired with its already-resolved data record,
// handed from one engine stage to the next when a stage reads one code
// point further than it can consume itself.
type lookahead struct {
	code rune
	dv   dataRecord
}

// GetWeights runs the full streaming collation-element pipeline over input
// and returns its flat sequence of weight words. This is the engine's only
// entry point with real control flow; GetKey (key.go) just post-processes
// its result.
func (c *Collator) GetWeights(input string) []uint32 {
	it := newCharsIter(input)
	result := make([]uint32, 0, len(input))
	c.ceBufferLoop(it, &result)
	return result
}

// startersLoop is the fast path: while the pending-non-starter buffer is
// empty, ordinary starters are resolved and written directly to result
// without ever touching the buffer. It returns as soon as it reads a code
// point the fast path can't handle (anything that might combine with what
// follows), or once the buffer is non-empty and the caller needs the next
// code point handed back for slow-path dispatch.
func (c *Collator) startersLoop(it *charsIter, result *[]uint32, bufferNotEmpty bool) (rune, dataRecord, bool) {
	for {
		code, ok := it.next()
		if !ok {
			return 0, 0, false
		}

		dv := c.getDataValue(code)

		if bufferNotEmpty {
			return code, dv, true
		}

		switch dv.marker() {
		case markerStarterSingleWeights:
			*result = append(*result, dv.singleWeights())
		case markerStarterExpansion:
			*result = append(*result, c.getStarterExpansionWeightsSlice(dv)...)
		default:
			return code, dv, true
		}
	}
}

// ceBufferLoop is the slow path dispatcher: it owns the pending
// non-starter/contraction buffer and the running last-seen CCC, and decides
// for every code point whether it can be resolved immediately or needs to
// join the buffer for later decomposition/contraction matching.
func (c *Collator) ceBufferLoop(it *charsIter, result *[]uint32) {
	var buffer []collationElement
	lastCCC := uint8(0)
	var previous lookahead
	havePrevious := false

	for {
		var code rune
		var dv dataRecord

		if havePrevious {
			code, dv = previous.code, previous.dv
			havePrevious = false
		} else {
			nc, ndv, ok := c.startersLoop(it, result, len(buffer) != 0)
			if !ok {
				if len(buffer) != 0 {
					c.handleBuffer(result, &buffer, lastCCC != 0xFF)
				}
				return
			}
			code, dv = nc, ndv
		}

		switch dv.marker() {
		case markerStarterSingleWeights:
			c.handleBuffer(result, &buffer, lastCCC != 0xFF)
			*result = append(*result, dv.singleWeights())
			lastCCC = 0

		case markerStarterExpansion:
			c.handleBuffer(result, &buffer, lastCCC != 0xFF)
			*result = append(*result, c.getStarterExpansionWeightsSlice(dv)...)
			lastCCC = 0

		case markerStarterDecompositionOrTrie:
			if len(buffer) != 0 {
				c.handleBuffer(result, &buffer, lastCCC != 0xFF)
			}

			pos, ccc := dv.posAndLenOrCCC()
			lastCCC = ccc

			if lastCCC == markerCCCSequence {
				node := trieNodeFromSlice(c.tries, pos)
				la, ok := c.handleStartersSequence(node, result, &buffer, it)
				if ok {
					previous = la
					havePrevious = true
				}
				continue
			}

			if lastCCC == markerCCCHangul {
				*result = hangulWeights(code, *result)
				lastCCC = 0
				continue
			}

			buffer = append(buffer, collationElement{ccc: 0, code: uint32(code), kind: ceDecomposition, pos: pos})

		case markerNonstarterSingleWeights:
			ccc := dv.singleWeightsCCC()
			if ccc < lastCCC {
				lastCCC = 0xFF
			} else {
				lastCCC = ccc
			}

			buffer = append(buffer, collationElement{ccc: ccc, code: uint32(code), kind: ceSingleWeights, weights: dv.singleWeights()})

		case markerNonstarterTrie:
			lastCCC = 0xFF

			pos, _ := dv.posAndLenOrCCC()
			tIter := newTrieIter(c.tries, pos)

			for {
				node, ok := tIter.next()
				if !ok {
					break
				}
				// The only trie with children reached via this marker in
				// practice is U+0F71 TIBETAN VOWEL SIGN AA.
				buffer = append(buffer, collationElement{ccc: node.ccc(), code: node.code(), kind: ceTrie, pos: node.pos16()})
			}

		case markerImplicit:
			if len(buffer) != 0 {
				c.handleBuffer(result, &buffer, lastCCC != 0xFF)
			}
			lastCCC = 0

			w := implicitWeights(code)
			*result = append(*result, w[0], w[1])

		default:
			panic("uca: unreachable data record marker")
		}
	}
}

// handleBuffer flushes the pending non-starter buffer to result. simpleCase
// is true when no decomposition or contraction matching is actually
// needed — a lone decomposition entry, or a decomposition followed only by
// non-starters that never decrease in CCC — in which case every buffered
// entry's weights can be appended as-is. Otherwise the buffer may need
// decomposing (if it starts with a decomposition) and/or matching against
// the contraction trie.
func (c *Collator) handleBuffer(result *[]uint32, buffer *[]collationElement, simpleCase bool) {
	if simpleCase {
		for _, ce := range *buffer {
			switch ce.kind {
			case ceDecomposition:
				weightsStart := ce.pos + 1
				weightsLen := uint16(c.tries[ce.pos] >> 26)
				*result = append(*result, c.tries[weightsStart:weightsStart+weightsLen]...)
			case ceSingleWeights:
				*result = append(*result, ce.weights)
			default:
				panic("uca: unreachable collation element kind in simple case")
			}
		}

		*buffer = (*buffer)[:0]
		return
	}

	// A single buffered entry is either the start of a combination or a
	// lone non-starter needing no decomposition of its own.
	if len(*buffer) == 1 {
		switch (*buffer)[0].kind {
		case ceTrie:
			node := trieNodeFromSlice(c.tries, (*buffer)[0].pos)
			c.writeNodeWeights(node, result)
		case ceSingleWeights:
			*result = append(*result, (*buffer)[0].weights)
		default:
			panic("uca: unreachable collation element kind for singleton buffer")
		}

		*buffer = (*buffer)[:0]
		return
	}

	if (*buffer)[0].isStarter() {
		starter := c.decompose(buffer)

		if starter.hasChildren() {
			c.handleTrieNonstartersSequence(starter, result, buffer)
			return
		}

		c.writeNodeWeights(starter, result)
	} else {
		sortCEByCCC(*buffer)
	}

	c.writeBuffer(buffer, result)
	*buffer = (*buffer)[:0]
}

// handleStartersSequence looks for a contraction or many-to-many sequence
// continuing with further starters after node. It either resolves the
// sequence fully (writing weights and returning ok=false), or determines the
// lookahead code point belongs to the non-starter buffer instead and hands
// it back for the caller to re-dispatch (ok=true).
func (c *Collator) handleStartersSequence(node trieNode, result *[]uint32, buffer *[]collationElement, it *charsIter) (lookahead, bool) {
	firstChild := trieNodeFromValue(c.tries[node.nextOffset()], node.nextOffset())

	// A sequence that can only continue with non-starters goes straight to
	// the buffer.
	if !firstChild.isStarter() {
		*buffer = append(*buffer, collationElement{ccc: 0, code: node.code(), kind: ceTrie, pos: node.pos16()})
		return lookahead{}, false
	}

	code, dv, marker, ok := c.getNextOrWriteToResult(node, result, it)
	if !ok {
		return lookahead{}, false
	}

	if isStarterMarker(marker) {
		tIter := newTrieIter(c.tries, node.nextOffset())

		for {
			iterNode, ok2 := tIter.next()
			if !ok2 {
				// The second code point of the sequence could only have
				// been a starter, and we've exhausted every candidate.
				c.writeNodeWeights(node, result)
				c.writeStarter(dv, result)
				return lookahead{}, false
			}

			if iterNode.code() == uint32(code) {
				if !iterNode.hasChildren() {
					c.writeNodeWeights(iterNode, result)
					return lookahead{}, false
				}

				node = iterNode

				code, dv, marker, ok = c.getNextOrWriteToResult(node, result, it)
				if !ok {
					return lookahead{}, false
				}

				if !isStarterMarker(marker) {
					*buffer = append(*buffer, collationElement{ccc: 0, code: 0xFFFF, kind: ceTrie, pos: node.pos16()})
					return lookahead{code: code, dv: dv}, true
				}

				tIter = newTrieIter(c.tries, node.nextOffset())
			}

			// The candidate starter wasn't among the possible
			// combinations: write both CEs to the result.
			if iterNode.ccc() != 0 {
				c.writeNodeWeights(node, result)
				c.writeStarter(dv, result)
				return lookahead{}, false
			}
		}
	}

	// Not a starter: stash the trie node, hand the code point back.
	*buffer = append(*buffer, collationElement{ccc: 0, code: uint32(code), kind: ceTrie, pos: node.pos16()})
	return lookahead{code: code, dv: dv}, true
}

// handleTrieNonstartersSequence matches a starter (or non-starter) node's
// children against the pending buffer, which must already be sorted by CCC.
// It walks the trie level by level, advancing through buffer entries whose
// CCC falls below the current trie candidate's, until it finds a CCC-and-
// code match (descending further if that match has children of its own) or
// runs out of either side.
func (c *Collator) handleTrieNonstartersSequence(node trieNode, result *[]uint32, buffer *[]collationElement) {
	tIter := newTrieIter(c.tries, node.nextOffset())
	index := 0

	b := *buffer
	if index >= len(b) {
		c.writeNodeWeights(node, result)
		return
	}
	ce := b[index]

outer:
	for {
	inner:
		for {
			iterNode, ok := tIter.next()
			if !ok {
				break outer
			}
			trieCCC := iterNode.ccc()

			if trieCCC > ce.ccc {
				for {
					index++
					if index >= len(b) {
						break outer
					}
					ce = b[index]
					if ce.ccc >= trieCCC {
						break
					}
				}
			}

			if trieCCC == ce.ccc {
				break inner
			}
		}

		code := ce.code
		trieCode := tIter.currentNode().code()

		if code == trieCode {
			b = append(b[:index], b[index+1:]...)
			node = tIter.currentNode()

			if !node.hasChildren() {
				break outer
			}

			tIter = newTrieIter(c.tries, node.nextOffset())

			if index >= len(b) {
				break outer
			}
			ce = b[index]
		}
	}

	*buffer = b
	c.writeNodeWeights(node, result)
	c.writeBuffer(buffer, result)
	*buffer = (*buffer)[:0]
}

// getNextOrWriteToResult reads the next code point, or if the input is
// exhausted, writes node's own weights to result and reports ok=false.
func (c *Collator) getNextOrWriteToResult(node trieNode, result *[]uint32, it *charsIter) (rune, dataRecord, uint8, bool) {
	code, ok := it.next()
	if !ok {
		c.writeNodeWeights(node, result)
		return 0, 0, 0, false
	}

	dv := c.getDataValue(code)
	return code, dv, dv.marker(), true
}

func (c *Collator) writeNodeWeights(node trieNode, result *[]uint32) {
	*result = append(*result, c.tries[node.weightsOffset():node.nextOffset()]...)
}

func (c *Collator) writeStarter(dv dataRecord, result *[]uint32) {
	if dv.marker() == markerStarterSingleWeights {
		*result = append(*result, dv.singleWeights())
		return
	}
	*result = append(*result, c.getStarterExpansionWeightsSlice(dv)...)
}

// writeBuffer writes a (now CCC-sorted) buffer's resolved weights to
// result. A Trie entry found to have children means the remaining buffered
// entries might still combine with it, so that suffix is handed to
// handleTrieNonstartersSequence instead of being written directly.
func (c *Collator) writeBuffer(buffer *[]collationElement, result *[]uint32) {
	b := *buffer
	for i := 0; i < len(b); i++ {
		ce := b[i]
		switch ce.kind {
		case ceSingleWeights:
			*result = append(*result, ce.weights)
		case ceTrieWeights:
			*result = append(*result, c.tries[ce.pos:ce.pos+uint16(ce.length)]...)
		case ceTrie:
			node := trieNodeFromSlice(c.tries, ce.pos)
			if node.hasChildren() {
				rest := append([]collationElement(nil), b[i+1:]...)
				c.handleTrieNonstartersSequence(node, result, &rest)
				return
			}
			c.writeNodeWeights(node, result)
		default:
			panic("uca: unreachable collation element kind in write buffer")
		}
	}
}

func (c *Collator) getStarterExpansionWeightsSlice(dv dataRecord) []uint32 {
	pos, length := dv.posAndLenOrCCC()
	return c.expansions[pos : pos+uint16(length)]
}

// decompose resolves buffer[0] (a Decomposition or Trie placeholder) into
// its starter node, leaving buffer holding just the non-starters (sorted by
// CCC, including any produced by the decomposition itself).
func (c *Collator) decompose(buffer *[]collationElement) trieNode {
	b := *buffer

	switch b[0].kind {
	case ceTrie:
		pos := b[0].pos
		b = append(b[:0], b[1:]...)
		sortCEByCCC(b)
		*buffer = b
		return trieNodeFromSlice(c.tries, pos)

	case ceDecomposition:
		childrenStart := trieNodeFromSlice(c.tries, b[0].pos).nextOffset()
		tIter := newTrieIter(c.tries, childrenStart)

		starter, _ := tIter.next()

		// Starter + one non-starter is the overwhelmingly common
		// decomposition shape.
		firstNonStarter, _ := tIter.next()
		b[0] = collationElementFromTrieNode(firstNonStarter)

		for {
			nonstarter, ok := tIter.next()
			if !ok {
				break
			}
			b = insertCE(b, 1, collationElementFromTrieNode(nonstarter))
		}

		sortCEByCCC(b)
		*buffer = b
		return starter

	default:
		panic("uca: unreachable collation element kind in decompose")
	}
}

func insertCE(b []collationElement, idx int, ce collationElement) []collationElement {
	b = append(b, collationElement{})
	copy(b[idx+1:], b[idx:len(b)-1])
	b[idx] = ce
	return b
}

func sortCEByCCC(b []collationElement) {
	sort.SliceStable(b, func(i, j int) bool { return b[i].ccc < b[j].ccc })
}

func isStarterMarker(marker uint8) bool {
	return marker == markerStarterSingleWeights || marker == markerStarterExpansion
}
