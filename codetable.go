package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol of a Tree to its code.  It is immutable once
// derived.
type CodeTable struct {
	codes   [NumSymbols]Code
	length  int
	minSize byte
	maxSize byte
}

// DeriveCodes walks the tree depth-first and records, for every leaf, the
// path from the root: 0 for each left edge, 1 for each right edge.
//
// A tree consisting of a single leaf has no edges; its symbol is assigned the
// one-bit code "0".
func DeriveCodes(t *Tree) *CodeTable {
	ct := &CodeTable{}

	root := t.Root()
	if t.IsLeaf(root) {
		ct.set(t.SymbolAt(root), MakeCode(1, 0))
		return ct
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed; the depth of the stack is the length
	// of the code of any leaf found below its top.

	type stackItem struct {
		index int32
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.NumLeaves()))+1)

	processChild := func(child int32, code Code) {
		assert.Assertf(code.Size <= MaxCodeSize, "code for node %d exceeds %d bits", child, MaxCodeSize)
		if !t.IsLeaf(child) {
			stack = append(stack, stackItem{index: child, code: code})
			return
		}
		ct.set(t.SymbolAt(child), code)
	}

	stack = append(stack, stackItem{index: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		left, right := t.Children(top.index)
		switch x {
		case 0:
			processChild(left, top.code.Append(0))
		case 1:
			processChild(right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}

	assert.Assertf(ct.length == t.NumLeaves(), "derived %d codes for %d leaves", ct.length, t.NumLeaves())
	log.Debugf("derived %d codes, sizes %d .. %d bits", ct.length, ct.minSize, ct.maxSize)
	return ct
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	if ct.length == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[symbol] = hc
	ct.length++
}

// Lookup returns the code of symbol.  The second result is false if the
// symbol has no code.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.length
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol,
// 0 for symbols without a code.
func (ct *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// EncodedBits returns the length in bits of the payload for an input with
// the given frequencies.
func (ct *CodeTable) EncodedBits(freq FrequencyTable) uint64 {
	var total uint64
	for _, symbol := range freq.Symbols() {
		total += freq.Count(symbol) * uint64(ct.codes[symbol].Size)
	}
	return total
}

// Dump writes a programmer-readable listing of the codes to the given
// writer, one symbol per line.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := ct.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tLookup(%q) = %s\n", rune(symbol), hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
