package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// noChild marks the child slots of a leaf.
const noChild = int32(-1)

type node struct {
	weight uint64
	left   int32
	right  int32
	symbol Symbol
}

func (n node) isLeaf() bool {
	return n.left == noChild && n.right == noChild
}

// Tree is a Huffman tree stored as an arena of nodes addressed by index.
// Leaves come first, in ascending symbol order, followed by the internal
// nodes in the order they were created; the root is always the last node.
type Tree struct {
	nodes     []node
	numLeaves int
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// The two lightest nodes are repeatedly combined into a new internal node
// whose left child is the first one extracted and whose right child is the
// second.  A table with a single symbol yields a tree whose root is that
// symbol's leaf.
func BuildTree(freq FrequencyTable) (*Tree, error) {
	numLeaves := freq.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyAlphabet
	}

	t := &Tree{
		nodes:     make([]node, 0, 2*numLeaves-1),
		numLeaves: numLeaves,
	}

	q := newNodeQueue(numLeaves)
	for _, symbol := range freq.Symbols() {
		index := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{
			weight: freq.Count(symbol),
			left:   noChild,
			right:  noChild,
			symbol: symbol,
		})
		q.insert(index, freq.Count(symbol))
	}

	for q.Len() > 1 {
		a, err := q.extractMin()
		if err != nil {
			return nil, err
		}
		b, err := q.extractMin()
		if err != nil {
			return nil, err
		}

		sum := a.weight + b.weight
		assert.Assertf(sum >= a.weight, "weight overflow: %d + %d", a.weight, b.weight)

		index := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{weight: sum, left: a.index, right: b.index})
		q.insert(index, sum)
	}

	root, err := q.extractMin()
	if err != nil {
		return nil, err
	}
	assert.Assertf(int(root.index) == len(t.nodes)-1, "root %d is not the last node of %d", root.index, len(t.nodes))

	log.Debugf("built tree: %d leaves, %d nodes, weight %d", t.numLeaves, len(t.nodes), root.weight)
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 {
	return int32(len(t.nodes)) - 1
}

// NumLeaves returns the number of leaves, which equals the number of distinct
// symbols the tree was built from.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// NumNodes returns the number of nodes, leaves included.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// Weight returns the weight of the root, i.e. the total number of symbols
// counted in the frequency table.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.Root()].weight
}

// IsLeaf reports whether the node at index is a leaf.
func (t *Tree) IsLeaf(index int32) bool {
	return t.nodes[index].isLeaf()
}

// Children returns the left and right child of the node at index.  Both are
// negative for a leaf.
func (t *Tree) Children(index int32) (left int32, right int32) {
	n := t.nodes[index]
	return n.left, n.right
}

// SymbolAt returns the symbol of the leaf at index.
func (t *Tree) SymbolAt(index int32) Symbol {
	return t.nodes[index].symbol
}

// WeightAt returns the weight of the node at index.
func (t *Tree) WeightAt(index int32) uint64 {
	return t.nodes[index].weight
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	for index, n := range t.nodes {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\t%d: leaf %q weight=%d\n", index, rune(n.symbol), n.weight)
		} else {
			fmt.Fprintf(&buf, "\t%d: node (%d, %d) weight=%d\n", index, n.left, n.right, n.weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
