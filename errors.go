package huffman

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is returned when a tree is requested for a
	// frequency table with no symbols, e.g. for an empty input.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrEmptyContainer is returned when the priority queue underflows.
	// Tree construction never lets this happen.
	ErrEmptyContainer = errors.New("huffman: priority queue is empty")

	// ErrUnknownSymbol is returned when the input contains a byte that has
	// no code, i.e. the frequency table was built from different data.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrInvalidFormat is returned for a header with the wrong magic or one
	// that is truncated or inconsistent.
	ErrInvalidFormat = errors.New("huffman: invalid format")

	// ErrCorruptStream is returned when the payload does not decode against
	// the tree rebuilt from the header.
	ErrCorruptStream = errors.New("huffman: corrupt stream")
)
