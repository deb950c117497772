package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic is the marker every compressed stream starts with.
const Magic = "huff"

const (
	magicSize = len(Magic)
	countSize = 8
	entrySize = 1 + 8
)

// HeaderSize returns the number of bytes WriteHeader emits for freq.
func HeaderSize(freq FrequencyTable) int {
	return magicSize + countSize + entrySize*freq.Len()
}

// WriteHeader serializes freq: the magic marker, the entry count, and one
// (symbol, frequency) pair per present symbol, in descending symbol order.
func WriteHeader(w io.Writer, freq FrequencyTable) error {
	buf := make([]byte, 0, HeaderSize(freq))
	buf = append(buf, Magic...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(freq.Len()))

	symbols := freq.Symbols()
	for i := len(symbols) - 1; i >= 0; i-- {
		symbol := symbols[i]
		buf = append(buf, byte(symbol))
		buf = binary.LittleEndian.AppendUint64(buf, freq.Count(symbol))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// ReadHeader parses a header written by WriteHeader.  The magic marker is
// checked before anything else is read.
func ReadHeader(r io.Reader) (FrequencyTable, error) {
	var magic [magicSize]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return FrequencyTable{}, headerReadError("magic", err)
	}
	if !bytes.Equal(magic[:], []byte(Magic)) {
		return FrequencyTable{}, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, magic[:])
	}

	var raw [countSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return FrequencyTable{}, headerReadError("entry count", err)
	}
	count := binary.LittleEndian.Uint64(raw[:])
	if count == 0 || count > NumSymbols {
		return FrequencyTable{}, fmt.Errorf("%w: entry count %d out of range [1, %d]", ErrInvalidFormat, count, NumSymbols)
	}

	var freq FrequencyTable
	var total uint64
	var entry [entrySize]byte
	for i := uint64(0); i < count; i++ {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return FrequencyTable{}, headerReadError(fmt.Sprintf("entry %d", i), err)
		}
		symbol := Symbol(entry[0])
		n := binary.LittleEndian.Uint64(entry[1:])
		switch {
		case n == 0:
			return FrequencyTable{}, fmt.Errorf("%w: entry %d: symbol %d has zero frequency", ErrInvalidFormat, i, symbol)
		case freq.Count(symbol) != 0:
			return FrequencyTable{}, fmt.Errorf("%w: entry %d: duplicate symbol %d", ErrInvalidFormat, i, symbol)
		case total+n < total:
			return FrequencyTable{}, fmt.Errorf("%w: entry %d: total frequency overflows", ErrInvalidFormat, i)
		}
		total += n
		freq.Add(symbol, n)
	}
	return freq, nil
}

func headerReadError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated header at %s", ErrInvalidFormat, what)
	}
	return fmt.Errorf("reading header %s: %w", what, err)
}
