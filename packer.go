package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Pack reads r to the end and writes the code of every byte to w, most
// significant bit first.  The final byte is padded with zero bits.  It
// returns the number of payload bits written, padding excluded.
//
// Pack does not close w.
func Pack(w io.Writer, r io.Reader, codes *CodeTable) (uint64, error) {
	br := bufio.NewReader(r)
	bw := bitio.NewWriter(w)

	var bits uint64
	var offset int64
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return bits, fmt.Errorf("reading input at byte %d: %w", offset, err)
		}

		hc, found := codes.Lookup(Symbol(ch))
		if !found {
			return bits, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrUnknownSymbol, ch, offset)
		}
		if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
			return bits, fmt.Errorf("writing payload: %w", err)
		}
		bits += uint64(hc.Size)
		offset++
	}

	if err := bw.Close(); err != nil {
		return bits, fmt.Errorf("writing payload: %w", err)
	}
	log.Debugf("packed %d bytes into %d bits", offset, bits)
	return bits, nil
}

// Unpack decodes the payload read from r against t and writes the recovered
// bytes to w.  Starting at the root, each bit selects the left (0) or right
// (1) child; reaching a leaf emits its symbol and restarts at the root.
//
// Decoding stops once t.Weight() symbols have been emitted.  Any bits left in
// the final byte are padding and are discarded.  A payload that ends before
// that many symbols were decoded is reported as ErrCorruptStream.
//
// Unpack returns the number of bytes written to w.
func Unpack(w io.Writer, r io.Reader, t *Tree) (uint64, error) {
	emitted, _, err := unpack(w, r, t)
	return emitted, err
}

// unpack is Unpack that also reports the number of payload bits consumed,
// padding excluded.
func unpack(w io.Writer, r io.Reader, t *Tree) (uint64, uint64, error) {
	br := bitio.NewReader(bufio.NewReader(r))
	bw := bufio.NewWriter(w)

	want := t.Weight()
	root := t.Root()
	lone := t.IsLeaf(root)

	var emitted uint64
	var consumed uint64
	current := root
	for emitted < want {
		bit, err := br.ReadBool()
		if errors.Is(err, io.EOF) {
			return emitted, consumed, fmt.Errorf("%w: payload ended after %d of %d symbols", ErrCorruptStream, emitted, want)
		}
		if err != nil {
			return emitted, consumed, fmt.Errorf("reading payload: %w", err)
		}
		consumed++

		if lone {
			if bit {
				return emitted, consumed, fmt.Errorf("%w: unexpected 1 bit at %d for a single-symbol tree", ErrCorruptStream, consumed-1)
			}
		} else {
			left, right := t.Children(current)
			next := left
			if bit {
				next = right
			}
			if next < 0 || int(next) >= t.NumNodes() {
				return emitted, consumed, fmt.Errorf("%w: dead end below node %d at bit %d", ErrCorruptStream, current, consumed-1)
			}
			current = next
			if !t.IsLeaf(current) {
				continue
			}
		}

		if err := bw.WriteByte(byte(t.SymbolAt(current))); err != nil {
			return emitted, consumed, fmt.Errorf("writing output: %w", err)
		}
		emitted++
		current = root
	}

	if err := bw.Flush(); err != nil {
		return emitted, consumed, fmt.Errorf("writing output: %w", err)
	}
	log.Debugf("unpacked %d bits into %d bytes", consumed, emitted)
	return emitted, consumed, nil
}
