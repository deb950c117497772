package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable maps each Symbol to its number of occurrences.  A Symbol
// with a count of zero is absent from the table.
type FrequencyTable struct {
	counts [NumSymbols]uint64
	length int
}

// CountFrequencies reads r to the end and counts every byte exactly once.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var freq FrequencyTable
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		for _, ch := range buf[:n] {
			freq.Add(Symbol(ch), 1)
		}
		if err == io.EOF {
			return freq, nil
		}
		if err != nil {
			return FrequencyTable{}, fmt.Errorf("counting frequencies: %w", err)
		}
	}
}

// FrequenciesOf counts the bytes of p.
func FrequenciesOf(p []byte) FrequencyTable {
	freq, _ := CountFrequencies(bytes.NewReader(p))
	return freq
}

// Add increases the count of symbol by n.
func (freq *FrequencyTable) Add(symbol Symbol, n uint64) {
	if n == 0 {
		return
	}
	if freq.counts[symbol] == 0 {
		freq.length++
	}
	freq.counts[symbol] += n
}

// Merge adds every count of other into freq.  Tables counted over separate
// segments of an input merge into the table of the whole input.
func (freq *FrequencyTable) Merge(other FrequencyTable) {
	for symbol := 0; symbol < NumSymbols; symbol++ {
		freq.Add(Symbol(symbol), other.counts[symbol])
	}
}

// Count returns the number of occurrences of symbol.
func (freq FrequencyTable) Count(symbol Symbol) uint64 {
	return freq.counts[symbol]
}

// Len returns the number of distinct symbols present.
func (freq FrequencyTable) Len() int {
	return freq.length
}

// Total returns the sum of all counts.
func (freq FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range freq.counts {
		total += n
	}
	return total
}

// Symbols returns the present symbols in ascending order.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, freq.length)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq.counts[symbol] != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Equal reports whether both tables hold the same counts.
func (freq FrequencyTable) Equal(other FrequencyTable) bool {
	return freq.counts == other.counts
}

// String returns a compact representation such as "{'a':3, 'b':2}".
func (freq FrequencyTable) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, symbol := range freq.Symbols() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%q:%d", rune(symbol), freq.counts[symbol])
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = FrequencyTable{}
