package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Stats describes one compression or decompression run.
type Stats struct {
	// InputBytes is the length of the uncompressed data.
	InputBytes uint64

	// OutputBytes is the length of the compressed data, header included.
	OutputBytes uint64

	// Symbols is the number of distinct byte values in the data.
	Symbols int

	// PayloadBits is the number of code bits in the payload, padding
	// excluded.
	PayloadBits uint64

	// Codes is the code table the payload was packed with.  Only Compress
	// sets it.
	Codes *CodeTable
}

// Ratio returns OutputBytes / InputBytes, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

// String returns a one-line human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d bytes <-> %d bytes (%.2f%%), %d symbols, %d payload bits",
		s.InputBytes, s.OutputBytes, 100*s.Ratio(), s.Symbols, s.PayloadBits)
}

var _ fmt.Stringer = Stats{}

func payloadBytes(bits uint64) uint64 {
	return (bits + 7) / 8
}

// Compress reads src twice, once to count the byte frequencies and once,
// after rewinding it, to encode it, and writes the compressed stream to dst.
//
// An empty src is rejected with ErrEmptyAlphabet.  On error, whatever was
// already written to dst is incomplete and should be discarded.
func Compress(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	freq, err := CountFrequencies(src)
	if err != nil {
		return Stats{}, err
	}
	log.Debugf("counted %d symbols over %d bytes", freq.Len(), freq.Total())

	t, err := BuildTree(freq)
	if err != nil {
		return Stats{}, err
	}
	codes := DeriveCodes(t)

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Stats{}, fmt.Errorf("rewinding input: %w", err)
	}

	bw := bufio.NewWriter(dst)
	if err := WriteHeader(bw, freq); err != nil {
		return Stats{}, err
	}
	bits, err := Pack(bw, src, codes)
	if err != nil {
		return Stats{}, err
	}
	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("writing output: %w", err)
	}

	stats := Stats{
		InputBytes:  freq.Total(),
		OutputBytes: uint64(HeaderSize(freq)) + payloadBytes(bits),
		Symbols:     freq.Len(),
		PayloadBits: bits,
		Codes:       codes,
	}
	log.Debugf("compressed %v", stats)
	return stats, nil
}

// Decompress reads a compressed stream from src and writes the original data
// to dst.
func Decompress(dst io.Writer, src io.Reader) (Stats, error) {
	br := bufio.NewReader(src)

	freq, err := ReadHeader(br)
	if err != nil {
		return Stats{}, err
	}
	log.Debugf("header: %d symbols, %d bytes expected", freq.Len(), freq.Total())

	t, err := BuildTree(freq)
	if err != nil {
		return Stats{}, err
	}

	n, bits, err := unpack(dst, br, t)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		InputBytes:  n,
		OutputBytes: uint64(HeaderSize(freq)) + payloadBytes(bits),
		Symbols:     freq.Len(),
		PayloadBits: bits,
	}
	log.Debugf("decompressed %v", stats)
	return stats, nil
}

// CompressBytes is the in-memory form of Compress.
func CompressBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(p)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes is the in-memory form of Decompress.
func DecompressBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(p)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
