// Package huffman implements a lossless byte-stream compressor built on
// Huffman codes.  The compressed form is a small header carrying the symbol
// frequencies, followed by the bit-packed payload.  The decompressor rebuilds
// the identical tree from the frequencies, so the tree itself is never
// transmitted.
//
// Layout of a compressed stream, little-endian:
//
//	offset 0   4 bytes  magic "huff"
//	offset 4   8 bytes  entry count
//	per entry: 1 byte symbol, 8 bytes frequency
//	payload:   codes packed most-significant-bit first, zero-padded
//
// The number of symbols in the payload is the sum of the frequencies, which
// lets the decoder tell padding bits apart from real ones.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
