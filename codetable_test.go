package huffman

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestDeriveCodes(t *testing.T) {
	var freq FrequencyTable
	for i, n := range []uint64{5, 9, 12, 13, 16, 45} {
		freq.Add(Symbol('a'+i), n)
	}
	tree, err := BuildTree(freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup('a') = \"1100\"\n",
		"\tLookup('b') = \"1101\"\n",
		"\tLookup('c') = \"100\"\n",
		"\tLookup('d') = \"101\"\n",
		"\tLookup('e') = \"111\"\n",
		"\tLookup('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := ct.SizeBySymbol()['a' : 'f'+1]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestDeriveCodes_Scenario(t *testing.T) {
	freq := FrequenciesOf([]byte("aaabbc"))
	tree, err := BuildTree(freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)

	expect := map[Symbol]string{'a': `"0"`, 'b': `"11"`, 'c': `"10"`}
	for symbol, code := range expect {
		hc, found := ct.Lookup(symbol)
		if !found {
			t.Errorf("no code for %q", rune(symbol))
			continue
		}
		if hc.String() != code {
			t.Errorf("code for %q: expected %s, got %s", rune(symbol), code, hc)
		}
	}
	if _, found := ct.Lookup('d'); found {
		t.Errorf("unexpected code for 'd'")
	}
	if bits := ct.EncodedBits(freq); bits != 9 {
		t.Errorf("expected 9 payload bits, got %d", bits)
	}
}

func TestDeriveCodes_SingleSymbol(t *testing.T) {
	tree, err := BuildTree(FrequenciesOf([]byte("zzzz")))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)
	hc, found := ct.Lookup('z')
	if !found || hc != MakeCode(1, 0) {
		t.Errorf("expected code \"0\" for 'z', got %s (found=%v)", hc, found)
	}
	if ct.Len() != 1 {
		t.Errorf("expected 1 code, got %d", ct.Len())
	}
}

func TestDeriveCodes_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 50; round++ {
		var freq FrequencyTable
		entries := 1 + rng.Intn(400)
		for i := 0; i < entries; i++ {
			freq.Add(Symbol(rng.Intn(NumSymbols)), uint64(1+rng.Intn(1<<uint(rng.Intn(20)))))
		}
		tree, err := BuildTree(freq)
		if err != nil {
			t.Fatalf("round %d: BuildTree failed: %v", round, err)
		}
		ct := DeriveCodes(tree)

		symbols := freq.Symbols()
		if ct.Len() != len(symbols) {
			t.Fatalf("round %d: expected %d codes, got %d", round, len(symbols), ct.Len())
		}
		for _, a := range symbols {
			ca, found := ct.Lookup(a)
			if !found || ca.Size == 0 {
				t.Fatalf("round %d: no code for %d", round, a)
			}
			for _, b := range symbols {
				if a == b {
					continue
				}
				cb, _ := ct.Lookup(b)
				if cb.HasPrefix(ca) {
					t.Fatalf("round %d: code %s of %d is a prefix of code %s of %d", round, ca, a, cb, b)
				}
			}
		}
	}
}

func TestDeriveCodes_Skewed(t *testing.T) {
	// Fibonacci weights give the deepest possible tree.
	var freq FrequencyTable
	a, b := uint64(1), uint64(1)
	for symbol := 0; symbol < 40; symbol++ {
		freq.Add(Symbol(symbol), a)
		a, b = b, a+b
	}
	tree, err := BuildTree(freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := DeriveCodes(tree)
	if ct.MaxSize() != 39 {
		t.Errorf("expected longest code of 39 bits, got %d", ct.MaxSize())
	}
	if ct.MinSize() != 1 {
		t.Errorf("expected shortest code of 1 bit, got %d", ct.MinSize())
	}
}
