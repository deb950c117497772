package huffman

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNodeQueue_ExtractMinIsLowest(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		q := newNodeQueue(0)
		n := 1 + rng.Intn(300)
		for i := 0; i < n; i++ {
			q.insert(int32(i), uint64(rng.Intn(20)))
		}

		var last uint64
		for i := 0; i < n; i++ {
			peek, err := q.peekMin()
			if err != nil {
				t.Fatalf("round %d: peekMin failed: %v", round, err)
			}
			item, err := q.extractMin()
			if err != nil {
				t.Fatalf("round %d: extractMin failed: %v", round, err)
			}
			if peek != item {
				t.Errorf("round %d: peekMin %+v != extractMin %+v", round, peek, item)
			}
			for _, rest := range q.list {
				if rest.weight < item.weight {
					t.Fatalf("round %d: extracted %d while %d remains", round, item.weight, rest.weight)
				}
			}
			if item.weight < last {
				t.Fatalf("round %d: weights not ascending: %d after %d", round, item.weight, last)
			}
			last = item.weight
		}
		if q.Len() != 0 {
			t.Errorf("round %d: expected empty queue, got %d", round, q.Len())
		}
	}
}

func TestNodeQueue_TiesInInsertionOrder(t *testing.T) {
	q := newNodeQueue(4)
	q.insert(10, 7)
	q.insert(11, 3)
	q.insert(12, 7)
	q.insert(13, 3)

	expect := []int32{11, 13, 10, 12}
	for i, index := range expect {
		item, err := q.extractMin()
		if err != nil {
			t.Fatalf("extractMin failed: %v", err)
		}
		if item.index != index {
			t.Errorf("extraction %d: expected node %d, got %d", i, index, item.index)
		}
	}
}

func TestNodeQueue_Empty(t *testing.T) {
	q := newNodeQueue(0)
	if _, err := q.extractMin(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("extractMin: expected ErrEmptyContainer, got %v", err)
	}
	if _, err := q.peekMin(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("peekMin: expected ErrEmptyContainer, got %v", err)
	}
}
