package importer

import "testing"

func TestChunkCoversEveryRecordInOrder(t *testing.T) {
	items := make([]int, 157)
	for i := range items {
		items[i] = i
	}

	batches := chunk(items, 75)

	if len(batches) != 3 {
		t.Fatalf("expected ceil(157/75)=3 batches, got %d", len(batches))
	}
	if len(batches[0]) != 75 || len(batches[1]) != 75 || len(batches[2]) != 7 {
		t.Fatalf("unexpected batch sizes %d/%d/%d", len(batches[0]), len(batches[1]), len(batches[2]))
	}

	var flat []int
	for _, batch := range batches {
		flat = append(flat, batch...)
	}
	if len(flat) != len(items) {
		t.Fatalf("concatenation lost records: %d != %d", len(flat), len(items))
	}
	for i, v := range flat {
		if v != i {
			t.Fatalf("order broken at index %d: got %d", i, v)
		}
	}
}

func TestChunkExactMultiple(t *testing.T) {
	batches := chunk(make([]string, 150), 75)
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if len(batches[1]) != 75 {
		t.Fatalf("expected full final batch, got %d", len(batches[1]))
	}
}

func TestChunkDegenerateInputs(t *testing.T) {
	if got := chunk([]int{}, 75); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := chunk([]int{1, 2}, 0); got != nil {
		t.Fatalf("expected nil for non-positive size, got %v", got)
	}
	if got := chunk([]int{1, 2}, 10); len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("expected single short batch, got %v", got)
	}
}
