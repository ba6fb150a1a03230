package batch

import "testing"

func TestChunkEvenlyDivides(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	got := Chunk(items, 2)
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(got))
	}
	if got[0][0] != 1 || got[2][1] != 6 {
		t.Fatalf("unexpected chunk contents: %v", got)
	}
}

func TestChunkWithRemainder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got := Chunk(items, 2)
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(got))
	}
	if len(got[2]) != 1 || got[2][0] != 5 {
		t.Fatalf("expected trailing chunk of size 1 containing 5, got %v", got[2])
	}
}

func TestChunkEmpty(t *testing.T) {
	if got := Chunk([]int{}, 10); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestChunkLargerThanInput(t *testing.T) {
	items := []string{"a", "b"}
	got := Chunk(items, 100)
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("expected single chunk with both items, got %v", got)
	}
}

func TestChunkPanicsOnNonPositiveSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive chunk size")
		}
	}()
	Chunk([]int{1}, 0)
}
