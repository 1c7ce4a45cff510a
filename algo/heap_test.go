package algo

import "testing"

func TestMakeHeap(t *testing.T) {
	s := []int{3, 9, 2, 1, 4, 5}
	if IsHeap(s) {
		t.Fatal("unsorted input reported as heap")
	}
	MakeHeap(s)
	if !IsHeap(s) {
		t.Fatalf("MakeHeap result not a heap: %v", s)
	}
	if s[0] != 9 {
		t.Errorf("heap root = %d, want 9", s[0])
	}
}

func TestIsHeapEdges(t *testing.T) {
	if !IsHeap([]int{}) {
		t.Error("empty slice is trivially a heap")
	}
	if !IsHeap([]int{42}) {
		t.Error("single element is trivially a heap")
	}
	if !IsHeap([]int{5, 5, 5}) {
		t.Error("equal elements form a heap")
	}
}

func TestHeapSort(t *testing.T) {
	cases := [][]int{
		{5, 2, 9, 1, 7, 3},
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{2, 2, 1, 1, 3, 3},
		{42},
		{},
	}
	for _, s := range cases {
		HeapSort(s)
		for i := 1; i < len(s); i++ {
			if s[i-1] > s[i] {
				t.Errorf("not sorted: %v", s)
				break
			}
		}
	}
}

func TestHeapSortStrings(t *testing.T) {
	s := []string{"run", "cooldown", "warmup"}
	HeapSort(s)
	if s[0] != "cooldown" || s[2] != "warmup" {
		t.Errorf("sorted = %v", s)
	}
}
