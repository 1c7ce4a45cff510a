package algo

import "cmp"

// maxHeapify sinks the element at root so the subtree rooted there
// satisfies the max-heap property over s[:n].
func maxHeapify[T cmp.Ordered](s []T, n, root int) {
	largest := root
	left := 2*root + 1
	right := left + 1

	if left < n && s[largest] < s[left] {
		largest = left
	}
	if right < n && s[largest] < s[right] {
		largest = right
	}
	if largest != root {
		s[root], s[largest] = s[largest], s[root]
		maxHeapify(s, n, largest)
	}
}

// MakeHeap rearranges s into a max-heap
func MakeHeap[T cmp.Ordered](s []T) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		maxHeapify(s, len(s), i)
	}
}

// IsHeap reports whether s satisfies the max-heap property
func IsHeap[T cmp.Ordered](s []T) bool {
	for i := range s {
		left := 2*i + 1
		right := left + 1
		if left < len(s) && s[i] < s[left] {
			return false
		}
		if right < len(s) && s[i] < s[right] {
			return false
		}
	}
	return true
}

// HeapSort sorts s in place in ascending order
func HeapSort[T cmp.Ordered](s []T) {
	MakeHeap(s)
	for n := len(s) - 1; n > 0; n-- {
		s[0], s[n] = s[n], s[0]
		maxHeapify(s, n, 0)
	}
}
