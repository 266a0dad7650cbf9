package sort

import "github.com/go-highway/modesort/hwy"

// sortInsertion shifts each element left past larger neighbours.
func sortInsertion[T hwy.Integers](data []T) {
	for i := 1; i < len(data); i++ {
		v := data[i]
		j := i
		for ; j > 0 && data[j-1] > v; j-- {
			data[j] = data[j-1]
		}
		data[j] = v
	}
}

// sortHeap builds a max-heap in place and repeatedly moves its root to the
// end of the shrinking unsorted prefix.
func sortHeap[T hwy.Integers](data []T) {
	for root := len(data)/2 - 1; root >= 0; root-- {
		siftDown(data, root)
	}
	for end := len(data) - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data[:end], 0)
	}
}

// siftDown restores the heap property below root within heap.
func siftDown[T hwy.Integers](heap []T, root int) {
	for {
		child := 2*root + 1
		if child >= len(heap) {
			return
		}
		if child+1 < len(heap) && heap[child+1] > heap[child] {
			child++
		}
		if heap[root] >= heap[child] {
			return
		}
		heap[root], heap[child] = heap[child], heap[root]
		root = child
	}
}
