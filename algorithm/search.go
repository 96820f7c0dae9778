package algorithm

// BinarySearch searches for a target in the sorted slice s.
//
// cmp compares the target with the element at index:
// negative if the target sorts before the element,
// positive if after, zero if equal. The target is captured by cmp.
//
// Returns the index of the target in s, or -1 if it is not present.
func BinarySearch[T any](s []T, cmp func(index int, element T) int) int {
	leftIdx, rightIdx := 0, len(s)-1

	for leftIdx <= rightIdx {
		midIdx := leftIdx + (rightIdx-leftIdx)/2
		res := cmp(midIdx, s[midIdx])

		switch {
		case res == 0:
			return midIdx
		case res < 0:
			rightIdx = midIdx - 1
		default:
			leftIdx = midIdx + 1
		}
	}

	return -1
}
