package seq

import "cmp"

// MergeSort sorts the given slice by the key function, splitting items
// between halves by index parity. The input is not modified.
func MergeSort[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	var left, right []T
	for i, v := range items {
		if i%2 == 0 {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	return merge(MergeSort(left, key), MergeSort(right, key), key)
}

// merge combines two sorted slices into one sorted slice.
func merge[T any, K cmp.Ordered](left, right []T, key func(T) K) []T {
	result := make([]T, 0, len(left)+len(right))
	for len(left) > 0 && len(right) > 0 {
		if key(left[0]) <= key(right[0]) {
			result = append(result, left[0])
			left = left[1:]
		} else {
			result = append(result, right[0])
			right = right[1:]
		}
	}
	result = append(result, left...)
	return append(result, right...)
}
