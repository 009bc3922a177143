package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// RemoveFirst deletes the first occurrence of item, reporting whether one
// was found.
func RemoveFirst[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	return append(slice[:i], slice[i+1:]...), true
}

// SubtractAll deletes one occurrence per item, reporting whether every
// item was found.
func SubtractAll[T comparable](slice []T, items []T) ([]T, bool) {
	ok := true
	for _, item := range items {
		var found bool
		slice, found = RemoveFirst(slice, item)
		ok = ok && found
	}
	return slice, ok
}
