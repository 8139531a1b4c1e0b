// Package utils
package utils

func Find[T any](src []*T, comparator func(element *T) bool) *T {
	for _, v := range src {
		if comparator(v) {
			return v
		}
	}
	return nil
}

func Filter[T any](src []*T, filter func(element *T) bool) (result []*T) {
	result = make([]*T, 0, len(src))
	for _, v := range src {
		if filter(v) {
			result = append(result, v)
		}
	}
	return
}

func ForEach[T any](src []*T, callback func(element *T)) {
	for _, v := range src {
		callback(v)
	}
}

func ReverseForEach[T any](slice []T, f func(index int, value T)) {
	for i := len(slice) - 1; i >= 0; i-- {
		f(i, slice[i])
	}
}
