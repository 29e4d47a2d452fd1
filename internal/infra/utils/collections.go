package utils

func Map[T any, K any](items []T, fn func(T) K) []K {
	result := make([]K, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}

// Unique keeps the first occurrence of every item, preserving order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

func Keys[K comparable, V any](items map[K]V) []K {
	result := make([]K, 0, len(items))
	for k := range items {
		result = append(result, k)
	}
	return result
}
