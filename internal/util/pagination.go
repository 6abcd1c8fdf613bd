package util

// DefaultPageSize matches the product grid: nine cards per page.
const DefaultPageSize = 9

// Calculate clamps page/size and converts them to a slice offset.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = DefaultPageSize
	}
	from = (page - 1) * size
	return from, size
}

// Page returns the page'th window of items and the total page count.
func Page[T any](items []T, page, size int) ([]T, int) {
	from, limit := Calculate(page, size)
	totalPages := (len(items) + limit - 1) / limit
	if from >= len(items) {
		return nil, totalPages
	}
	to := from + limit
	if to > len(items) {
		to = len(items)
	}
	return items[from:to], totalPages
}
