// internal/adapters/repository/paging.go
package repository

const defaultPageSize = 50

// pageBounds normalises a zero-based page and returns the limit and offset.
func pageBounds(page, size int) (limit, offset int) {
	if size < 1 {
		size = defaultPageSize
	}
	if page < 0 {
		page = 0
	}
	return size, page * size
}
