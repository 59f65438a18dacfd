package domain

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
	MaxPage         = 100000
)

// Paginate turns a 1-based page and a page size into LIMIT/OFFSET values.
// Out of range input falls back to the first page and the default size; pages past
// MaxPage are clamped so the offset cannot overflow.
func Paginate(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return limit, (page - 1) * limit
}
