package query

// DefaultPageSize is used when a caller supplies no limit or an
// invalid one.
const DefaultPageSize = 10

// Page is a normalized 1-indexed pagination window.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes raw page/limit values: page < 1 becomes 1 and
// limit < 1 becomes DefaultPageSize, so an offset can never be
// negative and a window can never be empty or unbounded.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of records to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the window size.
func (p Page) Limit() int {
	return p.Size
}

// PageMeta describes the pagination state of a result set.
type PageMeta struct {
	TotalCount  int64
	TotalPages  int64
	CurrentPage int
}

// Meta computes pagination metadata for a total match count.
// TotalPages is ceil(total/limit); zero matches mean zero pages.
func (p Page) Meta(total int64) PageMeta {
	var pages int64
	if total > 0 {
		pages = (total + int64(p.Size) - 1) / int64(p.Size)
	}
	return PageMeta{
		TotalCount:  total,
		TotalPages:  pages,
		CurrentPage: p.Number,
	}
}
