package params

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// QueryParams holds common list-endpoint query parameters
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// ParseQueryParams builds QueryParams from raw query values, falling back to
// defaults for missing or invalid input.
func ParseQueryParams(page, size string) QueryParams {
	p := QueryParams{PageNumber: 1, PageSize: DefaultPageSize}

	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(size); err == nil && n > 0 {
		p.PageSize = n
		if p.PageSize > MaxPageSize {
			p.PageSize = MaxPageSize
		}
	}

	return p
}
