package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryParams(t *testing.T) {
	tests := []struct {
		name       string
		page, size string
		want       QueryParams
	}{
		{"defaults", "", "", QueryParams{PageNumber: 1, PageSize: DefaultPageSize}},
		{"explicit", "3", "50", QueryParams{PageNumber: 3, PageSize: 50}},
		{"size clamped", "1", "500", QueryParams{PageNumber: 1, PageSize: MaxPageSize}},
		{"garbage ignored", "abc", "-2", QueryParams{PageNumber: 1, PageSize: DefaultPageSize}},
		{"zero page ignored", "0", "10", QueryParams{PageNumber: 1, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQueryParams(tt.page, tt.size))
		})
	}
}
