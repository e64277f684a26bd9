package goquery_test

import (
	"testing"

	"github.com/fwojciec/schemagen/goquery"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00.000Z"},
		{"2024-01-15T10:30:00+02:00", "2024-01-15T08:30:00.000Z"},
		{"  2023-06-30  ", "2023-06-30T00:00:00.000Z"},
		{"March 5, 2024", "2024-03-05T00:00:00.000Z"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goquery.NormalizeDate(tt.in))
		})
	}
}
