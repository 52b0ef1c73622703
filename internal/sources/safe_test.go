package sources

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		name string
		fn   func() ([]int, error)
		want []int
	}{
		{
			name: "records pass through",
			fn:   func() ([]int, error) { return []int{1, 2, 3}, nil },
			want: []int{1, 2, 3},
		},
		{
			name: "error yields empty",
			fn:   func() ([]int, error) { return []int{1}, errors.New("boom") },
			want: []int{},
		},
		{
			name: "panic yields empty",
			fn:   func() ([]int, error) { panic("index out of range") },
			want: []int{},
		},
		{
			name: "nil records become empty",
			fn:   func() ([]int, error) { return nil, nil },
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect("test", tt.fn)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Source: "arxiv", StatusCode: 503, Status: "Service Unavailable"}
	assert.Equal(t, "arxiv: unexpected status 503 Service Unavailable", err.Error())
}
