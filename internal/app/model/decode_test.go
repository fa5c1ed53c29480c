package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeGallery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "JSON array",
			raw:  `["/a.jpg","/b.jpg"]`,
			want: []string{"/a.jpg", "/b.jpg"},
		},
		{
			name: "Empty column",
			raw:  "",
			want: []string{},
		},
		{
			name: "Whitespace only",
			raw:  "   ",
			want: []string{},
		},
		{
			name: "Broken JSON decodes to empty",
			raw:  `["/a.jpg",`,
			want: []string{},
		},
		{
			name: "Non-array JSON decodes to empty",
			raw:  `{"image":"/a.jpg"}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeGallery(tt.raw))
		})
	}
}

func TestDecodeIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{
			name: "JSON array",
			raw:  "[3,1,2]",
			want: []int64{3, 1, 2},
		},
		{
			name: "Comma separated legacy form",
			raw:  "3, 1,2",
			want: []int64{3, 1, 2},
		},
		{
			name: "Empty column",
			raw:  "",
			want: nil,
		},
		{
			name: "Malformed comma entries dropped",
			raw:  "3,x,2",
			want: []int64{3, 2},
		},
		{
			name: "Broken JSON",
			raw:  "[3,1",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeIDList(tt.raw))
		})
	}
}
