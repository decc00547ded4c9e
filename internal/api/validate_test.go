package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRequired(t *testing.T) {
	t.Parallel()

	rules := []Rule{
		{Field: "title", Message: "title missing"},
		{Field: "description", Message: "description missing"},
	}

	tests := []struct {
		name   string
		fields map[string]string
		want   []string
	}{
		{
			name:   "all fields present",
			fields: map[string]string{"title": "Go", "description": "learn Go"},
			want:   nil,
		},
		{
			name:   "one field missing",
			fields: map[string]string{"title": "Go"},
			want:   []string{"description missing"},
		},
		{
			name:   "all fields missing are collected, in rule order",
			fields: map[string]string{},
			want:   []string{"title missing", "description missing"},
		},
		{
			name:   "empty string fails",
			fields: map[string]string{"title": "", "description": "ok"},
			want:   []string{"title missing"},
		},
		{
			name:   "whitespace-only string fails",
			fields: map[string]string{"title": "   \t", "description": "ok"},
			want:   []string{"title missing"},
		},
		{
			name:   "extra fields are ignored",
			fields: map[string]string{"title": "Go", "description": "ok", "bogus": ""},
			want:   nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := CheckRequired(rules, test.fields)
			assert.Equal(t, test.want, got)
		})
	}
}
