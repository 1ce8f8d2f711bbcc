package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "no tags here", []string{}},
		{"single", "build a #solar charger", []string{"solar"}},
		{"multiple", "#Solar power for #rural areas #solar", []string{"solar", "rural"}},
		{"punctuation", "ship it (#mvp!) with #go_lang", []string{"mvp", "go_lang"}},
		{"bare hash", "just a # sign", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHashtags(tt.text))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"#Solar", "solar", "  Wind ", "", "#"})
	assert.Equal(t, []string{"solar", "wind"}, got)
}

func TestNormalizePageParams(t *testing.T) {
	page, limit := NormalizePageParams(0, 0, DefaultPageSize)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePageParams(3, 500, DefaultSearchPageSize)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)

	page, limit = NormalizePageParams(2, 50, DefaultPageSize)
	assert.Equal(t, 2, page)
	assert.Equal(t, 50, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 2, 10)
	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 10, info.Limit)
	assert.Equal(t, int64(42), info.Total)
}
