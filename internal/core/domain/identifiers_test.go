package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/core/domain"
)

func identifiers(texts ...string) []rcstring.SharedString {
	ids := make([]rcstring.SharedString, len(texts))
	for i, s := range texts {
		ids[i] = rcstring.New(s)
	}
	return ids
}

func texts(ids []rcstring.SharedString) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func TestSortIdentifiers(t *testing.T) {
	tests := []struct {
		name       string
		input      []string
		descending bool
		unique     bool
		want       []string
	}{
		{
			name:  "ascending",
			input: []string{"GO:0120113", "GO:0005737", "GO:0061630"},
			want:  []string{"GO:0005737", "GO:0061630", "GO:0120113"},
		},
		{
			name:       "descending",
			input:      []string{"GO:0120113", "GO:0005737", "GO:0061630"},
			descending: true,
			want:       []string{"GO:0120113", "GO:0061630", "GO:0005737"},
		},
		{
			name:   "unique drops repeated content",
			input:  []string{"b", "a", "b", "c", "a", "b"},
			unique: true,
			want:   []string{"a", "b", "c"},
		},
		{
			name:       "unique descending",
			input:      []string{"b", "a", "b"},
			descending: true,
			unique:     true,
			want:       []string{"b", "a"},
		},
		{
			name:   "empty input",
			input:  []string{},
			unique: true,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SortIdentifiers(identifiers(tt.input...), tt.descending, tt.unique)
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestSortIdentifiers_UniqueKeepsSurvivorsCounted(t *testing.T) {
	got := domain.SortIdentifiers(identifiers("x", "x", "y"), false, true)

	for _, id := range got {
		assert.Equal(t, int64(1), id.LiveHandleCount(), "survivor %q", id)
	}
}
