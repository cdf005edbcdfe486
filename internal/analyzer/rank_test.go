package analyzer

import (
	"reflect"
	"testing"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		limit  int
		want   []TokenCount
	}{
		{
			name:   "descending by count with limit",
			tokens: []string{"go", "go", "rust", "go", "rust"},
			limit:  2,
			want:   []TokenCount{{"go", 3}, {"rust", 2}},
		},
		{
			name:   "ties break by first occurrence",
			tokens: []string{"docker", "kubernetes", "docker", "kubernetes", "grpc"},
			limit:  3,
			want:   []TokenCount{{"docker", 2}, {"kubernetes", 2}, {"grpc", 1}},
		},
		{
			name:   "zero limit returns all",
			tokens: []string{"a1", "b2", "a1"},
			limit:  0,
			want:   []TokenCount{{"a1", 2}, {"b2", 1}},
		},
		{
			name:   "limit larger than distinct count",
			tokens: []string{"go"},
			limit:  50,
			want:   []TokenCount{{"go", 1}},
		},
		{
			name:   "empty input",
			tokens: nil,
			limit:  10,
			want:   []TokenCount{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.tokens, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankTieBreakIsDeterministic(t *testing.T) {
	// All counts equal: output order must follow input order, every run.
	tokens := []string{"e5", "d4", "c3", "b2", "a1"}
	want := []TokenCount{{"e5", 1}, {"d4", 1}, {"c3", 1}, {"b2", 1}, {"a1", 1}}
	for i := 0; i < 20; i++ {
		if got := Rank(tokens, 0); !reflect.DeepEqual(got, want) {
			t.Fatalf("Rank() = %v, want %v", got, want)
		}
	}
}
