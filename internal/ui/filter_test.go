package ui

import (
	"reflect"
	"testing"

	"github.com/sahilm/fuzzy"

	"flipview/internal/transcript"
)

func TestFilterBySubstring(t *testing.T) {
	base := []string{"hello world", "foo bar", "hello bar"}
	cfg := FilterConfig{MaxResults: 10}
	want := []int{0, 2}
	if got := filterBySubstring("hello", base, cfg); !reflect.DeepEqual(got, want) {
		t.Fatalf("substring filter mismatch: want %v got %v", want, got)
	}
	cfg.MaxResults = 1
	want = []int{0}
	if got := filterBySubstring("hello", base, cfg); !reflect.DeepEqual(got, want) {
		t.Fatalf("substring maxresults mismatch: want %v got %v", want, got)
	}
}

func TestFilterByFuzzyThresholds(t *testing.T) {
	base := []string{"abc", "axc", "ac"}
	cfg := FilterConfig{MinCoverage: 1, MaxSpread: 1, MaxResults: 10}
	want := []int{2}
	if got := filterByFuzzy("ac", base, cfg); !reflect.DeepEqual(got, want) {
		t.Fatalf("fuzzy filter mismatch: want %v got %v", want, got)
	}
}

func TestFilterByFuzzyFallback(t *testing.T) {
	base := []string{"abcd", "abxd"}
	cfg := FilterConfig{MinCoverage: 1, MaxSpread: 0, MaxResults: 1}
	got := filterByFuzzy("ad", base, cfg)
	if len(got) != 1 {
		t.Fatalf("fuzzy fallback expected one result, got %v", got)
	}
	if got[0] != 0 && got[0] != 1 {
		t.Fatalf("fuzzy fallback returned unexpected index %v", got)
	}
}

func TestFindMessagesPrefersSubstringHits(t *testing.T) {
	items := []transcript.Message{
		{Author: "ann", Body: "deploy finished"},
		{Author: "bob", Body: "lunch?"},
		{Author: "cy", Body: "Deploy failed"},
	}
	cfg := FilterConfig{MinCoverage: 0.6, MaxSpread: 40, MaxResults: 10}
	want := []int{0, 2}
	if got := findMessages("deploy", items, cfg); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v got %v", want, got)
	}
	if got := findMessages("   ", items, cfg); got != nil {
		t.Fatalf("blank query should find nothing, got %v", got)
	}
}

func TestMatchCoverage(t *testing.T) {
	m := fuzzy.Match{MatchedIndexes: []int{0, 2}}
	if c := matchCoverage("abcd", m); c != 0.5 {
		t.Fatalf("coverage want 0.5 got %v", c)
	}
}

func TestMatchSpread(t *testing.T) {
	m := fuzzy.Match{MatchedIndexes: []int{1, 4}}
	if s := matchSpread(m); s != 3 {
		t.Fatalf("spread want 3 got %d", s)
	}
	if s := matchSpread(fuzzy.Match{}); s != 0 {
		t.Fatalf("empty spread want 0 got %d", s)
	}
}
