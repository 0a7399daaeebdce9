package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"flipview/internal/render"
	"flipview/internal/transcript"
)

// FilterConfig bundles tuning parameters for message search.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// searchBase returns the lowercased one-line description of every message.
func searchBase(items []transcript.Message) []string {
	base := make([]string, len(items))
	for i, msg := range items {
		base[i] = strings.ToLower(render.Describe(msg))
	}
	return base
}

// filterBySubstring performs a simple substring check against base and
// returns matching indices limited by cfg.MaxResults.
func filterBySubstring(q string, base []string, cfg FilterConfig) []int {
	sub := make([]int, 0, min(cfg.MaxResults, len(base)))
	for i, s := range base {
		if strings.Contains(s, q) {
			sub = append(sub, i)
			if len(sub) >= cfg.MaxResults {
				break
			}
		}
	}
	return sub
}

// filterByFuzzy applies fuzzy matching on base and filters results based on
// coverage and spread thresholds from cfg. When nothing survives the
// thresholds the raw fuzzy ranking is returned.
func filterByFuzzy(q string, base []string, cfg FilterConfig) []int {
	matches := fuzzy.Find(q, base)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, mt.Index)
		if len(pruned) >= cfg.MaxResults {
			break
		}
	}
	if len(pruned) == 0 {
		for i := 0; i < len(matches) && i < cfg.MaxResults; i++ {
			pruned = append(pruned, matches[i].Index)
		}
	}
	return pruned
}

// findMessages ranks messages for q: substring hits first, then fuzzy hits.
func findMessages(q string, items []transcript.Message, cfg FilterConfig) []int {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || len(items) == 0 {
		return nil
	}
	base := searchBase(items)
	out := filterBySubstring(q, base, cfg)
	seen := make(map[int]bool, len(out))
	for _, i := range out {
		seen[i] = true
	}
	for _, i := range filterByFuzzy(q, base, cfg) {
		if len(out) >= cfg.MaxResults {
			break
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}
