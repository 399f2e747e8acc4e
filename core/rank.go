package core

import (
	"sort"

	"github.com/huangsam/hpps/schema"
)

// RankResults sorts results by final score in descending order and returns
// the top 'limit' entries. Ties break on candidate name so output order is
// stable across runs.
func RankResults(results []schema.Result, limit int) []schema.Result {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Final != results[j].Final {
			return results[i].Final > results[j].Final
		}
		return results[i].Candidate < results[j].Candidate
	})
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
