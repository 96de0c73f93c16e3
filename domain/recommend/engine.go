// Package recommend implements the three friend-recommendation
// strategies: common-friend overlap, bounded network distance, and a
// blended weighted score.
//
// Every strategy is a pure function of the current graph snapshot: none
// mutates the store, none keeps state between calls, and a target id
// unknown to the store yields an empty list rather than an error.
package recommend

import (
	"sort"

	"sociograph/domain/social"
	"sociograph/domain/traversal"
)

// Recommendation pairs a candidate user with the strategy's integer
// metric: a common-friend count, a hop distance, or a truncated blended
// score.
type Recommendation struct {
	UserID social.UserID `json:"user_id"`
	Score  int           `json:"score"`
}

// Engine evaluates recommendation strategies against a friend source.
type Engine struct {
	source traversal.FriendSource
}

// NewEngine creates an engine reading from the given source.
func NewEngine(source traversal.FriendSource) *Engine {
	return &Engine{source: source}
}

// ByCommonFriends recommends friends-of-friends ranked by the number of
// mutual friends with the target. A candidate's count equals the number
// of distinct 2-hop paths between it and the target. The target and its
// direct friends are never candidates. Sorted by count descending, then
// user id ascending.
func (e *Engine) ByCommonFriends(target social.UserID) []Recommendation {
	friends := e.source.Friends(target)

	counts := make(map[social.UserID]int)
	for friend := range friends {
		for candidate := range e.source.Friends(friend) {
			if candidate == target {
				continue
			}
			if _, direct := friends[candidate]; direct {
				continue
			}
			counts[candidate]++
		}
	}

	return ranked(counts, descending)
}

// ByNetworkDistance recommends every user within maxDistance hops of the
// target, excluding the target and its direct friends, ranked by hop
// distance ascending (closer first), then user id ascending. Reported
// distances are always in [2, maxDistance].
func (e *Engine) ByNetworkDistance(target social.UserID, maxDistance int) []Recommendation {
	return ranked(traversal.BoundedFrontier(e.source, target, maxDistance), ascending)
}

// Weighted blends both signals. For every friend-of-friend occurrence of
// a candidate c the accumulator gains
//
//	commonFriends(c)*2 + 1/(distance(target,c)+1)
//
// so candidates reachable through several mutual friends accumulate the
// term once per path. The reported metric is the truncated integer part
// of the accumulated score, ranked descending, then user id ascending.
// An unreachable candidate contributes no proximity term at all, which
// keeps the arithmetic free of sentinel overflow.
func (e *Engine) Weighted(target social.UserID, maxDistance int) []Recommendation {
	friends := e.source.Friends(target)

	scores := make(map[social.UserID]float64)
	for friend := range friends {
		for candidate := range e.source.Friends(friend) {
			if candidate == target {
				continue
			}
			if _, direct := friends[candidate]; direct {
				continue
			}

			// Common friends are recomputed against the candidate's full
			// neighbor set, not carried over from the 2-hop walk.
			candidateFriends := e.source.Friends(candidate)
			common := 0
			for mutual := range friends {
				if _, ok := candidateFriends[mutual]; ok {
					common++
				}
			}

			score := float64(common) * 2
			if distance, ok := traversal.ShortestDistance(e.source, target, candidate); ok {
				score += 1 / (float64(distance) + 1)
			}
			scores[candidate] += score
		}
	}

	truncated := make(map[social.UserID]int, len(scores))
	for candidate, score := range scores {
		truncated[candidate] = int(score)
	}
	return ranked(truncated, descending)
}

type order int

const (
	ascending order = iota
	descending
)

// ranked turns a candidate→metric map into a deterministically ordered
// slice. Ties on the metric always break by ascending user id.
func ranked(metrics map[social.UserID]int, ord order) []Recommendation {
	results := make([]Recommendation, 0, len(metrics))
	for id, metric := range metrics {
		results = append(results, Recommendation{UserID: id, Score: metric})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			if ord == descending {
				return results[i].Score > results[j].Score
			}
			return results[i].Score < results[j].Score
		}
		return results[i].UserID < results[j].UserID
	})
	return results
}
