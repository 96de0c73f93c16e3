// Package traversal provides breadth-first search utilities over the
// social graph: bounded frontier expansion for candidate discovery and
// single-pair shortest-distance queries.
package traversal

import "sociograph/domain/social"

// FriendSource is the read surface the traversals need from the graph
// store. *social.Network satisfies it.
type FriendSource interface {
	Friends(id social.UserID) map[social.UserID]struct{}
}

type hop struct {
	id       social.UserID
	distance int
}

// BoundedFrontier expands a breadth-first frontier from source and
// returns the hop distance of every user reachable within maxDistance
// hops, excluding source itself and its direct friends. All reported
// distances are therefore in [2, maxDistance].
//
// Each user is enqueued at most once, so a call costs O(V+E). An unknown
// source or a maxDistance below 2 yields an empty result.
func BoundedFrontier(src FriendSource, source social.UserID, maxDistance int) map[social.UserID]int {
	distances := make(map[social.UserID]int)
	if maxDistance < 2 {
		return distances
	}

	direct := src.Friends(source)
	visited := map[social.UserID]struct{}{source: {}}
	queue := []hop{{id: source, distance: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// Users at the bound are reported but never expanded, so no
		// candidate beyond maxDistance can be discovered.
		if current.distance >= maxDistance {
			continue
		}

		for neighbor := range src.Friends(current.id) {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			visited[neighbor] = struct{}{}
			queue = append(queue, hop{id: neighbor, distance: current.distance + 1})

			if _, isDirect := direct[neighbor]; !isDirect {
				distances[neighbor] = current.distance + 1
			}
		}
	}

	return distances
}

// ShortestDistance returns the minimum hop count between a and b. The
// second result is false when b is unreachable from a; callers must not
// treat the zero distance as meaningful in that case. A user is always
// at distance 0 from itself, even if unknown to the store.
func ShortestDistance(src FriendSource, a, b social.UserID) (int, bool) {
	if a == b {
		return 0, true
	}

	visited := map[social.UserID]struct{}{a: {}}
	queue := []hop{{id: a, distance: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.id == b {
			return current.distance, true
		}

		for neighbor := range src.Friends(current.id) {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			visited[neighbor] = struct{}{}
			queue = append(queue, hop{id: neighbor, distance: current.distance + 1})
		}
	}

	return 0, false
}
