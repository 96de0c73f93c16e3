// Package social owns the adjacency relation of the social graph.
//
// Every operation is a total function: unknown users degrade to empty
// results and mutations on missing users or edges are no-ops. The
// recommendation layers rely on this contract and never have to handle
// errors from the store.
package social

import (
	"sort"
	"sync"
)

// UserID identifies a user in the network. Identity is caller-assigned,
// the store never generates ids.
type UserID int64

// Connection is an undirected edge between two users. Source < Target in
// snapshots so each edge appears exactly once.
type Connection struct {
	Source UserID `json:"source"`
	Target UserID `json:"target"`
}

// Snapshot is a point-in-time copy of the whole network, used by the
// graph export endpoint and the CLI renderer.
type Snapshot struct {
	Users       []UserID     `json:"users"`
	Connections []Connection `json:"connections"`
}

// Network is the graph store. The zero value is not usable; create one
// with NewNetwork.
//
// All reads and writes go through an internal RWMutex: traversals and
// recommendation strategies may run concurrently with each other but are
// excluded from mutations, which is required because adding an edge
// touches two neighbor sets non-atomically and the symmetry invariant
// must never be observable as broken.
type Network struct {
	mu        sync.RWMutex
	adjacency map[UserID]map[UserID]struct{}
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		adjacency: make(map[UserID]map[UserID]struct{}),
	}
}

// AddUser ensures id exists with an (initially empty, if new) neighbor
// set. Idempotent.
func (n *Network) AddUser(id UserID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ensureUser(id)
}

// AddConnection creates an undirected edge between a and b, creating
// either endpoint if absent. Re-adding an existing edge is a no-op, and
// so is connecting a user to itself: the store never holds self-loops.
func (n *Network) AddConnection(a, b UserID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.ensureUser(a)
	n.ensureUser(b)

	if a == b {
		return
	}

	n.adjacency[a][b] = struct{}{}
	n.adjacency[b][a] = struct{}{}
}

// RemoveConnection removes the edge between a and b. Missing users or a
// missing edge make this a no-op, not an error.
func (n *Network) RemoveConnection(a, b UserID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.adjacency[a]; !ok {
		return
	}
	if _, ok := n.adjacency[b]; !ok {
		return
	}

	delete(n.adjacency[a], b)
	delete(n.adjacency[b], a)
}

// Friends returns a copy of id's neighbor set, empty for unknown users.
// Callers may mutate the returned map freely.
func (n *Network) Friends(id UserID) map[UserID]struct{} {
	n.mu.RLock()
	defer n.mu.RUnlock()

	neighbors := n.adjacency[id]
	friends := make(map[UserID]struct{}, len(neighbors))
	for f := range neighbors {
		friends[f] = struct{}{}
	}
	return friends
}

// HasUser reports whether id exists in the network.
func (n *Network) HasUser(id UserID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.adjacency[id]
	return ok
}

// UserCount returns the number of distinct users currently stored.
func (n *Network) UserCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.adjacency)
}

// ConnectionCount returns the number of undirected edges.
func (n *Network) ConnectionCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	degrees := 0
	for _, neighbors := range n.adjacency {
		degrees += len(neighbors)
	}
	// Symmetry means every edge is counted from both endpoints.
	return degrees / 2
}

// UserIDs returns all user ids in ascending order.
func (n *Network) UserIDs() []UserID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]UserID, 0, len(n.adjacency))
	for id := range n.adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Snapshot returns a consistent copy of the whole network. Users are
// sorted ascending and every edge appears once with Source < Target.
func (n *Network) Snapshot() Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	snap := Snapshot{
		Users:       make([]UserID, 0, len(n.adjacency)),
		Connections: make([]Connection, 0),
	}
	for id, neighbors := range n.adjacency {
		snap.Users = append(snap.Users, id)
		for f := range neighbors {
			if id < f {
				snap.Connections = append(snap.Connections, Connection{Source: id, Target: f})
			}
		}
	}
	sort.Slice(snap.Users, func(i, j int) bool { return snap.Users[i] < snap.Users[j] })
	sort.Slice(snap.Connections, func(i, j int) bool {
		if snap.Connections[i].Source != snap.Connections[j].Source {
			return snap.Connections[i].Source < snap.Connections[j].Source
		}
		return snap.Connections[i].Target < snap.Connections[j].Target
	})
	return snap
}

// ensureUser must be called with the write lock held.
func (n *Network) ensureUser(id UserID) {
	if _, ok := n.adjacency[id]; !ok {
		n.adjacency[id] = make(map[UserID]struct{})
	}
}
