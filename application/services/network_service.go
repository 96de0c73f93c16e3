// Package services hosts the application layer: thin orchestration over
// the domain packages that adds validation, logging, and metrics.
package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"sociograph/domain/social"
	"sociograph/infrastructure/observability"
	apperrors "sociograph/pkg/errors"
)

// NetworkService handles mutations and lookups on the social graph.
type NetworkService struct {
	network *social.Network
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewNetworkService creates a new network service.
func NewNetworkService(network *social.Network, metrics *observability.Collector, logger *zap.Logger) *NetworkService {
	return &NetworkService{
		network: network,
		metrics: metrics,
		logger:  logger,
	}
}

// NetworkStats summarizes the stored graph.
type NetworkStats struct {
	Users       int `json:"users"`
	Connections int `json:"connections"`
}

// AddUser ensures the user exists. Idempotent, never fails.
func (s *NetworkService) AddUser(ctx context.Context, id social.UserID) {
	s.network.AddUser(id)
	s.metrics.UsersCreated.Inc()
	s.logger.Debug("user added", zap.Int64("userID", int64(id)))
}

// Connect creates an undirected connection between two users, creating
// either user if absent. Connecting a user to itself is rejected here so
// API clients get feedback; the store itself would silently ignore it.
func (s *NetworkService) Connect(ctx context.Context, a, b social.UserID) error {
	if a == b {
		return apperrors.NewValidationError("cannot connect a user to itself")
	}

	s.network.AddConnection(a, b)
	s.metrics.ConnectionsCreated.Inc()
	s.logger.Info("connection added",
		zap.Int64("source", int64(a)),
		zap.Int64("target", int64(b)),
	)
	return nil
}

// Disconnect removes the connection between two users. Removing a
// missing connection is a no-op, matching the store contract.
func (s *NetworkService) Disconnect(ctx context.Context, a, b social.UserID) {
	s.network.RemoveConnection(a, b)
	s.metrics.ConnectionsRemoved.Inc()
	s.logger.Info("connection removed",
		zap.Int64("source", int64(a)),
		zap.Int64("target", int64(b)),
	)
}

// HasUser reports whether the user exists.
func (s *NetworkService) HasUser(ctx context.Context, id social.UserID) bool {
	return s.network.HasUser(id)
}

// Friends returns the user's direct friends in ascending order. Unknown
// users yield an empty list.
func (s *NetworkService) Friends(ctx context.Context, id social.UserID) []social.UserID {
	friends := s.network.Friends(id)
	ids := make([]social.UserID, 0, len(friends))
	for f := range friends {
		ids = append(ids, f)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FriendCount returns the user's degree.
func (s *NetworkService) FriendCount(ctx context.Context, id social.UserID) int {
	return len(s.network.Friends(id))
}

// Stats returns user and connection counts.
func (s *NetworkService) Stats(ctx context.Context) NetworkStats {
	return NetworkStats{
		Users:       s.network.UserCount(),
		Connections: s.network.ConnectionCount(),
	}
}

// Snapshot returns a consistent copy of the whole graph.
func (s *NetworkService) Snapshot(ctx context.Context) social.Snapshot {
	return s.network.Snapshot()
}
