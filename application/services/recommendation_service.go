package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sociograph/domain/recommend"
	"sociograph/domain/social"
	"sociograph/infrastructure/observability"
	apperrors "sociograph/pkg/errors"
)

// Strategy names a recommendation heuristic.
type Strategy string

const (
	StrategyCommonFriends   Strategy = "common-friends"
	StrategyNetworkDistance Strategy = "network-distance"
	StrategyWeighted        Strategy = "weighted"
)

// ParseStrategy maps a wire name onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyCommonFriends, StrategyNetworkDistance, StrategyWeighted:
		return Strategy(name), nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf(
			"unknown strategy %q: must be one of %s, %s, %s",
			name, StrategyCommonFriends, StrategyNetworkDistance, StrategyWeighted))
	}
}

// RecommendationService dispatches recommendation queries to the engine.
// Every call recomputes from the current graph; there is no caching.
type RecommendationService struct {
	engine             *recommend.Engine
	defaultMaxDistance int
	metrics            *observability.Collector
	logger             *zap.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	engine *recommend.Engine,
	defaultMaxDistance int,
	metrics *observability.Collector,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		engine:             engine,
		defaultMaxDistance: defaultMaxDistance,
		metrics:            metrics,
		logger:             logger,
	}
}

// Recommend runs the named strategy for the target user. A maxDistance
// below 1 selects the configured default. An unknown target is a valid,
// empty outcome, never an error.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	target social.UserID,
	strategy Strategy,
	maxDistance int,
) ([]recommend.Recommendation, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if maxDistance < 1 {
		maxDistance = s.defaultMaxDistance
	}

	start := time.Now()
	var results []recommend.Recommendation
	switch strategy {
	case StrategyCommonFriends:
		results = s.engine.ByCommonFriends(target)
	case StrategyNetworkDistance:
		results = s.engine.ByNetworkDistance(target, maxDistance)
	case StrategyWeighted:
		results = s.engine.Weighted(target, maxDistance)
	}
	elapsed := time.Since(start)

	s.metrics.ObserveRecommendation(string(strategy), elapsed)
	s.logger.Debug("recommendations computed",
		zap.Int64("userID", int64(target)),
		zap.String("strategy", string(strategy)),
		zap.Int("maxDistance", maxDistance),
		zap.Int("results", len(results)),
		zap.Duration("duration", elapsed),
	)

	return results, nil
}
