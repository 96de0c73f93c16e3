package di

import (
	"go.uber.org/zap"

	"sociograph/application/services"
	"sociograph/domain/recommend"
	"sociograph/domain/social"
	"sociograph/infrastructure/config"
	"sociograph/infrastructure/observability"
	"sociograph/interfaces/http/rest"
	"sociograph/pkg/auth"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideNetwork creates the in-memory graph store
func ProvideNetwork() *social.Network {
	return social.NewNetwork()
}

// ProvideEngine creates the recommendation engine
func ProvideEngine(network *social.Network) *recommend.Engine {
	return recommend.NewEngine(network)
}

// ProvideCollector creates the Prometheus metrics collector
func ProvideCollector(cfg *config.Config) *observability.Collector {
	return observability.NewCollector(cfg.MetricsNamespace)
}

// ProvideJWTValidator creates a token validator. Without a configured
// secret the API runs unauthenticated, which Config.Validate forbids in
// production.
func ProvideJWTValidator(cfg *config.Config, logger *zap.Logger) (*auth.JWTValidator, error) {
	if cfg.JWTSecret == "" {
		logger.Warn("JWT secret not configured, API authentication disabled")
		return nil, nil
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideNetworkService creates the network application service
func ProvideNetworkService(network *social.Network, collector *observability.Collector, logger *zap.Logger) *services.NetworkService {
	return services.NewNetworkService(network, collector, logger)
}

// ProvideRecommendationService creates the recommendation application service
func ProvideRecommendationService(
	engine *recommend.Engine,
	cfg *config.Config,
	collector *observability.Collector,
	logger *zap.Logger,
) *services.RecommendationService {
	return services.NewRecommendationService(engine, cfg.DefaultMaxDistance, collector, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	networkService *services.NetworkService,
	recommendationService *services.RecommendationService,
	collector *observability.Collector,
	jwtValidator *auth.JWTValidator,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, networkService, recommendationService, collector, jwtValidator, logger)
}
