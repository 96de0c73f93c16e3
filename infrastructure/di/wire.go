//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"sociograph/application/services"
	"sociograph/domain/recommend"
	"sociograph/domain/social"
	"sociograph/infrastructure/config"
	"sociograph/infrastructure/observability"
	"sociograph/interfaces/http/rest"
	"sociograph/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config                *config.Config
	Logger                *zap.Logger
	Network               *social.Network
	Engine                *recommend.Engine
	Collector             *observability.Collector
	JWTValidator          *auth.JWTValidator
	NetworkService        *services.NetworkService
	RecommendationService *services.RecommendationService
	Router                *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideNetwork,
	ProvideEngine,
	ProvideCollector,
	ProvideJWTValidator,
	ProvideNetworkService,
	ProvideRecommendationService,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
