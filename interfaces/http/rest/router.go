package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"sociograph/application/services"
	"sociograph/infrastructure/config"
	"sociograph/infrastructure/observability"
	"sociograph/interfaces/http/rest/handlers"
	"sociograph/interfaces/http/rest/middleware"
	"sociograph/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg            *config.Config
	network        *services.NetworkService
	recommendation *services.RecommendationService
	collector      *observability.Collector
	jwtValidator   *auth.JWTValidator
	logger         *zap.Logger
}

// NewRouter creates a new router instance. A nil jwtValidator leaves the
// API unauthenticated (development mode).
func NewRouter(
	cfg *config.Config,
	network *services.NetworkService,
	recommendation *services.RecommendationService,
	collector *observability.Collector,
	jwtValidator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:            cfg,
		network:        network,
		recommendation: recommendation,
		collector:      collector,
		jwtValidator:   jwtValidator,
		logger:         logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.collector))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health and metrics
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	router.Method(http.MethodGet, "/metrics", rt.collector.Handler())

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		if rt.jwtValidator != nil {
			ipLimiter := auth.NewTokenBucketLimiter(100, time.Minute/100)
			userLimiter := auth.NewTokenBucketLimiter(200, time.Minute/200)
			r.Use(middleware.Authenticate(rt.jwtValidator, ipLimiter, userLimiter, rt.logger))
		}

		networkHandler := handlers.NewNetworkHandler(rt.network, rt.logger)
		recommendationHandler := handlers.NewRecommendationHandler(rt.recommendation, rt.logger)
		graphHandler := handlers.NewGraphHandler(rt.network, rt.logger)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", networkHandler.CreateUser)
			r.Get("/{userID}", networkHandler.GetUser)
			r.Get("/{userID}/friends", networkHandler.ListFriends)
			r.Get("/{userID}/recommendations", recommendationHandler.GetRecommendations)
		})

		r.Route("/connections", func(r chi.Router) {
			r.Post("/", networkHandler.CreateConnection)
			r.Delete("/", networkHandler.DeleteConnection)
		})

		r.Get("/graph", graphHandler.GetGraphData)
		r.Get("/stats", networkHandler.GetStats)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The graph store is in-memory; once the process is up it is ready.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
